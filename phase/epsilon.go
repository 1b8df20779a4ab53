package phase

import (
	"math/rand"
	"sort"

	"github.com/grailbio/base/log"
)

// epsilonSeed is the fixed PRNG seed EstimateEpsilon draws its candidate
// windows from, making repeated calls with identical inputs reproducible.
const epsilonSeed = 1

// epsilonPercentileDivisor selects the 10th-percentile error rate: low-quantile
// clusters are dominated by sequencing error rather than misphasing, which
// contaminates the high end of the distribution.
const epsilonPercentileDivisor = 10

// EstimateEpsilon self-calibrates the per-base error rate by running the
// local clustering engine over numTries randomly chosen windows (each
// blockLen variant sites wide, out of numIters candidate windows spanning
// the genome), collecting each resulting cluster's observed error fraction,
// and returning the 10th-percentile value across all of them. If no drawn
// window yields a cluster with any covered site, it returns initialEpsilon.
//
// The windows are drawn from a PRNG seeded with a fixed literal seed, so
// two calls with identical arguments return bit-identical results.
func EstimateEpsilon(numIters, numTries, ploidy int, allFrags []*Frag, blockLen int, initialEpsilon float64) float64 {
	rng := rand.New(rand.NewSource(epsilonSeed))

	var epsilons []float64
	for try := 0; try < numTries; try++ {
		window := rng.Intn(numIters)
		partition, _ := GenerateHapBlock(window*blockLen, (window+1)*blockLen-1, ploidy, allFrags, initialEpsilon)
		block := HapBlockFromPartition(partition)
		stats, _ := GetPartitionStats(partition, block)

		for _, s := range stats {
			total := s.Bases + s.Errors
			if total == 0 {
				break
			}
			epsilons = append(epsilons, float64(s.Errors)/float64(total))
		}
	}

	if len(epsilons) == 0 {
		log.Debug.Printf("phase: estimate_epsilon: no samples, keeping initial epsilon %v", initialEpsilon)
		return initialEpsilon
	}
	sort.Float64s(epsilons)
	idx := len(epsilons) / epsilonPercentileDivisor
	result := epsilons[idx]
	log.Debug.Printf("phase: estimate_epsilon: %d samples, 10th percentile = %v", len(epsilons), result)
	return result
}
