package phase

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// minProb and maxProb clamp observed error fractions away from 0 and 1 so
// that the relative-entropy term below never takes log(0).
const (
	minProb = 1e-7
	maxProb = 1 - 1e-7
)

// StableBinomLogTail approximates log P[X >= k] for X ~ Binomial(n, p),
// scaled so that n is effectively divided by divFactor, as a single
// relative-entropy product. This form stays numerically stable across the
// full range of n and k because it never evaluates the binomial
// coefficient directly.
//
// As a deliberate heuristic extension beyond the strict large-deviation
// tail bound, the sign of the relative entropy is flipped when the observed
// rate a = k/n is below p: a below-expected error rate is rewarded with a
// positive score instead of clamping at the tail bound's zero. Callers
// should treat the result as an ordinal quantity, not a log-probability.
func StableBinomLogTail(n, k int, p, divFactor float64) float64 {
	if n == 0 {
		return 0.0
	}

	a := float64(k) / float64(n)
	if a > maxProb {
		a = maxProb
	}
	if a < minProb {
		a = minProb
	}

	relEnt := a*math.Log(a/p) + (1-a)*math.Log((1-a)/(1-p))
	if a < p {
		relEnt = -relEnt
	}

	return -float64(n) / divFactor * relEnt
}

// edgeDivFactor scales the effective sample size used for read-graph edge
// weights down to keep scores on a tractable magnitude.
const edgeDivFactor = 100.0

// edgeWeight returns the read-graph distance between two overlapping reads
// with same agreeing and diff disagreeing positions, under an assumed
// per-base error rate epsilon. Larger distances mean the reads are more
// likely to come from different haplotypes.
func edgeWeight(same, diff int, epsilon float64) float64 {
	disagreeProb := 2.0 * epsilon * (1.0 - epsilon)
	return -1.0 * StableBinomLogTail(same+diff, diff, disagreeProb, edgeDivFactor)
}

// ChiSquareLogP returns the natural log of the upper-tail p-value of the
// chi-square statistic built from freqs (typically cluster sizes) against a
// chi-square distribution with len(freqs)-1 degrees of freedom. If every
// frequency is equal, the statistic is exactly zero and ChiSquareLogP
// returns 0.0 directly rather than querying the CDF at a degenerate point.
func ChiSquareLogP(freqs []int) float64 {
	k := len(freqs)
	sum := 0
	for _, f := range freqs {
		sum += f
	}
	mean := float64(sum) / float64(k)

	stat := 0.0
	for _, f := range freqs {
		d := float64(f) - mean
		stat += d * d
	}
	if mean == 0 || stat <= 0 {
		return 0.0
	}
	stat /= mean

	dist := distuv.ChiSquared{K: float64(k - 1), Src: rand.NewSource(1)}
	return math.Log(1 - dist.CDF(stat))
}

// LogErfc returns log(erfc(x)) via the Abramowitz-Stegun rational
// approximation. It is not on the default edge-weight path; it is kept as a
// diagnostic alternative to StableBinomLogTail (see NormApprox).
func LogErfc(x float64) float64 {
	const (
		p  = 0.47047
		a1 = 0.3480242
		a2 = -0.0958798
		a3 = 0.7478556
	)
	t := 1.0 / (1.0 + p*x)
	polynomial := a1*t + a2*t*t + a3*t*t*t
	if polynomial <= 0.0 {
		return 0.0
	}
	return -(x * x) + math.Log(polynomial)
}

// NormApprox is a normal-approximation alternative to StableBinomLogTail,
// retained for diagnostic swaps; it is not used by the default clustering
// or optimization path.
func NormApprox(n, k int, p float64) float64 {
	sampSize := float64(n)
	mu := sampSize * p
	sigma := math.Sqrt(mu * (1.0 - p))
	z := (float64(k) + 0.5 - mu) / sigma
	return LogErfc(z)
}
