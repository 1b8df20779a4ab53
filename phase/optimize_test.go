package phase

import (
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
)

// noopPolisher is a local stand-in for vcfpolish.NoopPolisher: an internal
// test for package phase cannot import vcfpolish, since vcfpolish imports
// phase (see phase.Polisher's doc comment).
type noopPolisher struct{}

func (noopPolisher) Polish(_ GenotypeDict, block *HapBlock, _ []int) (*HapBlock, error) {
	return block, nil
}

func makePartition() Partition {
	p := NewPartition(2)
	agree := map[int]Allele{1: 0, 2: 0, 3: 0}
	p[0].Insert(NewFrag("r1", agree))
	p[0].Insert(NewFrag("r2", agree))
	p[1].Insert(NewFrag("r3", map[int]Allele{1: 1, 2: 1, 3: 1}))
	p[1].Insert(NewFrag("r4", map[int]Allele{1: 1, 2: 1, 3: 1}))
	return p
}

func TestOptimizeClusteringEmptyPartitionIsIdempotent(t *testing.T) {
	empty := NewPartition(2)
	score, out, _, stats := OptimizeClustering(empty, DefaultConfig, nil, noopPolisher{})
	expect.EQ(t, score, 0.0)
	expect.EQ(t, len(out), 2)
	expect.EQ(t, stats.OptimizeItersRun, 0)
}

func TestOptimizeClusteringMaxItersZeroNoMoves(t *testing.T) {
	p := makePartition()
	cfg := DefaultConfig
	cfg.MaxIters = 0

	stats0, sizes0 := GetPartitionStats(p, HapBlockFromPartition(p))
	wantScore := scoreFor(cfg.ScoreMode, stats0, sizes0, cfg.Epsilon, cfg.DivFactor)

	score, out, _, stats := OptimizeClustering(p, cfg, nil, noopPolisher{})
	expect.EQ(t, stats.OptimizeItersRun, 0)
	expect.EQ(t, stats.OptimizeItersAccepted, 0)
	expect.EQ(t, out[0].Len(), p[0].Len())
	expect.EQ(t, out[1].Len(), p[1].Len())
	expect.EQ(t, score, wantScore)
}

func TestOptimizeClusteringScoreNeverDecreases(t *testing.T) {
	p := makePartition()
	cfg := DefaultConfig
	cfg.MaxIters = 5

	stats0, sizes0 := GetPartitionStats(p, HapBlockFromPartition(p))
	initialScore := scoreFor(cfg.ScoreMode, stats0, sizes0, cfg.Epsilon, cfg.DivFactor)

	finalScore, _, _, _ := OptimizeClustering(p, cfg, nil, noopPolisher{})
	assert.GreaterOrEqual(t, finalScore, initialScore)
}

func TestGetMECScoreSumsErrors(t *testing.T) {
	stats := []ClusterStats{{Bases: 9, Errors: 1}, {Bases: 5, Errors: 2}}
	expect.EQ(t, GetMECScore(stats), -3.0)
}

func TestGetUPEMScoreAddsChiSquareTerm(t *testing.T) {
	stats := []ClusterStats{{Bases: 10, Errors: 0}, {Bases: 10, Errors: 0}}
	sizes := []int{5, 5}
	pem := GetPEMScore(stats, 0.05, 1.0)
	upem := GetUPEMScore(stats, sizes, 0.05, 1.0)
	expect.EQ(t, upem, pem+ChiSquareLogP(sizes))
}
