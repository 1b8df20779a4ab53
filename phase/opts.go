package phase

import "github.com/pkg/errors"

// ScoreMode selects which composite score OptimizeClustering hill-climbs on.
type ScoreMode int

const (
	// UPEM sums each cluster's binomial log-tail and subtracts a chi-square
	// penalty for uneven cluster sizes. This is the default.
	UPEM ScoreMode = iota
	// PEM sums each cluster's binomial log-tail only, with no size-balance
	// penalty.
	PEM
	// MEC (Minimum Error Correction) is the negative total mismatch count
	// between reads and their assigned consensus. It is exposed for
	// reporting but is not used to drive hill-climbing moves.
	MEC
)

// Config collects OptimizeClustering's tuning knobs into one record, rather
// than threading Polish/ScoreMode as separate booleans (see DESIGN.md's
// note on tagged dispatch).
type Config struct {
	// Ploidy is the number of haplotypes to recover, k.
	Ploidy int
	// Epsilon is the assumed per-base sequencing error rate.
	Epsilon float64
	// DivFactor scales down the effective sample size in the binomial
	// log-tail, keeping scores on a tractable magnitude.
	DivFactor float64
	// ScoreMode selects the composite score hill-climbing optimizes.
	ScoreMode ScoreMode
	// Polish enables VCF-guided haplotype-block correction between
	// iterations (see Polisher). A nil Polisher disables it regardless of
	// this flag.
	Polish bool
	// MaxIters bounds the number of hill-climbing iterations.
	MaxIters int
}

// DefaultConfig is a reasonable starting point for OptimizeClustering.
var DefaultConfig = Config{
	Ploidy:    2,
	Epsilon:   0.05,
	DivFactor: 1.0,
	ScoreMode: UPEM,
	Polish:    false,
	MaxIters:  10,
}

// NewConfig validates cfg and returns an error describing the first problem
// found, wrapped with github.com/pkg/errors so callers can add further
// context as it propagates. This is ordinary upstream config validation; it
// is not part of the engine's own narrow silent-default error taxonomy,
// which governs everything downstream of a valid Config.
func NewConfig(cfg Config) (Config, error) {
	if cfg.Ploidy < 2 {
		return Config{}, errors.Errorf("phase: Ploidy must be >= 2, got %d", cfg.Ploidy)
	}
	if cfg.Epsilon <= 0 || cfg.Epsilon >= 1 {
		return Config{}, errors.Errorf("phase: Epsilon must be in (0,1), got %v", cfg.Epsilon)
	}
	if cfg.DivFactor <= 0 {
		return Config{}, errors.Errorf("phase: DivFactor must be > 0, got %v", cfg.DivFactor)
	}
	if cfg.MaxIters < 0 {
		return Config{}, errors.Errorf("phase: MaxIters must be >= 0, got %d", cfg.MaxIters)
	}
	return cfg, nil
}
