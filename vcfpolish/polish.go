// Package vcfpolish provides the default implementation of the VCF-guided
// haplotype polishing seam (see phase.Polisher) for callers with no genotype
// table to polish against. Parsing VCF records and genotype tables is out of
// scope for this module; phase.Polisher is the interface the optimizer calls
// through, and this package depends on phase, never the reverse.
package vcfpolish

import (
	"github.com/grailbio/haplophase/phase"
)

// NoopPolisher implements phase.Polisher by returning block unchanged. It is
// the default when a caller has no VCF to polish against.
type NoopPolisher struct{}

// Polish returns block unchanged and a nil error.
func (NoopPolisher) Polish(_ phase.GenotypeDict, block *phase.HapBlock, _ []int) (*phase.HapBlock, error) {
	return block, nil
}
