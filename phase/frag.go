package phase

import (
	"github.com/dgryski/go-farm"
)

// Allele is a small integer allele symbol observed at a variant site.
type Allele int

// Frag is a single sequencing read's observations at the heterozygous
// variant sites it spans.
//
// FirstPosition and LastPosition are inclusive variant-site indices; they
// bound Positions but need not be tight (a read may have gaps inside its
// span where it makes no call). SeqDict maps a variant index in Positions to
// the allele the read observed there.
//
// A Frag's allele calls are immutable for the lifetime of any phase.* call
// it is passed to; the engine only ever borrows fragments supplied by the
// caller.
type Frag struct {
	Name          string
	FirstPosition int
	LastPosition  int
	Positions     map[int]bool
	SeqDict       map[int]Allele
}

// ID returns a stable, cheap identity for f usable as a map/tree key. It is
// derived from Name rather than from the (potentially large) allele map, so
// computing it does not require walking SeqDict.
func (f *Frag) ID() uint64 {
	return farm.Hash64([]byte(f.Name))
}

// NewFrag builds a Frag from a variant-index -> allele map, deriving
// FirstPosition/LastPosition/Positions from seqDict. It panics if seqDict is
// empty, since a read with no calls violates the Frag invariant that
// FirstPosition <= min(Positions) <= max(Positions) <= LastPosition.
func NewFrag(name string, seqDict map[int]Allele) *Frag {
	if len(seqDict) == 0 {
		panic("phase: NewFrag: seqDict must be non-empty")
	}
	positions := make(map[int]bool, len(seqDict))
	first, last := -1, -1
	for pos := range seqDict {
		positions[pos] = true
		if first == -1 || pos < first {
			first = pos
		}
		if last == -1 || pos > last {
			last = pos
		}
	}
	return &Frag{
		Name:          name,
		FirstPosition: first,
		LastPosition:  last,
		Positions:     positions,
		SeqDict:       seqDict,
	}
}

// CheckOverlap reports whether r1 and r2 make a call at any common variant
// position.
func CheckOverlap(r1, r2 *Frag) bool {
	short, long := r1, r2
	if len(long.Positions) < len(short.Positions) {
		short, long = long, short
	}
	for pos := range short.Positions {
		if long.Positions[pos] {
			return true
		}
	}
	return false
}

// Distance returns the number of shared positions at which r1 and r2 agree
// (same) and disagree (diff), restricted to positions both reads call.
func Distance(r1, r2 *Frag) (same, diff int) {
	short, long := r1, r2
	if len(long.Positions) < len(short.Positions) {
		short, long = long, short
	}
	for pos := range short.Positions {
		if !long.Positions[pos] {
			continue
		}
		if short.SeqDict[pos] == long.SeqDict[pos] {
			same++
		} else {
			diff++
		}
	}
	return same, diff
}

// DistanceReadHaplo returns the number of positions at which r agrees (same)
// and disagrees (diff) with haplo's argmax consensus call, restricted to
// sites both r and haplo cover.
func DistanceReadHaplo(r *Frag, haplo SiteConsensus) (same, diff int) {
	for pos := range r.Positions {
		support, ok := haplo[pos]
		if !ok || len(support) == 0 {
			continue
		}
		if argmaxAllele(support) == r.SeqDict[pos] {
			same++
		} else {
			diff++
		}
	}
	return same, diff
}
