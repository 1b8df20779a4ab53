package phase

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestReadsInIntervalEmpty(t *testing.T) {
	got := ReadsInInterval(0, 10, nil)
	expect.EQ(t, len(got), 0)
}

func TestReadsInIntervalFiltersByRange(t *testing.T) {
	frags := []*Frag{
		NewFrag("before", map[int]Allele{0: 0, 1: 0}),
		NewFrag("inside", map[int]Allele{5: 0, 6: 0}),
		NewFrag("after", map[int]Allele{20: 0, 21: 0}),
	}
	got := ReadsInInterval(4, 10, frags)
	expect.EQ(t, len(got), 1)
	expect.EQ(t, got[0].Name, "inside")
}

func TestReadsInIntervalExcludesChimeric(t *testing.T) {
	seq := map[int]Allele{0: 0, maxSpanSites + 5: 0}
	chimeric := NewFrag("chimeric", seq)
	normal := NewFrag("normal", map[int]Allele{0: 0, 1: 0})

	got := ReadsInInterval(0, maxSpanSites+5, []*Frag{chimeric, normal})
	expect.EQ(t, len(got), 1)
	expect.EQ(t, got[0].Name, "normal")
}
