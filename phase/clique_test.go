package phase

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

// TestSeedCliqueSizeBounds covers the documented size bound: the clique
// seeder never returns fewer than 2 or more than k vertices for a
// non-empty graph.
func TestSeedCliqueSizeBounds(t *testing.T) {
	reads := []*Frag{
		NewFrag("a", map[int]Allele{1: 0, 2: 0}),
		NewFrag("b", map[int]Allele{1: 0, 2: 0}),
		NewFrag("c", map[int]Allele{1: 1, 2: 1}),
		NewFrag("d", map[int]Allele{1: 1, 2: 1}),
	}
	g := buildReadGraph(reads, 0.05)
	clique := seedClique(g, 3)
	if len(clique) < 2 || len(clique) > 3 {
		t.Fatalf("clique size %d out of [2,3]", len(clique))
	}
}

// TestSeedCliqueStopsShortWithoutFullAdjacency covers the candidate-pool
// fidelity quirk: a disconnected vertex (no edge to any other read) must
// never complete a clique, even when the graph overall has edges.
func TestSeedCliqueStopsShortWithoutFullAdjacency(t *testing.T) {
	connected1 := NewFrag("c1", map[int]Allele{1: 0, 2: 0})
	connected2 := NewFrag("c2", map[int]Allele{1: 1, 2: 1})
	isolated := NewFrag("isolated", map[int]Allele{9: 0, 10: 0})

	g := buildReadGraph([]*Frag{connected1, connected2, isolated}, 0.05)
	clique := seedClique(g, 3)
	expect.EQ(t, len(clique), 2)
}

func TestSeedCliqueNoEdgesReturnsNil(t *testing.T) {
	reads := []*Frag{
		NewFrag("a", map[int]Allele{1: 0}),
		NewFrag("b", map[int]Allele{2: 0}),
	}
	g := buildReadGraph(reads, 0.05)
	expect.EQ(t, len(seedClique(g, 2)), 0)
}
