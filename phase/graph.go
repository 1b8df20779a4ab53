package phase

import (
	"sort"

	"github.com/grailbio/base/log"
)

// edge is one entry in the read-read graph: the distance between vertices
// u and v (indices into a read list), larger meaning further apart.
type edge struct {
	weight float64
	u, v   int
}

// readGraph is the weighted read-read graph built over a list of reads: an
// edge list sorted ascending by weight, and a parallel adjacency list, both
// addressed by dense vertex index rather than by Frag identity, per the
// engine's index-not-pointer ownership model.
type readGraph struct {
	reads []*Frag
	edges []edge
	adj   [][]edge
}

// buildReadGraph computes pairwise read-read distances for reads. Pairs that
// share no variant position are skipped entirely (no edge). Edge weight is
// the negative stable binomial log-tail of the pair's disagreement count
// under the assumed error rate epsilon (see edgeWeight).
func buildReadGraph(reads []*Frag, epsilon float64) *readGraph {
	g := &readGraph{
		reads: reads,
		adj:   make([][]edge, len(reads)),
	}
	for i := 0; i < len(reads); i++ {
		for j := i + 1; j < len(reads); j++ {
			if !CheckOverlap(reads[i], reads[j]) {
				continue
			}
			same, diff := Distance(reads[i], reads[j])
			w := edgeWeight(same, diff, epsilon)

			g.edges = append(g.edges, edge{w, i, j})
			// adj[x] stores edges oriented u=x so callers can read e.v as
			// "the neighbor reached from x" without re-checking sides.
			g.adj[i] = append(g.adj[i], edge{w, i, j})
			g.adj[j] = append(g.adj[j], edge{w, j, i})
		}
	}
	sort.Slice(g.edges, func(a, b int) bool { return g.edges[a].weight < g.edges[b].weight })
	log.Debug.Printf("phase: built read graph: %d vertices, %d edges", len(reads), len(g.edges))
	return g
}
