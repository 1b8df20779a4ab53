package phase

import (
	"sort"

	"github.com/grailbio/base/log"
)

// seedClique greedily grows a k-clique in g, starting from the single
// heaviest edge and, at each step, adding the vertex whose worst (minimum)
// edge weight into the current clique is as large as possible -- a genuine
// outlier along every existing axis -- while still requiring it be adjacent
// to every current clique member.
//
// The candidate pool at each step is built only from vertices the edge scan
// actually encounters adjacent to some clique member; a vertex with no edge
// to some clique member never enters vertsMeetingClique and so can never
// satisfy the full-adjacency check below, even if it truly belongs in a
// k-clique. This mirrors the reference implementation exactly: if the graph
// isn't complete across clique members, the clique may terminate below size
// k even when a valid one exists. Preserved for fidelity; see DESIGN.md.
//
// The returned vertex slice is sorted ascending and has between 2 and k
// elements (0 if g has no edges at all, handled by the caller).
func seedClique(g *readGraph, k int) []int {
	if len(g.edges) == 0 {
		return nil
	}

	best := g.edges[len(g.edges)-1]
	used := newVertexSet()
	used.Insert(best.u)
	used.Insert(best.v)

	for step := 0; step < k-2; step++ {
		vertsMeetingClique := make(map[int]map[int]bool)
		minDist := make(map[int]float64)

		for _, e := range g.edges {
			var candidate, metVia int
			switch {
			case used.Contains(e.u) && !used.Contains(e.v):
				candidate, metVia = e.v, e.u
			case used.Contains(e.v) && !used.Contains(e.u):
				candidate, metVia = e.u, e.v
			default:
				continue
			}

			met := vertsMeetingClique[candidate]
			if met == nil {
				met = make(map[int]bool)
				vertsMeetingClique[candidate] = met
			}
			met[metVia] = true

			if d, ok := minDist[candidate]; ok && d < e.weight {
				continue
			}
			minDist[candidate] = e.weight
		}

		type candDist struct {
			vertex int
			dist   float64
		}
		sorted := make([]candDist, 0, len(minDist))
		for v, d := range minDist {
			sorted = append(sorted, candDist{v, d})
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].dist < sorted[j].dist })
		if len(sorted) == 0 {
			continue
		}

		for i := len(sorted) - 1; i >= 0; i-- {
			cand := sorted[i]
			if cliqueFullyMet(vertsMeetingClique[cand.vertex], used) {
				used.Insert(cand.vertex)
				break
			}
		}
	}

	var clique []int
	for v := 0; v < len(g.reads); v++ {
		if used.Contains(v) {
			clique = append(clique, v)
		}
	}
	log.Debug.Printf("phase: seeded clique of size %d (target %d)", len(clique), k)
	return clique
}

// cliqueFullyMet reports whether met (the set of used-clique vertices a
// candidate has been observed adjacent to) covers every vertex currently in
// used.
func cliqueFullyMet(met map[int]bool, used *vertexSet) bool {
	if len(met) != used.Len() {
		return false
	}
	for v := range met {
		if !used.Contains(v) {
			return false
		}
	}
	return true
}
