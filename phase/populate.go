package phase

import (
	"math"
	"sort"

	"github.com/grailbio/base/log"
)

// populateIters is the number of passes the cluster populator makes over
// the unused vertices (I in spec.md's notation).
const populateIters = 10

// populateClusters assigns every vertex not already in clusters to one of
// them, in populateIters passes. Within a pass, unused vertices are ordered
// by the minimum (over clusters) of their maximum position-overlap with any
// already-clustered neighbor, most-confidently-placeable first, and at most
// a per-pass cap of them are actually assigned -- so that later passes can
// recompute overlaps against the larger clusters the earlier passes
// produced.
//
// The cap comparison below is `j > cap`, not `j >= cap`: this lets one extra
// vertex past the nominal cap through on every pass but the last, exactly as
// in the reference implementation. Preserved for fidelity; see DESIGN.md.
//
// It returns the number of passes actually run, which may be less than
// populateIters if every vertex is placed early.
func populateClusters(clusters []Cluster, used *vertexSet, g *readGraph, vertexClusters [][]int) int {
	n := len(g.reads)
	k := len(clusters)
	itersRun := 0

	for iteration := 0; iteration < populateIters; iteration++ {
		if used.Len() == n {
			break
		}
		itersRun++

		capLimit := n / populateIters
		if iteration == populateIters-1 {
			capLimit = math.MaxInt32
		}

		type overlapRank struct {
			vertex     int
			minOverlap int
		}
		var ranked []overlapRank

		for v := 0; v < n; v++ {
			if used.Contains(v) {
				continue
			}
			overlapByCluster := make([]int, k)
			for _, e := range g.adj[v] {
				for _, c := range vertexClusters[e.v] {
					overlap := len(intersectPositions(g.reads[v], g.reads[e.v]))
					if overlap > overlapByCluster[c] {
						overlapByCluster[c] = overlap
					}
				}
			}
			ranked = append(ranked, overlapRank{v, minInt(overlapByCluster)})
		}

		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].minOverlap > ranked[j].minOverlap })

		for j, r := range ranked {
			if j > capLimit {
				break
			}
			v := r.vertex
			maxDist := make([]float64, k)
			for c := range maxDist {
				maxDist[c] = -1.0
			}
			for _, e := range g.adj[v] {
				for _, c := range vertexClusters[e.v] {
					if e.weight > maxDist[c] {
						maxDist[c] = e.weight
					}
				}
			}

			minIndex, minScore := 0, math.MaxFloat64
			for c, d := range maxDist {
				if d < minScore {
					minIndex, minScore = c, d
				}
			}

			used.Insert(v)
			clusters[minIndex].Insert(g.reads[v])
			vertexClusters[v] = append(vertexClusters[v], minIndex)
		}
	}
	log.Debug.Printf("phase: populated clusters, %d/%d vertices used", used.Len(), n)
	return itersRun
}

// intersectPositions returns the variant positions both a and b call.
func intersectPositions(a, b *Frag) map[int]bool {
	short, long := a, b
	if len(long.Positions) < len(short.Positions) {
		short, long = long, short
	}
	out := make(map[int]bool)
	for pos := range short.Positions {
		if long.Positions[pos] {
			out[pos] = true
		}
	}
	return out
}

func minInt(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
