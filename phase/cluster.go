package phase

import "github.com/grailbio/base/log"

// ClusterReads partitions reads into ploidy clusters: it builds a weighted
// read-read graph (see buildReadGraph), greedily seeds a ploidy-clique from
// it (see seedClique), and populates the remaining vertices into whichever
// seeded cluster they fit best (see populateClusters). The returned
// RunStats reports the clique size seeded and the number of populator
// passes run.
//
// If the graph has no edges at all (no two reads share a variant position),
// ClusterReads returns ploidy empty clusters directly, with a zero RunStats.
func ClusterReads(reads []*Frag, ploidy int, epsilon float64) (Partition, RunStats) {
	g := buildReadGraph(reads, epsilon)
	if len(g.edges) == 0 {
		return NewPartition(ploidy), RunStats{}
	}

	clique := seedClique(g, ploidy)

	clusters := make([]Cluster, ploidy)
	for i := range clusters {
		clusters[i] = NewCluster()
	}
	used := newVertexSet()
	vertexClusters := make([][]int, len(reads))

	// If the clique fell short of ploidy vertices, the remaining clusters
	// simply start empty -- the clique seeder's conservative fallback (see
	// DESIGN.md) -- and populateClusters may still fill them from overlap.
	for i, v := range clique {
		used.Insert(v)
		clusters[i].Insert(reads[v])
		vertexClusters[v] = append(vertexClusters[v], i)
	}

	populateIters := populateClusters(clusters, used, g, vertexClusters)

	partition := Partition(clusters)
	stats := RunStats{CliqueSize: len(clique), PopulateIters: populateIters}
	log.Debug.Printf("phase: cluster_reads done: %d reads, %d clusters", len(reads), ploidy)
	return partition, stats
}

// GenerateHapBlock selects the reads touching [start, end] and clusters
// them: it is the composition ReadsInInterval . ClusterReads.
func GenerateHapBlock(start, end, ploidy int, allFrags []*Frag, epsilon float64) (Partition, RunStats) {
	reads := ReadsInInterval(start, end, allFrags)
	return ClusterReads(reads, ploidy, epsilon)
}
