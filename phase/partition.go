package phase

import (
	"sort"

	"github.com/biogo/store/llrb"
)

// Cluster is a disjoint set of fragments, one haplotype's worth of reads.
// Fragments are keyed by Frag.ID so membership tests and inserts are cheap
// even though Frag itself isn't comparable.
type Cluster struct {
	frags map[uint64]*Frag
}

// NewCluster returns an empty cluster.
func NewCluster() Cluster {
	return Cluster{frags: make(map[uint64]*Frag)}
}

// Insert adds f to the cluster. Inserting a fragment already present is a
// no-op.
func (c Cluster) Insert(f *Frag) { c.frags[f.ID()] = f }

// Remove deletes f from the cluster, reporting whether it was present.
func (c Cluster) Remove(f *Frag) bool {
	if _, ok := c.frags[f.ID()]; !ok {
		return false
	}
	delete(c.frags, f.ID())
	return true
}

// Contains reports whether f is a member of the cluster.
func (c Cluster) Contains(f *Frag) bool {
	_, ok := c.frags[f.ID()]
	return ok
}

// Len returns the number of fragments in the cluster.
func (c Cluster) Len() int { return len(c.frags) }

// Do calls fn once for every fragment in the cluster, in ascending
// Frag.ID order, so that callers get deterministic output regardless of Go's
// randomized map iteration.
func (c Cluster) Do(fn func(*Frag)) {
	ids := make([]uint64, 0, len(c.frags))
	for id := range c.frags {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fn(c.frags[id])
	}
}

// Fragments returns the cluster's members as a slice, in ascending
// Frag.ID order.
func (c Cluster) Fragments() []*Frag {
	out := make([]*Frag, 0, len(c.frags))
	c.Do(func(f *Frag) { out = append(out, f) })
	return out
}

// Partition is a length-k sequence of disjoint fragment clusters, one per
// haplotype. Partitions need not cover every input fragment: empty clusters
// are legal, and a fragment may simply be absent from all of them.
type Partition []Cluster

// NewPartition returns a partition of k empty clusters.
func NewPartition(k int) Partition {
	p := make(Partition, k)
	for i := range p {
		p[i] = NewCluster()
	}
	return p
}

// Clone returns a partition with the same cluster membership as p, backed by
// fresh Cluster maps so mutating the clone never affects p.
func (p Partition) Clone() Partition {
	out := make(Partition, len(p))
	for i, c := range p {
		clone := NewCluster()
		c.Do(func(f *Frag) { clone.Insert(f) })
		out[i] = clone
	}
	return out
}

// vertexSet is an ordered set of vertex indices into a read list, used by
// the clique seeder and cluster populator to track which vertices have
// already been placed. It is backed by an llrb tree rather than a plain Go
// map so that, unlike map iteration, walking its members is reproducible --
// though here we only ever probe membership (Insert/Get), matching the
// narrow llrb.Tree usage in the teacher's shard index.
type vertexSet struct {
	tree  llrb.Tree
	count int
}

type vertexKey int

func (k vertexKey) Compare(other llrb.Comparable) int {
	return int(k) - int(other.(vertexKey))
}

func newVertexSet() *vertexSet {
	return &vertexSet{}
}

func (s *vertexSet) Insert(v int) {
	if s.Contains(v) {
		return
	}
	s.tree.Insert(vertexKey(v))
	s.count++
}

func (s *vertexSet) Contains(v int) bool {
	return s.tree.Get(vertexKey(v)) != nil
}

func (s *vertexSet) Len() int {
	return s.count
}
