package phase

import (
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
)

func TestClusterInsertRemoveContains(t *testing.T) {
	c := NewCluster()
	f := NewFrag("a", map[int]Allele{1: 0})
	assert.False(t, c.Contains(f))

	c.Insert(f)
	assert.True(t, c.Contains(f))
	expect.EQ(t, c.Len(), 1)

	assert.True(t, c.Remove(f))
	assert.False(t, c.Contains(f))
	assert.False(t, c.Remove(f))
}

func TestClusterDoIsSortedByID(t *testing.T) {
	c := NewCluster()
	names := []string{"delta", "alpha", "charlie", "bravo"}
	for _, n := range names {
		c.Insert(NewFrag(n, map[int]Allele{1: 0}))
	}

	var ids []uint64
	c.Do(func(f *Frag) { ids = append(ids, f.ID()) })
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
	expect.EQ(t, len(ids), 4)
}

func TestPartitionCloneIsIndependent(t *testing.T) {
	p := NewPartition(2)
	f := NewFrag("a", map[int]Allele{1: 0})
	p[0].Insert(f)

	clone := p.Clone()
	clone[0].Remove(f)

	assert.True(t, p[0].Contains(f))
	assert.False(t, clone[0].Contains(f))
}

func TestVertexSetInsertIsIdempotent(t *testing.T) {
	s := newVertexSet()
	s.Insert(3)
	s.Insert(3)
	s.Insert(7)
	expect.EQ(t, s.Len(), 2)
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
}
