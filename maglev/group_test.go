package maglev

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroupErrors(t *testing.T) {
	_, err := NewGroup(1, nil, 0)
	assert.ErrorIs(t, err, ErrNoBuckets)

	_, err = NewGroup(1, []Bucket{{ID: 1}, {ID: 2}}, 0)
	assert.ErrorIs(t, err, ErrAllDisabled)

	many := make([]Bucket, groupHashEntries+1)
	for i := range many {
		many[i] = Bucket{ID: uint32(i), Weight: 1}
	}
	_, err = NewGroup(1, many, 0)
	assert.ErrorIs(t, err, ErrTooManyBuckets)
}

func TestGroupSlotApportionment(t *testing.T) {
	g, err := NewGroup(7, []Bucket{
		{ID: 10, Weight: 1},
		{ID: 20, Weight: 1},
		{ID: 30, Weight: 2},
	}, 0)
	require.NoError(t, err)

	counts := make([]int, 3)
	for _, idx := range g.hashMap {
		counts[idx]++
	}
	assert.Equal(t, []int{64, 64, 128}, counts)
}

func TestGroupZeroWeightBucket(t *testing.T) {
	g, err := NewGroup(7, []Bucket{
		{ID: 10, Weight: 0},
		{ID: 20, Weight: 5},
	}, 0)
	require.NoError(t, err)

	for _, idx := range g.hashMap {
		require.Equal(t, int32(1), idx)
	}
	for i := 0; i < 100; i++ {
		key := []byte(fmt.Sprintf("flow-%d", i))
		assert.Equal(t, uint32(20), g.Select(key).ID)
	}
}

func TestGroupSelect(t *testing.T) {
	g, err := NewGroup(7, []Bucket{
		{ID: 10, Weight: 1},
		{ID: 20, Weight: 1},
	}, 0x1234)
	require.NoError(t, err)

	hit := make(map[uint32]int)
	for i := 0; i < 1000; i++ {
		key := []byte(fmt.Sprintf("10.1.%d.%d", i/256, i%256))
		b := g.Select(key)
		require.NotNil(t, b)
		assert.Same(t, b, g.Select(key))
		hit[b.ID]++
	}

	// Both buckets should see traffic with equal weights.
	assert.Greater(t, hit[10], 200)
	assert.Greater(t, hit[20], 200)
}
