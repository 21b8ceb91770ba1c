package maglev

import (
	"errors"

	jhash "jhash.com"
)

// groupHashEntries is the fixed slot count of a Group hash map. Keeping
// it a power of two lets selection mask instead of divide.
const groupHashEntries = 256

var (
	ErrNoBuckets      = errors.New("maglev: group has no buckets")
	ErrTooManyBuckets = errors.New("maglev: more buckets than hash map entries")
)

// Bucket is one weighted member of a Group.
type Bucket struct {
	ID     uint32
	Weight uint16
}

// Group is a datapath-style hash select group: a fixed power-of-two
// slot array filled proportionally to bucket weight, indexed by the
// masked CRC flow hash. Unlike a maglev Table it does not try to keep
// assignments stable across rebuilds; it is the cheap variant for
// static bucket sets.
type Group struct {
	ID      uint32
	Buckets []Bucket

	basis   uint32
	mask    uint32
	hashMap []int32
}

// NewGroup builds the slot array for buckets. Zero-weight buckets get
// no slots. The basis seeds the flow hash.
func NewGroup(id uint32, buckets []Bucket, basis uint32) (*Group, error) {
	if len(buckets) == 0 {
		return nil, ErrNoBuckets
	}
	if len(buckets) > groupHashEntries {
		return nil, ErrTooManyBuckets
	}

	var total uint32
	for _, b := range buckets {
		total += uint32(b.Weight)
	}
	if total == 0 {
		return nil, ErrAllDisabled
	}

	g := &Group{
		ID:      id,
		Buckets: append([]Bucket(nil), buckets...),
		basis:   basis,
		mask:    groupHashEntries - 1,
		hashMap: make([]int32, groupHashEntries),
	}

	// Largest-remainder apportionment of the slot array.
	counts := make([]uint32, len(buckets))
	rems := make([]uint64, len(buckets))
	var used uint32
	for i, b := range buckets {
		exact := uint64(b.Weight) * groupHashEntries
		counts[i] = uint32(exact / uint64(total))
		rems[i] = exact % uint64(total)
		used += counts[i]
	}
	for used < groupHashEntries {
		best := -1
		for i, b := range buckets {
			if b.Weight == 0 {
				continue
			}
			if best < 0 || rems[i] > rems[best] {
				best = i
			}
		}
		counts[best]++
		rems[best] = 0
		used++
	}

	slot := 0
	for i := range buckets {
		for n := uint32(0); n < counts[i]; n++ {
			g.hashMap[slot] = int32(i)
			slot++
		}
	}
	return g, nil
}

// Select returns the bucket owning key's slot.
func (g *Group) Select(key []byte) *Bucket {
	i := g.hashMap[jhash.HashBytes(key, g.basis)&g.mask]
	return &g.Buckets[i]
}
