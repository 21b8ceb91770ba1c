// Package maglev implements a maglev consistent-hash lookup table that
// spreads flow keys across weighted destinations. Rebuilding the table
// after a destination change reassigns as few flows as possible.
package maglev

import (
	"errors"

	jhash "jhash.com"
)

const DefaultSizeIndex = 5

var tableSizePrimes = []uint32{11, 251, 509, 1021, 2039, 4093, 8191, 16381, 32749, 65521, 131071}

var (
	ErrNoDests     = errors.New("maglev: no destinations")
	ErrAllDisabled = errors.New("maglev: all destinations have zero weight")
)

// TableSize returns the idx'th prime lookup table size. Out-of-range
// indexes fall back to DefaultSizeIndex.
func TableSize(idx int) uint32 {
	if idx < 0 || idx >= len(tableSizePrimes) {
		idx = DefaultSizeIndex
	}
	return tableSizePrimes[idx]
}

// Dest is one weighted destination. Weight 0 disables the destination
// without removing it from the set.
type Dest struct {
	Name   string
	Weight uint32
	Data   interface{}
}

// destSetup holds the per-destination permutation walk state used while
// populating the lookup table.
type destSetup struct {
	offset uint32
	skip   uint32
	perm   uint32
	turns  uint32
}

// Table maps hashed flow keys onto destinations. It is immutable after
// New and safe for concurrent lookups.
type Table struct {
	size   uint32
	seed   uint32
	dests  []Dest
	lookup []int32
}

// New builds a lookup table of TableSize(sizeIndex) slots over dests.
// The seed perturbs both the per-destination permutations and the key
// hash, so independent tables can shard the same keys differently.
func New(dests []Dest, sizeIndex int, seed uint32) (*Table, error) {
	if len(dests) == 0 {
		return nil, ErrNoDests
	}
	t := &Table{
		size:  TableSize(sizeIndex),
		seed:  seed,
		dests: append([]Dest(nil), dests...),
	}
	if err := t.populate(); err != nil {
		return nil, err
	}
	return t, nil
}

func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// populate fills every slot by walking each destination's permutation
// of the table, taking weight/gcd consecutive slots per round so that
// slot counts track the configured weights.
func (t *Table) populate() error {
	var g uint32
	for _, d := range t.dests {
		if d.Weight > 0 {
			g = gcd(g, d.Weight)
		}
	}
	if g == 0 {
		return ErrAllDisabled
	}

	setup := make([]destSetup, len(t.dests))
	for i, d := range t.dests {
		if d.Weight == 0 {
			continue
		}
		name := []byte(d.Name)
		setup[i] = destSetup{
			offset: jhash.HashLittle(name, t.seed) % t.size,
			skip:   jhash.MurmurSum32(name, t.seed)%(t.size-1) + 1,
			turns:  d.Weight / g,
		}
	}

	t.lookup = make([]int32, t.size)
	for i := range t.lookup {
		t.lookup[i] = -1
	}

	var filled uint32
	for {
		for i, d := range t.dests {
			if d.Weight == 0 {
				continue
			}
			ds := &setup[i]
			for n := uint32(0); n < ds.turns; n++ {
				slot := ds.next(t.size)
				for t.lookup[slot] >= 0 {
					slot = ds.next(t.size)
				}
				t.lookup[slot] = int32(i)
				filled++
				if filled == t.size {
					return nil
				}
			}
		}
	}
}

// next advances the permutation walk one step. The product is widened
// to 64 bits: the prime size keeps the walk a full cycle only as long
// as the multiplication does not wrap.
func (ds *destSetup) next(size uint32) uint32 {
	slot := uint32((uint64(ds.offset) + uint64(ds.perm)*uint64(ds.skip)) % uint64(size))
	ds.perm++
	return slot
}

// Lookup returns the destination owning key's slot.
func (t *Table) Lookup(key []byte) *Dest {
	slot := jhash.HashLittle(key, t.seed) % t.size
	return &t.dests[t.lookup[slot]]
}

// Size returns the number of lookup slots.
func (t *Table) Size() uint32 {
	return t.size
}
