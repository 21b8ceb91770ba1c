// Package jhash provides 32-bit non-cryptographic hash functions for
// hash-table bucket selection and flow distribution.
//
// The primary function is HashLittle, Bob Jenkins' lookup3 hash reading
// input in little-endian byte order. HashBytes is a CRC32C folding hash
// and MurmurSum32 is murmur3; all three produce well distributed 32-bit
// values. None of them resist a malicious input-crafter: do not use this
// package where collision resistance matters.
//
// Original lookup3: http://burtleburtle.net/bob/c/lookup3.c
package jhash

import (
	"encoding/binary"
	"errors"
)

// ErrLengthOutOfRange is returned by HashLittleN when the requested
// length exceeds the bytes actually available.
var ErrLengthOutOfRange = errors.New("jhash: length exceeds available bytes")

// rot rotates x left by k bits. k must be in 1..31.
func rot(x, k uint32) uint32 {
	return (x << k) | (x >> (32 - k))
}

// mix scrambles the 96-bit state (a,b,c). The transformation is
// reversible, so repeated application never loses entropy that earlier
// blocks injected. Applied once per 12-byte input block.
func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= rot(c, 4)
	c += b

	b -= a
	b ^= rot(a, 6)
	a += c

	c -= b
	c ^= rot(b, 8)
	b += a

	a -= c
	a ^= rot(c, 16)
	c += b

	b -= a
	b ^= rot(a, 19)
	a += c

	c -= b
	c ^= rot(b, 4)
	b += a

	return a, b, c
}

// final collapses (a,b,c) so that small state differences avalanche
// into c. Unlike mix it is one-way; callers keep only c.
func final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= rot(b, 14)

	a ^= c
	a -= rot(c, 11)

	b ^= a
	b -= rot(a, 25)

	c ^= b
	c -= rot(b, 16)

	a ^= c
	a -= rot(c, 4)

	b ^= a
	b -= rot(a, 14)

	c ^= b
	c -= rot(b, 24)

	return a, b, c
}

// HashLittle hashes k, seeded with initval, and returns a 32-bit value.
// The same k and initval always produce the same result, so a previous
// hash can be fed back as the seed of the next call to chain hashes.
//
// An empty k returns 0xdeadbeef + initval: the reference algorithm
// skips finalization when there is no input, and downstream consumers
// depend on that exact constant.
func HashLittle(k []byte, initval uint32) uint32 {
	a := 0xdeadbeef + uint32(len(k)) + initval
	b := a
	c := a

	// All but the last block. The boundary is strictly > 12 so that a
	// final full block still goes through the tail fold and final;
	// only a zero-length input returns c unfinalized.
	for len(k) > 12 {
		a += binary.LittleEndian.Uint32(k[0:4])
		b += binary.LittleEndian.Uint32(k[4:8])
		c += binary.LittleEndian.Uint32(k[8:12])
		a, b, c = mix(a, b, c)
		k = k[12:]
	}

	// Last block: 1..12 bytes, folded one guarded byte at a time in
	// descending order. Every guard that passes applies.
	n := len(k)
	if n == 0 {
		return c
	}
	if n >= 12 {
		c += uint32(k[11]) << 24
	}
	if n >= 11 {
		c += uint32(k[10]) << 16
	}
	if n >= 10 {
		c += uint32(k[9]) << 8
	}
	if n >= 9 {
		c += uint32(k[8])
	}
	if n >= 8 {
		b += uint32(k[7]) << 24
	}
	if n >= 7 {
		b += uint32(k[6]) << 16
	}
	if n >= 6 {
		b += uint32(k[5]) << 8
	}
	if n >= 5 {
		b += uint32(k[4])
	}
	if n >= 4 {
		a += uint32(k[3]) << 24
	}
	if n >= 3 {
		a += uint32(k[2]) << 16
	}
	if n >= 2 {
		a += uint32(k[1]) << 8
	}
	a += uint32(k[0])

	_, _, c = final(a, b, c)
	return c
}

// HashLittleN hashes the first length bytes of k. It reports
// ErrLengthOutOfRange instead of reading past the end of k when length
// is negative or exceeds len(k).
func HashLittleN(k []byte, length int, initval uint32) (uint32, error) {
	if length < 0 || length > len(k) {
		return 0, ErrLengthOutOfRange
	}
	return HashLittle(k[:length], initval), nil
}

// Sum32 hashes k with a zero seed.
func Sum32(k []byte) uint32 {
	return HashLittle(k, 0)
}
