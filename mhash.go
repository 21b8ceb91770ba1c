package jhash

import (
	"encoding/binary"
	"hash"
)

const (
	murmurC1 = 0xcc9e2d51
	murmurC2 = 0x1b873593
)

// Murmur32 is a streaming murmur3 32-bit digest. It implements
// hash.Hash32; Write may be called with any chunking and Sum32 does not
// disturb the running state. Not safe for concurrent use.
type Murmur32 struct {
	h     uint32
	seed  uint32
	tail  [4]byte
	ntail int
	total int
}

var _ hash.Hash32 = (*Murmur32)(nil)

// NewMurmur32 returns a murmur3 digest with a zero seed.
func NewMurmur32() *Murmur32 {
	return NewMurmur32Seed(0)
}

// NewMurmur32Seed returns a murmur3 digest seeded with seed.
func NewMurmur32Seed(seed uint32) *Murmur32 {
	return &Murmur32{h: seed, seed: seed}
}

func murmurBlock(h, k uint32) uint32 {
	k *= murmurC1
	k = rot(k, 15)
	k *= murmurC2

	h ^= k
	h = rot(h, 13)
	return h*5 + 0xe6546b64
}

func murmurFmix(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func (d *Murmur32) Write(p []byte) (int, error) {
	n := len(p)
	d.total += n

	if d.ntail > 0 {
		need := 4 - d.ntail
		if len(p) < need {
			d.ntail += copy(d.tail[d.ntail:], p)
			return n, nil
		}
		copy(d.tail[d.ntail:], p[:need])
		d.h = murmurBlock(d.h, binary.LittleEndian.Uint32(d.tail[:]))
		d.ntail = 0
		p = p[need:]
	}

	for len(p) >= 4 {
		d.h = murmurBlock(d.h, binary.LittleEndian.Uint32(p[:4]))
		p = p[4:]
	}

	d.ntail = copy(d.tail[:], p)
	return n, nil
}

func (d *Murmur32) Sum32() uint32 {
	h := d.h

	var k uint32
	switch d.ntail {
	case 3:
		k ^= uint32(d.tail[2]) << 16
		fallthrough
	case 2:
		k ^= uint32(d.tail[1]) << 8
		fallthrough
	case 1:
		k ^= uint32(d.tail[0])
		k *= murmurC1
		k = rot(k, 15)
		k *= murmurC2
		h ^= k
	}

	h ^= uint32(d.total)
	return murmurFmix(h)
}

func (d *Murmur32) Reset() {
	d.h = d.seed
	d.ntail = 0
	d.total = 0
}

func (d *Murmur32) Size() int { return 4 }

func (d *Murmur32) BlockSize() int { return 4 }

func (d *Murmur32) Sum(in []byte) []byte {
	v := d.Sum32()
	return append(in, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// MurmurSum32 is the one-shot form of Murmur32.
func MurmurSum32(k []byte, seed uint32) uint32 {
	h := seed

	data := k
	for len(data) >= 4 {
		h = murmurBlock(h, binary.LittleEndian.Uint32(data[:4]))
		data = data[4:]
	}

	var t uint32
	switch len(data) {
	case 3:
		t ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		t ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		t ^= uint32(data[0])
		t *= murmurC1
		t = rot(t, 15)
		t *= murmurC2
		h ^= t
	}

	h ^= uint32(len(k))
	return murmurFmix(h)
}
