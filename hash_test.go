package jhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashBytesVectors(t *testing.T) {
	tests := []struct {
		key   string
		basis uint32
		want  uint32
	}{
		{"", 0, 0xdd9f7d61},
		{"\x06", 0, 0xf7ad3143},
		{"abc", 0, 0x2f844729},
		{"abcd", 0, 0x29dec03f},
		{"hello, world", 0, 0xd8b8b6e7},
		{"abc", 0xdeadbeef, 0x990dc516},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HashBytes([]byte(tt.key), tt.basis),
			"key %q basis %#x", tt.key, tt.basis)
	}
}

func TestHashAddFinish(t *testing.T) {
	h := HashAdd(0, 6)
	assert.Equal(t, uint32(0x8c2259b5), h)
	assert.Equal(t, uint32(0xee75e270), HashFinish(h, 8))
}

// The byte length is folded in at the end, so the zero padding of a
// trailing partial word cannot collide with real zero bytes.
func TestHashBytesLengthSensitive(t *testing.T) {
	a := HashBytes([]byte{1, 2, 3}, 0)
	b := HashBytes([]byte{1, 2, 3, 0}, 0)
	assert.Equal(t, uint32(0xac5aeaf1), a)
	assert.Equal(t, uint32(0x6554fe23), b)
	assert.NotEqual(t, a, b)
}

func TestHashBytesBasis(t *testing.T) {
	assert.NotEqual(t, HashBytes([]byte("abc"), 1), HashBytes([]byte("abc"), 2))
	assert.Equal(t, HashBytes([]byte("abc"), 1), HashBytes([]byte("abc"), 1))
}
