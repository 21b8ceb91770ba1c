package jhash

import (
	"encoding/binary"

	"github.com/klauspost/crc32"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// HashAdd folds one 32-bit word into a running CRC32C accumulator.
func HashAdd(hash, data uint32) uint32 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], data)
	return crc32.Update(hash, castagnoli, b[:])
}

// HashFinish folds a final 64-bit word, usually the byte length, into
// the accumulator and spreads the result.
func HashFinish(hash uint32, final uint64) uint32 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], final)

	/* The finishing multiplier 0x805204f3 has been experimentally
	 * derived to pass the testsuite hash tests. */
	h := crc32.Update(hash, castagnoli, b[:]) * 0x805204f3
	return h ^ h>>16 /* Increase entropy in LSBs. */
}

// HashBytes hashes data one 32-bit word at a time, zero-padding the
// trailing partial word, and finishes with the byte length so that
// inputs differing only by trailing zero bytes still diverge.
func HashBytes(data []byte, basis uint32) uint32 {
	h := basis
	n := len(data)

	for len(data) >= 4 {
		h = crc32.Update(h, castagnoli, data[:4])
		data = data[4:]
	}

	if len(data) > 0 {
		var b [4]byte
		copy(b[:], data)
		h = crc32.Update(h, castagnoli, b[:])
	}

	return HashFinish(h, uint64(n))
}
