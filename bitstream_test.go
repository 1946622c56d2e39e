package hll

import (
	"math/rand"
	"testing"

	"github.com/bmizerany/assert"
)

func TestWriteFieldAcrossBytes(t *testing.T) {
	buf := make([]byte, 3)

	// 12 bits at offset 6 spans all three bytes.
	writeField(buf, 6, 12, 0xABC)
	assert.Equal(t, []byte{0x00, 0xAF, 0x02}, buf)
	assert.Equal(t, uint64(0xABC), readField(buf, 6, 12))

	// Neighbouring bits are preserved when a field is overwritten.
	buf = []byte{0xFF, 0xFF, 0xFF}
	writeField(buf, 6, 12, 0)
	assert.Equal(t, []byte{0x3F, 0x00, 0xFC}, buf)
}

func TestFullWidthField(t *testing.T) {
	buf := make([]byte, 9)
	writeField(buf, 3, 64, all1s)
	assert.Equal(t, all1s, readField(buf, 3, 64))
	assert.Equal(t, uint8(0xF8), buf[0])
	assert.Equal(t, uint8(0x07), buf[8])
}

func TestFieldGetSet(t *testing.T) {
	for _, width := range []uint{1, 3, 5, 6, 7, 8, 11, 17, 32, 63, 64} {
		// Try a power of two, also power of two +/- 1.
		for _, numFields := range []uint64{1023, 1024, 1025} {
			iterativeGetSet(t, width, numFields)
		}
	}
}

func iterativeGetSet(t *testing.T, width uint, numFields uint64) {
	buf := make([]byte, byteCount(numFields*uint64(width)))
	r := rand.New(rand.NewSource(int64(width)))
	expected := make([]uint64, numFields)

	for i := uint64(0); i < numFields; i++ {
		valToInsert := r.Uint64() & lowOnes(width)
		expected[i] = valToInsert
		writeField(buf, i*uint64(width), width, valToInsert)
		readBack := readField(buf, i*uint64(width), width)
		if readBack != valToInsert {
			t.Fatal(width, i, readBack, valToInsert)
		}
	}

	for i := uint64(0); i < numFields; i++ {
		readBack := readField(buf, i*uint64(width), width)
		if readBack != expected[i] {
			t.Fatal(width, i, readBack, expected[i])
		}
	}
}
