package hll

// Bit manipulation functions

const all1s uint64 = 1<<64 - 1

// Return a bitmask containing ones from position startPos to endPos, inclusive.
// startPos and endPos are 0-indexed so they should be in [0,63].
// startPos should be less than or equal to endPos.
func onesFromTo(startPos, endPos uint) uint64 {
	// Generate two overlapping sequences of 1s, and keep the overlap.
	highOrderOnes := all1s << startPos
	lowOrderOnes := all1s >> (64 - endPos - 1)
	return highOrderOnes & lowOrderOnes
}

// Return a mask of the low width bits. width is in [0,64]; zero gives an empty mask.
func lowOnes(width uint) uint64 {
	if width == 0 {
		return 0
	}
	return onesFromTo(0, width-1)
}

// Return bits x[startPos:endPos] inclusive, shifted into the low order bits of the result.
// startPos and endPos are 0-indexed so they should be in [0,63].
// startPos should be less than or equal to endPos.
func extractShift(x uint64, startPos, endPos uint) uint64 {
	return (x & onesFromTo(startPos, endPos)) >> startPos
}

// The number of bytes needed to hold bitCount bits.
func byteCount(bitCount uint64) uint64 {
	return (bitCount + 7) / 8
}

func minUint(x, y uint) uint {
	if x <= y {
		return x
	}
	return y
}
