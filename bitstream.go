package hll

// The packed forms are one little-endian bitstream: field i of width w occupies bit offsets
// [i*w, i*w+w), counting from the least significant bit of byte 0. Fields are written and read a
// byte at a time, carrying the remainder of the field into the next byte.

// Write the low width bits of v at bit offset in buf, leaving all other bits untouched. width is
// in [1,64]. buf must hold at least offset+width bits.
func writeField(buf []byte, offset uint64, width uint, v uint64) {
	for width > 0 {
		byteIdx := offset / 8
		startBit := uint(offset % 8)
		n := minUint(width, 8-startBit)

		b := buf[byteIdx]
		b &^= uint8(onesFromTo(startBit, startBit+n-1)) // Clear the bits holding this part of v.
		b |= uint8((v & lowOnes(n)) << startBit)
		buf[byteIdx] = b

		v >>= n
		offset += uint64(n)
		width -= n
	}
}

// Read width bits at bit offset in buf. width is in [1,64]. buf must hold at least offset+width
// bits.
func readField(buf []byte, offset uint64, width uint) uint64 {
	var result uint64
	var shift uint
	for width > 0 {
		byteIdx := offset / 8
		startBit := uint(offset % 8)
		n := minUint(width, 8-startBit)

		result |= extractShift(uint64(buf[byteIdx]), startBit, startBit+n-1) << shift

		shift += n
		offset += uint64(n)
		width -= n
	}
	return result
}
