package hll

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// The dense ("normal") representation stores one binbits-wide field per register, in register
// order, with nothing else in the byte slice. The register count and width are not recorded; the
// caller keeps them alongside the bytes.

// PackRegisters packs registers into ceil(len(registers)*binbits/8) bytes, placing register i at bit
// offset i*binbits. binbits must be in [1,64] and every register in [0, 2^binbits-1]. An empty input
// gives an empty result. The size limit is checked before any register is looked at.
func PackRegisters[T constraints.Integer](registers []T, binbits int) ([]byte, error) {
	if err := checkWidth("binbits", binbits); err != nil {
		return nil, err
	}
	if len(registers) == 0 {
		return []byte{}, nil
	}
	if err := checkCapacity(len(registers), binbits); err != nil {
		return nil, err
	}

	maxVal := lowOnes(uint(binbits))
	for i, val := range registers {
		if val < 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "register %d must be non-negative (was %d)",
				i, val)
		}
		if uint64(val) > maxVal {
			return nil, errors.Wrapf(ErrInvalidArgument, "register %d value %d exceeds %d-bit limit (%d)",
				i, val, binbits, maxVal)
		}
	}

	width := uint(binbits)
	buf := make([]byte, byteCount(uint64(len(registers))*uint64(width)))
	for i, val := range registers {
		writeField(buf, uint64(i)*uint64(width), width, uint64(val))
	}
	return buf, nil
}

// UnpackRegisters is the inverse of PackRegisters: it reads m registers of binbits bits each from
// data. Bytes beyond the first ceil(m*binbits/8) are ignored. As in PackRegisters, m*binbits is
// checked against MaxBitstreamBits before anything else about data.
func UnpackRegisters(data []byte, m, binbits int) ([]uint64, error) {
	if err := checkWidth("binbits", binbits); err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "m must be non-negative (was %d)", m)
	}
	if m == 0 {
		return []uint64{}, nil
	}

	if err := checkCapacity(m, binbits); err != nil {
		return nil, err
	}

	width := uint(binbits)
	if requiredBytes := byteCount(uint64(m) * uint64(width)); uint64(len(data)) < requiredBytes {
		return nil, errors.Wrapf(ErrInsufficientData, "need %d bytes, got %d", requiredBytes, len(data))
	}

	regs := make([]uint64, m)
	for i := range regs {
		regs[i] = readField(data, uint64(i)*uint64(width), width)
	}
	return regs, nil
}

// RegisterAt returns register i of a packed dense array without unpacking the rest of it.
func RegisterAt(data []byte, i, binbits int) (uint64, error) {
	if err := checkRegisterPosn(data, i, binbits); err != nil {
		return 0, err
	}
	return readField(data, uint64(i)*uint64(binbits), uint(binbits)), nil
}

// SetRegisterAt overwrites register i of a packed dense array in place. The neighbouring registers
// are left as they were.
func SetRegisterAt(data []byte, i, binbits int, value uint64) error {
	if err := checkRegisterPosn(data, i, binbits); err != nil {
		return err
	}
	if maxVal := lowOnes(uint(binbits)); value > maxVal {
		return errors.Wrapf(ErrInvalidArgument, "register %d value %d exceeds %d-bit limit (%d)",
			i, value, binbits, maxVal)
	}
	writeField(data, uint64(i)*uint64(binbits), uint(binbits), value)
	return nil
}

func checkRegisterPosn(data []byte, i, binbits int) error {
	if err := checkWidth("binbits", binbits); err != nil {
		return err
	}
	if i < 0 {
		return errors.Wrapf(ErrInvalidArgument, "register index must be non-negative (was %d)", i)
	}
	// Register i ends at bit (i+1)*binbits, so i must be below MaxBitstreamBits/binbits.
	if uint64(i) >= MaxBitstreamBits/uint64(binbits) {
		return errors.Wrapf(ErrCapacityExceeded, "register %d lies beyond the %d-bit limit", i,
			MaxBitstreamBits)
	}
	if need := byteCount(uint64(i+1) * uint64(binbits)); uint64(len(data)) < need {
		return errors.Wrapf(ErrInsufficientData, "register %d needs %d bytes, got %d", i, need,
			len(data))
	}
	return nil
}
