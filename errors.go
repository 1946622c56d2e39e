package hll

import (
	"github.com/pkg/errors"
)

// Errors returned by the codec. Every error produced by this package wraps exactly one of these;
// use errors.Cause (or errors.Is) to classify a failure.
var (
	// ErrInvalidArgument means a width, count or register value is out of its permitted range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInsufficientData means the input bytes are shorter than the requested fields require.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrCapacityExceeded means the requested bitstream is larger than MaxBitstreamBits.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// MaxBitstreamBits caps the size of a dense bitstream, on both the pack and unpack paths, so that a
// bad register count can't make us allocate without bound.
const MaxBitstreamBits = 1 << 20

// Returns an error unless width is a usable field width, i.e. in [1,64].
func checkWidth(name string, width int) error {
	if width < 1 || width > 64 {
		return errors.Wrapf(ErrInvalidArgument, "%s must be in [1,64] (was %d)", name, width)
	}
	return nil
}

// Returns an error unless count fields of width bits fit in MaxBitstreamBits. width must already
// be in [1,64]. The comparison divides rather than multiplies so a huge count can't wrap around.
func checkCapacity(count, width int) error {
	if count < 0 || uint64(count) > MaxBitstreamBits/uint64(width) {
		return errors.Wrapf(ErrCapacityExceeded, "%d fields of %d bits exceed limit of %d bits",
			count, width, MaxBitstreamBits)
	}
	return nil
}
