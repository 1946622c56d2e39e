package hll

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// DefaultRhoBits is the usual width of the rho part of a sparse entry. Six bits are enough to
// encode the position of a bit in a 64-bit hash (log2(64)==6).
const DefaultRhoBits = 6

// SparseEntry is one populated register of a sparse sketch: the register index and its rho value.
type SparseEntry struct {
	Index uint64
	Rho   uint64
}

// SparseFormat describes the bit layout of sparse entries. Each entry is a single
// IndexBits+RhoBits wide field with the index in the high bits and rho in the low bits. Entries
// are packed back to back in the order given, with no header and no entry count.
//
// Both widths must be non-negative and an entry must fit in 64 bits: 1 <= IndexBits+RhoBits <= 64.
// With DefaultRhoBits that allows at most 58 index bits. Other layouts fail with
// ErrInvalidArgument.
type SparseFormat struct {
	IndexBits int
	RhoBits   int
}

// NewSparseFormat returns the format for b index bits and DefaultRhoBits rho bits.
func NewSparseFormat(b int) SparseFormat {
	return SparseFormat{IndexBits: b, RhoBits: DefaultRhoBits}
}

// EntryBits is the width of one packed entry.
func (f SparseFormat) EntryBits() int {
	return f.IndexBits + f.RhoBits
}

func (f SparseFormat) validate() error {
	if f.IndexBits < 0 || f.RhoBits < 0 {
		return errors.Wrapf(ErrInvalidArgument, "index and rho widths must be non-negative (were %d, %d)",
			f.IndexBits, f.RhoBits)
	}
	return checkWidth("entry width", f.EntryBits())
}

// Compress packs entries into ceil(len(entries)*EntryBits()/8) bytes. An entry whose index or rho
// doesn't fit its width is rejected rather than allowed to spill into its neighbours.
func (f SparseFormat) Compress(entries []SparseEntry) ([]byte, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, byteCount(uint64(len(entries))*uint64(f.EntryBits())))
	if err := f.packInto(buf, entries); err != nil {
		return nil, err
	}
	return buf, nil
}

// Decompress unpacks the entries in data. The entry count is inferred from the length: it is
// len(data)*8/EntryBits(). Padding bits are indistinguishable from entries, so when the padding
// in the final byte is at least one entry wide it comes back as a trailing {0, 0} entry. Use
// CompressCounted and DecompressCounted when that matters.
func (f SparseFormat) Decompress(data []byte) ([]SparseEntry, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	numEntries := uint64(len(data)) * 8 / uint64(f.EntryBits())
	return f.unpack(data, numEntries), nil
}

// CompressCounted is Compress with the entry count written in front as a uvarint, so that the
// decoder doesn't have to infer it from the length.
func (f SparseFormat) CompressCounted(entries []SparseEntry) ([]byte, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	countBuf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(countBuf, uint64(len(entries)))

	buf := make([]byte, uint64(n)+byteCount(uint64(len(entries))*uint64(f.EntryBits())))
	copy(buf, countBuf[:n])
	if err := f.packInto(buf[n:], entries); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecompressCounted is the inverse of CompressCounted. It returns exactly as many entries as were
// written, including trailing zero entries.
func (f SparseFormat) DecompressCounted(data []byte) ([]SparseEntry, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "malformed entry count")
	}
	data = data[n:]

	entryBits := uint64(f.EntryBits())
	if count > uint64(len(data))*8/entryBits {
		return nil, errors.Wrapf(ErrInsufficientData, "%d entries need %d bytes, got %d", count,
			byteCount(count*entryBits), len(data))
	}
	if need := byteCount(count * entryBits); uint64(len(data)) != need {
		return nil, errors.Wrapf(ErrInvalidArgument, "%d trailing bytes after %d entries",
			uint64(len(data))-need, count)
	}
	return f.unpack(data, count), nil
}

func (f SparseFormat) packInto(buf []byte, entries []SparseEntry) error {
	indexBits, rhoBits := uint(f.IndexBits), uint(f.RhoBits)
	entryBits := uint64(f.EntryBits())
	maxIndex, maxRho := lowOnes(indexBits), lowOnes(rhoBits)

	for i, e := range entries {
		if e.Index > maxIndex {
			return errors.Wrapf(ErrInvalidArgument, "entry %d index %d exceeds %d-bit limit (%d)",
				i, e.Index, indexBits, maxIndex)
		}
		if e.Rho > maxRho {
			return errors.Wrapf(ErrInvalidArgument, "entry %d rho %d exceeds %d-bit limit (%d)",
				i, e.Rho, rhoBits, maxRho)
		}
		field := e.Index<<rhoBits | e.Rho
		writeField(buf, uint64(i)*entryBits, uint(entryBits), field)
	}
	return nil
}

func (f SparseFormat) unpack(data []byte, numEntries uint64) []SparseEntry {
	rhoBits := uint(f.RhoBits)
	entryBits := uint64(f.EntryBits())
	rhoMask := lowOnes(rhoBits)

	entries := make([]SparseEntry, numEntries)
	for i := range entries {
		field := readField(data, uint64(i)*entryBits, uint(entryBits))
		entries[i] = SparseEntry{Index: field >> rhoBits, Rho: field & rhoMask}
	}
	return entries
}

// CompressSparse packs entries using b index bits and rbits rho bits per entry. See
// SparseFormat.Compress.
func CompressSparse(entries []SparseEntry, b, rbits int) ([]byte, error) {
	return SparseFormat{IndexBits: b, RhoBits: rbits}.Compress(entries)
}

// DecompressSparse unpacks entries of b index bits and rbits rho bits. See
// SparseFormat.Decompress.
func DecompressSparse(data []byte, b, rbits int) ([]SparseEntry, error) {
	return SparseFormat{IndexBits: b, RhoBits: rbits}.Decompress(data)
}

// CompressSparseCounted is CompressSparse with a leading uvarint entry count.
func CompressSparseCounted(entries []SparseEntry, b, rbits int) ([]byte, error) {
	return SparseFormat{IndexBits: b, RhoBits: rbits}.CompressCounted(entries)
}

// DecompressSparseCounted is the inverse of CompressSparseCounted.
func DecompressSparseCounted(data []byte, b, rbits int) ([]SparseEntry, error) {
	return SparseFormat{IndexBits: b, RhoBits: rbits}.DecompressCounted(data)
}
