package hll

import (
	"encoding/base64"
	"encoding/json"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// The packed forms carry no header, so whoever stores them also has to store the register count
// and the field widths. DenseSnapshot and SparseSnapshot do that: they marshal to a small JSON
// document holding the parameters next to the snappy-compressed, base64-encoded packed bytes.

// DenseSnapshot is a dense register array together with its field width.
type DenseSnapshot struct {
	Registers []uint64
	BinBits   int
}

type jsonableDense struct {
	M int    `json:"m"`
	W int    `json:"w"`
	D string `json:"d"`
}

// Convert the snapshot into JSON.
func (s *DenseSnapshot) MarshalJSON() ([]byte, error) {
	packed, err := PackRegisters(s.Registers, s.BinBits)
	if err != nil {
		return nil, err
	}
	compressed, err := snappyB64(packed)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&jsonableDense{len(s.Registers), s.BinBits, string(compressed)})
}

// Unmarshals JSON byte-array into a DenseSnapshot.
func (s *DenseSnapshot) UnmarshalJSON(buf []byte) error {
	j := jsonableDense{}
	if err := json.Unmarshal(buf, &j); err != nil {
		return err
	}

	packed, err := unsnappyB64([]byte(j.D))
	if err != nil {
		return err
	}
	regs, err := UnpackRegisters(packed, j.M, j.W)
	if err != nil {
		return err
	}

	s.Registers, s.BinBits = regs, j.W
	return nil
}

// SparseSnapshot is a sparse register list together with its entry layout.
type SparseSnapshot struct {
	Entries   []SparseEntry
	IndexBits int
	RhoBits   int
}

type jsonableSparse struct {
	B int    `json:"b"`
	R int    `json:"r"`
	N int    `json:"n"`
	D string `json:"d"`
}

// Convert the snapshot into JSON. The entry count is stored so that trailing zero entries survive
// the round trip.
func (s *SparseSnapshot) MarshalJSON() ([]byte, error) {
	packed, err := CompressSparse(s.Entries, s.IndexBits, s.RhoBits)
	if err != nil {
		return nil, err
	}
	compressed, err := snappyB64(packed)
	if err != nil {
		return nil, err
	}
	j := &jsonableSparse{s.IndexBits, s.RhoBits, len(s.Entries), string(compressed)}
	return json.Marshal(j)
}

// Unmarshals JSON byte-array into a SparseSnapshot.
func (s *SparseSnapshot) UnmarshalJSON(buf []byte) error {
	j := jsonableSparse{}
	if err := json.Unmarshal(buf, &j); err != nil {
		return err
	}

	packed, err := unsnappyB64([]byte(j.D))
	if err != nil {
		return err
	}
	entries, err := DecompressSparse(packed, j.B, j.R)
	if err != nil {
		return err
	}
	if j.N < 0 || j.N > len(entries) {
		return errors.Wrapf(ErrInsufficientData, "snapshot claims %d entries, payload holds %d",
			j.N, len(entries))
	}

	s.Entries, s.IndexBits, s.RhoBits = entries[:j.N], j.B, j.R
	return nil
}

// Compress the input using snappy and encode the result using URL-safe base64.
func snappyB64(in []byte) ([]byte, error) {
	compressed := snappy.Encode(nil, in)
	outBuf := make([]byte, base64.URLEncoding.EncodedLen(len(compressed)))
	base64.URLEncoding.Encode(outBuf, compressed)
	return outBuf, nil
}

// The inverse of snappyB64.
func unsnappyB64(in []byte) ([]byte, error) {
	unBase64ed := make([]byte, base64.URLEncoding.DecodedLen(len(in)))
	n, err := base64.URLEncoding.Decode(unBase64ed, in)
	if err != nil {
		return nil, errors.Wrap(err, "decoding base64 payload")
	}

	uncompressed, err := snappy.Decode(nil, unBase64ed[:n])
	if err != nil {
		return nil, errors.Wrap(err, "decompressing snappy payload")
	}

	// The snappy library returns nil when the output length is zero.
	if uncompressed == nil {
		uncompressed = []byte{}
	}
	return uncompressed, nil
}
