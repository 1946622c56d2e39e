// Package hll packs and unpacks the registers of a HyperLogLog sketch, so that a sketch can be
// stored or sent over the wire in far fewer bytes than one byte (or word) per register.
//
// There are two formats. The dense format stores m registers of binbits bits each, register i at
// bit offset i*binbits (PackRegisters, UnpackRegisters). The sparse format stores a list of
// (index, rho) entries, each packed into a single b+rbits wide field with the index in the high
// bits (CompressSparse, DecompressSparse). In both, the fields form one little-endian bitstream
// that is emitted in the minimum number of bytes, with zero padding in the last byte.
//
// Neither format is self-describing. The caller keeps the register count and the field widths
// next to the packed bytes; DenseSnapshot and SparseSnapshot do that for JSON.
//
// Hashing, register updates and cardinality estimation are left to the caller. All functions are
// pure and safe for concurrent use.
package hll
