package bench

import (
	"fmt"
	"math/rand"
	"testing"

	hll "github.com/Suravi021/HLL"
)

// Register widths and counts typical of HLL sketches: 5 and 6 bit registers at p=14, and 8 bits.
var denseCases = []struct {
	binbits, m int
}{
	{5, 1 << 14},
	{6, 1 << 14},
	{8, 1 << 14},
	{6, 1 << 10},
}

func BenchmarkPackRegisters(b *testing.B) {
	for _, c := range denseCases {
		regs := randRegisters(c.m, c.binbits)
		b.Run(fmt.Sprintf("binbits=%d/m=%d", c.binbits, c.m), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(c.m))
			for i := 0; i < b.N; i++ {
				if _, err := hll.PackRegisters(regs, c.binbits); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUnpackRegisters(b *testing.B) {
	for _, c := range denseCases {
		packed, err := hll.PackRegisters(randRegisters(c.m, c.binbits), c.binbits)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("binbits=%d/m=%d", c.binbits, c.m), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(packed)))
			for i := 0; i < b.N; i++ {
				if _, err := hll.UnpackRegisters(packed, c.m, c.binbits); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCompressSparse(b *testing.B) {
	f := hll.NewSparseFormat(14)
	entries := randEntries(1000, f)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := f.Compress(entries); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompressSparse(b *testing.B) {
	f := hll.NewSparseFormat(14)
	compressed, err := f.Compress(randEntries(1000, f))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(compressed)))
	for i := 0; i < b.N; i++ {
		if _, err := f.Decompress(compressed); err != nil {
			b.Fatal(err)
		}
	}
}

func randRegisters(m, binbits int) []uint8 {
	regs := make([]uint8, m)
	for i := range regs {
		regs[i] = uint8(rand.Intn(1 << uint(binbits)))
	}
	return regs
}

func randEntries(n int, f hll.SparseFormat) []hll.SparseEntry {
	entries := make([]hll.SparseEntry, n)
	for i := range entries {
		entries[i] = hll.SparseEntry{
			Index: uint64(rand.Intn(1 << uint(f.IndexBits))),
			Rho:   uint64(rand.Intn(1 << uint(f.RhoBits))),
		}
	}
	return entries
}
