package main

import (
	"encoding/hex"
	"fmt"

	hll "github.com/Suravi021/HLL"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SparseConfig is the entry layout shared by the sparse commands.
type SparseConfig struct {
	IndexBits int  `long:"index-bits" short:"b" required:"true" description:"Bits per register index"`
	RhoBits   int  `long:"rho-bits" short:"r" default:"6" description:"Bits per rho value"`
	Counted   bool `long:"counted" description:"Prefix the entries with their count"`
}

func (c SparseConfig) format() hll.SparseFormat {
	return hll.SparseFormat{IndexBits: c.IndexBits, RhoBits: c.RhoBits}
}

type cmdCompress struct {
	SparseConfig
	InputConfig

	cfg *BaseCfg
}

func (cmd *cmdCompress) Execute([]string) error {
	initLog(cmd.cfg.Log)

	values, err := cmd.readUints()
	if err != nil {
		return err
	}
	if len(values)%2 != 0 {
		return errors.Errorf("expected index/rho pairs, but read %d values", len(values))
	}

	var entries = make([]hll.SparseEntry, len(values)/2)
	for i := range entries {
		entries[i] = hll.SparseEntry{Index: values[2*i], Rho: values[2*i+1]}
	}

	var out []byte
	if cmd.Counted {
		out, err = cmd.format().CompressCounted(entries)
	} else {
		out, err = cmd.format().Compress(entries)
	}
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"entries": len(entries),
		"format":  cmd.format(),
		"bytes":   len(out),
	}).Debug("compressed sparse entries")

	return cmd.writeLines(hex.EncodeToString(out))
}

type cmdDecompress struct {
	SparseConfig
	InputConfig

	cfg *BaseCfg
}

func (cmd *cmdDecompress) Execute([]string) error {
	initLog(cmd.cfg.Log)

	data, err := cmd.readHex()
	if err != nil {
		return err
	}

	var entries []hll.SparseEntry
	if cmd.Counted {
		entries, err = cmd.format().DecompressCounted(data)
	} else {
		entries, err = cmd.format().Decompress(data)
	}
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"entries": len(entries),
		"format":  cmd.format(),
		"bytes":   len(data),
	}).Debug("decompressed sparse entries")

	var lines = make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%d %d", e.Index, e.Rho)
	}
	return cmd.writeLines(lines...)
}
