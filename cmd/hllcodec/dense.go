package main

import (
	"encoding/hex"
	"encoding/json"
	"strconv"

	hll "github.com/Suravi021/HLL"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type cmdPack struct {
	BinBits int  `long:"binbits" short:"w" required:"true" description:"Bits per register, in [1,64]"`
	JSON    bool `long:"json" description:"Write a JSON snapshot rather than hex"`
	InputConfig

	cfg *BaseCfg
}

func (cmd *cmdPack) Execute([]string) error {
	initLog(cmd.cfg.Log)

	regs, err := cmd.readUints()
	if err != nil {
		return err
	}

	if cmd.JSON {
		var snap = &hll.DenseSnapshot{Registers: regs, BinBits: cmd.BinBits}
		out, err := json.Marshal(snap)
		if err != nil {
			return errors.Wrap(err, "marshaling snapshot")
		}
		log.WithFields(log.Fields{"registers": len(regs), "binbits": cmd.BinBits}).Debug("wrote snapshot")
		return cmd.writeLines(string(out))
	}

	packed, err := hll.PackRegisters(regs, cmd.BinBits)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"registers": len(regs),
		"binbits":   cmd.BinBits,
		"bytes":     len(packed),
	}).Debug("packed registers")

	return cmd.writeLines(hex.EncodeToString(packed))
}

type cmdUnpack struct {
	BinBits int `long:"binbits" short:"w" required:"true" description:"Bits per register, in [1,64]"`
	Count   int `long:"count" short:"m" required:"true" description:"Number of registers to unpack"`
	InputConfig

	cfg *BaseCfg
}

func (cmd *cmdUnpack) Execute([]string) error {
	initLog(cmd.cfg.Log)

	data, err := cmd.readHex()
	if err != nil {
		return err
	}
	regs, err := hll.UnpackRegisters(data, cmd.Count, cmd.BinBits)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"registers": len(regs),
		"binbits":   cmd.BinBits,
		"bytes":     len(data),
	}).Debug("unpacked registers")

	var lines = make([]string, len(regs))
	for i, r := range regs {
		lines[i] = strconv.FormatUint(r, 10)
	}
	return cmd.writeLines(lines...)
}
