package main

import (
	"bufio"
	"encoding/hex"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// open returns the configured input, which the caller must close.
func (c InputConfig) open() (io.ReadCloser, error) {
	if c.Input == "-" || c.Input == "" {
		return io.NopCloser(c.stdin), nil
	}
	f, err := os.Open(c.Input)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	return f, nil
}

// readUints reads whitespace-separated decimal integers from the input.
func (c InputConfig) readUints() ([]uint64, error) {
	r, err := c.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var out []uint64
	var s = bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	for s.Scan() {
		v, err := strconv.ParseUint(s.Text(), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing value %d", len(out))
		}
		out = append(out, v)
	}
	if err = s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return out, nil
}

// readHex reads the input as a single hex string. Whitespace is ignored.
func (c InputConfig) readHex() ([]byte, error) {
	r, err := c.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	text, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	data, err := hex.DecodeString(strings.Join(strings.Fields(string(text)), ""))
	if err != nil {
		return nil, errors.Wrap(err, "decoding hex input")
	}
	return data, nil
}

// writeLines writes each line followed by a newline to the output.
func (c InputConfig) writeLines(lines ...string) error {
	var w = bufio.NewWriter(c.stdout)
	for _, l := range lines {
		if _, err := w.WriteString(l + "\n"); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return errors.Wrap(w.Flush(), "writing output")
}
