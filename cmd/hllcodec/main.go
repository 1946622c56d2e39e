package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
)

// LogConfig configures handling of application log events.
type LogConfig struct {
	Level  string `long:"level" env:"LEVEL" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal" description:"Logging level"`
	Format string `long:"format" env:"FORMAT" default:"text" choice:"json" choice:"text" description:"Logging output format"`
}

type BaseCfg struct {
	Log LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
}

// InputConfig is embedded by every command which reads from an input file.
type InputConfig struct {
	Input string `long:"input" short:"i" default:"-" description:"Path to read input from, or - for stdin"`

	stdin  io.Reader
	stdout io.Writer
}

func main() {
	var baseCfg = new(BaseCfg)
	var parser = newParser(baseCfg, os.Stdin, os.Stdout)

	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func newParser(cfg *BaseCfg, stdin io.Reader, stdout io.Writer) *flags.Parser {
	var parser = flags.NewParser(cfg, flags.Default)
	var ic = InputConfig{stdin: stdin, stdout: stdout}

	var _, err = parser.AddCommand("pack",
		"Pack dense registers",
		`Pack dense registers into bytes.

Registers are read as whitespace-separated decimal integers, and are written
--binbits bits apiece. The packed bytes are written as hex, or as a JSON
snapshot holding the register count and width with --json.`,
		&cmdPack{cfg: cfg, InputConfig: ic},
	)
	must(err, "failed to add command", "command", "pack")

	_, err = parser.AddCommand("unpack",
		"Unpack dense registers",
		`Unpack hex-encoded dense registers, writing one decimal register per line.

The register count and width are not stored in the packed bytes and must be
given with --count and --binbits.`,
		&cmdUnpack{cfg: cfg, InputConfig: ic},
	)
	must(err, "failed to add command", "command", "unpack")

	_, err = parser.AddCommand("compress",
		"Compress sparse registers",
		`Compress sparse (index, rho) entries into bytes.

Entries are read as whitespace-separated pairs of decimal integers and are
written as hex. With --counted, the entry count is written in front of the
entries so that trailing zero entries survive decompression.`,
		&cmdCompress{cfg: cfg, InputConfig: ic},
	)
	must(err, "failed to add command", "command", "compress")

	_, err = parser.AddCommand("decompress",
		"Decompress sparse registers",
		`Decompress hex-encoded sparse entries, writing one "index rho" pair per line.

Without --counted the number of entries is inferred from the byte length, and
padding bits in the final byte may decode as a trailing "0 0" entry.`,
		&cmdDecompress{cfg: cfg, InputConfig: ic},
	)
	must(err, "failed to add command", "command", "decompress")

	return parser
}

// initLog configures the logger.
func initLog(cfg LogConfig) {
	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{})
	}

	if lvl, err := log.ParseLevel(cfg.Level); err != nil {
		log.WithField("err", err).Fatal("unrecognized log level")
	} else {
		log.SetLevel(lvl)
	}
}

// must exits the process if |err| is non-nil, logging |msg| with |err| and
// the key/value pairs of |extra| as fields.
func must(err error, msg string, extra ...interface{}) {
	if err == nil {
		return
	}
	var f = log.Fields{"err": err}
	for i := 0; i+1 < len(extra); i += 2 {
		f[extra[i].(string)] = extra[i+1]
	}
	log.WithFields(f).Fatal(msg)
}
