// Command berdump decodes BER data and prints the TLV tree.
//
// Usage:
//
//	berdump [-config berdump.toml] [-hex] [-max-depth N] [-reencode] [-log-level debug] [file]
//
// Input is read from file, or from stdin when file is omitted or "-".
// Consecutive top-level TLVs are dumped one after another.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/slonegd/gober/ber"
	"github.com/slonegd/gober/internal/hexutil"
	"github.com/slonegd/gober/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "berdump:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("berdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a TOML config file")
	hexInput := fs.Bool("hex", false, "input is a hex dump instead of raw bytes")
	maxDepth := fs.Int("max-depth", 0, "maximum constructed nesting depth")
	reencode := fs.Bool("reencode", false, "print the re-encoded form of every tag")
	logLevel := fs.String("log-level", "", "log level (debug traces every TLV header)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return err
		}
	}
	applyEnvOverrides(&cfg)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hex":
			if *hexInput {
				cfg.Input = inputHex
			} else {
				cfg.Input = inputRaw
			}
		case "max-depth":
			cfg.MaxDepth = *maxDepth
		case "reencode":
			cfg.Reencode = *reencode
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.validate(); err != nil {
		return err
	}

	lvl, _ := cfg.level()
	zl := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(lvl).With().Timestamp().Logger()

	src, name, closeFn, err := openInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	defer closeFn()

	r, err := prepareInput(src, cfg.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	dec := ber.NewDecoder(r,
		ber.WithMaxDepth(cfg.MaxDepth),
		ber.WithLogger(logger.NewZerolog(zl, "ber")),
	)

	count := 0
	for {
		tag, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("decode %s: %w", name, err)
		}
		count++

		if err := ber.Fprint(stdout, tag); err != nil {
			return err
		}
		if cfg.Reencode {
			data, err := ber.Marshal(tag, ber.WithMaxDepth(cfg.MaxDepth))
			if err != nil {
				return fmt.Errorf("encode tag %d: %w", count, err)
			}
			if _, err := fmt.Fprintf(stdout, "reencoded: %s\n", hexutil.Format(data)); err != nil {
				return err
			}
		}
	}

	zl.Info().Str("input", name).Int("tags", count).Int64("bytes", dec.Offset()).Msg("decoded")
	return nil
}

func openInput(path string, stdin io.Reader) (io.Reader, string, func(), error) {
	if path == "" || path == "-" {
		return stdin, "stdin", func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open input: %w", err)
	}
	return f, path, func() { _ = f.Close() }, nil
}

func prepareInput(src io.Reader, input string) (io.Reader, error) {
	if input == inputRaw {
		return bufio.NewReader(src), nil
	}
	text, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	data, err := hexutil.Parse(string(text))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
