// Command tiling reads a floor plan and prints whether it can be covered
// by 1×2 dominoes.
//
// Usage:
//
//	tiling [-f floor.txt] [--dump] [-v]
//
// The floor is read from stdin when no file is given. '#' marks a blocked
// cell, every other character except newline is an open cell.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/domino/tiling"
)

type config struct {
	file    string
	dump    bool
	verbose bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := pflag.NewFlagSet("tiling", pflag.ContinueOnError)
	fs.StringVarP(&cfg.file, "file", "f", "", "floor plan file (default: stdin)")
	fs.BoolVar(&cfg.dump, "dump", false, "print the flow network to stderr")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log every augmenting path")

	return cfg, fs.Parse(args)
}

func readFloor(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	floor, err := readFloor(cfg.file, stdin)
	if err != nil {
		return fmt.Errorf("read floor: %w", err)
	}

	level := zerolog.InfoLevel
	if cfg.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()

	opts := []tiling.Option{tiling.WithLogger(logger)}
	if cfg.verbose {
		opts = append(opts, tiling.WithVerbose())
	}
	if cfg.dump {
		opts = append(opts, tiling.WithDump(stderr))
	}

	ok, err := tiling.HasTiling(floor, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, ok)

	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "tiling: %+v\n", err)
		os.Exit(1)
	}
}
