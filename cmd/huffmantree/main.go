// huffmantree encodes text files with a Huffman tree, decodes the result, and
// displays trees.
//
// Usage:
//
//	huffmantree encode [-o <output>] [<input>]
//	huffmantree decode [-o <output>] [<input>]
//	huffmantree tree [<input>]
//
// Use '-' (or omit the argument) to read from stdin or write to stdout.
//
// Environment:
//
//	LOG_LEVEL   trace, debug, info, warn, or error; logging is off if unset
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/huffmantree"
)

const version = "1.0.0"

var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := newLogger(stderr, parseLevel(os.Getenv("LOG_LEVEL")))
	huffmantree.SetLogger(logger)

	err := dispatch(args, stdin, stdout, stderr, logger)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "huffmantree: %v\n", err)
		usage(stderr)
		return 2
	default:
		logger.Error().Err(err).Msg("failed")
		fmt.Fprintf(stderr, "huffmantree: %v\n", err)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  huffmantree encode [-o <output>] [<input>]
  huffmantree decode [-o <output>] [<input>]
  huffmantree tree [<input>]
  huffmantree --version
`)
}

func dispatch(args []string, stdin io.Reader, stdout, stderr io.Writer, logger zerolog.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return nil
	case "-version", "--version", "version":
		fmt.Fprintf(stdout, "huffmantree version %s\n", version)
		return nil
	case "encode", "decode", "tree":
		// handled below
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := "-"
	if cmd != "tree" {
		fs.StringVar(&output, "o", "-", "output file, or '-' for stdout")
	}
	if err := fs.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: too many arguments", errUsage)
	}
	input := "-"
	if fs.NArg() == 1 {
		input = fs.Arg(0)
	}

	raw, err := readInput(input, stdin)
	if err != nil {
		return err
	}
	logger.Debug().Str("cmd", cmd).Str("input", input).Int("bytes", len(raw)).Msg("read input")

	var result string
	switch cmd {
	case "encode":
		result, err = huffmantree.Encode(raw)
	case "decode":
		result, err = huffmantree.Decode(raw)
	case "tree":
		result, err = displayTree(raw)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(output, stdout, result); err != nil {
		return err
	}
	logger.Debug().Str("cmd", cmd).Str("output", output).Int("bytes", len(result)).Msg("wrote output")
	return nil
}

func displayTree(text string) (string, error) {
	f := huffmantree.CountFrequencies(huffmantree.SymbolsFromString(text))
	tree, err := huffmantree.BuildTree(f)
	if err != nil {
		return "", err
	}
	return tree.DisplayString(), nil
}

func readInput(name string, stdin io.Reader) (string, error) {
	if name == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func writeOutput(name string, stdout io.Writer, text string) error {
	if name == "-" {
		_, err := io.WriteString(stdout, text)
		return err
	}
	return os.WriteFile(name, []byte(text), 0o666)
}
