package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/mwaldron/qrgrid"
)

func main() {
	level := flag.String("level", "M", "error correction level: L, M, Q or H")
	charsetName := flag.String("charset", "", "character set for the encoded text (default UTF-8)")
	margin := flag.Int("margin", 4, "quiet zone width in modules")
	scale := flag.Int("scale", 4, "pixels per module for PNG output")
	version := flag.Int("version", 0, "force symbol version 1-40 (0 = automatic)")
	mask := flag.Int("mask", -1, "force mask pattern 0-7 (-1 = automatic)")
	out := flag.String("out", "", "write PNG output to this file")
	asPNG := flag.Bool("png", false, "write PNG output to stdout")
	asText := flag.Bool("text", false, "write terminal output to stdout")
	invert := flag.Bool("invert", false, "invert terminal output for dark backgrounds")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qrgen [flags] <text>\n\n")
		fmt.Fprintf(os.Stderr, "Encode text into a QR code. With no arguments, text is read from stdin.\n")
		fmt.Fprintf(os.Stderr, "Output defaults to terminal art on a TTY and PNG otherwise.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var content string
	switch {
	case flag.NArg() > 0:
		content = strings.Join(flag.Args(), " ")
	case stdinIsPipe():
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fail(fmt.Errorf("read stdin: %w", err))
		}
		content = trimTrailingNewline(string(data))
	default:
		flag.Usage()
		os.Exit(1)
	}

	opts := &qrgrid.EncodeOptions{
		ErrorCorrection: *level,
		CharacterSet:    *charsetName,
		Margin:          margin,
		Version:         *version,
	}
	if *mask >= 0 {
		opts.MaskPattern = mask
	}

	code, err := qrgrid.Encode(content, opts)
	if err != nil {
		fail(err)
	}

	switch {
	case *out != "":
		f, err := os.Create(*out)
		if err != nil {
			fail(err)
		}
		if err := code.WritePNG(f, *scale); err != nil {
			f.Close()
			fail(err)
		}
		if err := f.Close(); err != nil {
			fail(err)
		}
	case *asText:
		fmt.Print(code.Text(*invert))
	case *asPNG:
		if err := code.WritePNG(os.Stdout, *scale); err != nil {
			fail(err)
		}
	case isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()):
		fmt.Print(code.Text(*invert))
	default:
		if err := code.WritePNG(os.Stdout, *scale); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "qrgen: %v\n", err)
	os.Exit(1)
}

// stdinIsPipe reports whether stdin has piped or redirected data rather
// than an interactive terminal.
func stdinIsPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice == 0
}

// trimTrailingNewline removes a single trailing newline, as left by
// echo and most shells, so it does not become part of the payload.
func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
