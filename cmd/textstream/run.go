package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"textstream/internal/config"
	"textstream/internal/logging"
	"textstream/pkg/alphabet"
	"textstream/pkg/textstream"

	"golang.org/x/term"
)

const (
	envLineSize = config.EnvLineSize
	envLogLevel = config.EnvLogLevel
)

// setup loads the configuration and installs the logger.
func setup() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.Configure(os.Stderr, level)
	if strict {
		cfg.Strict = true
	}
	return cfg, nil
}

// resolveLineSize picks the line size from the optional positional argument. An unusable
// argument falls back to the configured size, or fails in strict mode. An accepted
// argument is echoed to diag.
func resolveLineSize(cfg config.Config, args []string, diag io.Writer) (int, error) {
	if len(args) == 0 {
		return cfg.LineSize, nil
	}
	n, err := config.ParseLineSize(args[0])
	if err != nil {
		if cfg.Strict {
			return 0, err
		}
		slog.Warn("Ignoring line size argument", "value", args[0], "error", err, "lineSize", cfg.LineSize)
		return cfg.LineSize, nil
	}
	fmt.Fprintf(diag, "L = %d\n", n)
	return n, nil
}

func warnTerminal() {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		slog.Info("Reading from terminal, end input with Ctrl-D")
	}
}

func encodeStream(r io.Reader, w io.Writer, lineSize int, check bool) error {
	out := bufio.NewWriter(w)
	enc, err := textstream.NewEncoder(out, lineSize)
	if err != nil {
		return err
	}

	var checker *alphabet.Checker
	src := bufio.NewReader(r)
	if check {
		checker = alphabet.NewChecker()
		src = bufio.NewReader(io.TeeReader(r, checker))
	}

	if _, err := io.Copy(enc, src); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	stats := enc.Stats()
	slog.Debug("Encoded input",
		"lineSize", lineSize,
		"bytesIn", stats.BytesIn,
		"bytesOut", stats.BytesOut,
		"frames", stats.Frames,
		"terminalFrames", stats.TerminalFrames)

	if checker != nil {
		if report := checker.Report(); !report.Valid() {
			slog.Warn("Input contains bytes outside the text stream alphabet",
				"invalid", report.Invalid,
				"first", report.First.String())
		}
	}
	return nil
}

func decodeStream(r io.Reader, w io.Writer) error {
	out := bufio.NewWriter(w)
	dec := textstream.NewDecoder(r)
	n, err := dec.WriteTo(out)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	slog.Debug("Decoded input", "frames", dec.Line(), "bytesOut", n)
	return nil
}

func checkStream(r io.Reader, w io.Writer) error {
	checker := alphabet.NewChecker()
	if _, err := io.Copy(checker, r); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	report := checker.Report()
	fmt.Fprintf(w, "bytes=%d lines=%d invalid=%d longest=%d trailing-space=%d\n",
		report.Bytes, report.Lines, report.Invalid, report.LongestLine, report.TrailingSpace)
	if !report.Valid() {
		return fmt.Errorf("check: %d invalid bytes, first is %s", report.Invalid, report.First)
	}
	return nil
}
