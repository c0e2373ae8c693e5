package textstream

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedFrame = errors.New("textstream: malformed frame")
	ErrClosed         = errors.New("textstream: encoder closed")
)

// MalformedFrameError describes why a line could not be decoded as a frame.
type MalformedFrameError struct {
	Line   int // 1-based line number, 0 if unknown
	Reason string
}

func (e *MalformedFrameError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: line %d: %s", ErrMalformedFrame, e.Line, e.Reason)
	}
	return fmt.Sprintf("%v: %s", ErrMalformedFrame, e.Reason)
}

func (e *MalformedFrameError) Unwrap() error {
	return ErrMalformedFrame
}

func malformed(format string, args ...any) *MalformedFrameError {
	return &MalformedFrameError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigError reports an unusable line size.
type ConfigError struct {
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("textstream: invalid line size %q: %v", e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var errLineSizeRange = fmt.Errorf("must be between 1 and %d", MaxLineSize)

// CheckLineSize returns a *ConfigError unless 1 <= n <= MaxLineSize.
func CheckLineSize(n int) error {
	if n < 1 || n > MaxLineSize {
		return &ConfigError{Value: fmt.Sprint(n), Err: errLineSizeRange}
	}
	return nil
}
