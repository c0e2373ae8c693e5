package textstream

import (
	"bytes"
	"fmt"
)

const (
	// MaxLineSize is the largest line size. 2 hex digits, the marker and EOL on top
	// stay within the 254 characters a text stream must support.
	MaxLineSize = 254 - 4

	// DefaultLineSize is used when no line size is configured.
	DefaultLineSize = MaxLineSize

	// Sentinel is the line terminator of the original text.
	Sentinel = '\n'

	TerminalMarker     = '<'
	ContinuationMarker = '/'

	// overhead is the number of bytes a frame line adds around its data.
	overhead = 2 + 1 + 1
)

// Kind tells whether a frame ends an original line.
type Kind uint8

const (
	// Continuation frames were cut by the line size; the original line goes on.
	Continuation Kind = iota
	// Terminal frames were followed by a line terminator in the original text.
	Terminal
)

func (k Kind) Marker() byte {
	if k == Terminal {
		return TerminalMarker
	}
	return ContinuationMarker
}

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case Continuation:
		return "continuation"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Frame is one encoded line.
type Frame struct {
	Kind Kind
	Data []byte
}

// Len returns the length of the encoded line including EOL.
func (f Frame) Len() int {
	return len(f.Data) + overhead
}

// AppendFrame appends the encoded line for f to dst.
// Format: "%02x" length, data, marker, "\n".
func AppendFrame(dst []byte, f Frame) []byte {
	n := len(f.Data)
	dst = append(dst, hexDigits[n>>4&0xf], hexDigits[n&0xf])
	dst = append(dst, f.Data...)
	return append(dst, f.Kind.Marker(), Sentinel)
}

// FormatFrame returns the encoded line for f.
func FormatFrame(f Frame) []byte {
	return AppendFrame(make([]byte, 0, f.Len()), f)
}

const hexDigits = "0123456789abcdef"

// ParseFrame decodes one line, without its terminating EOL. The returned Data aliases line.
func ParseFrame(line []byte) (Frame, error) {
	if len(line) < 3 {
		return Frame{}, malformed("line too short (%d bytes)", len(line))
	}
	hi, ok1 := unhex(line[0])
	lo, ok2 := unhex(line[1])
	if !ok1 || !ok2 {
		return Frame{}, malformed("invalid length field %q", line[:2])
	}
	n := int(hi<<4 | lo)
	if n > MaxLineSize {
		return Frame{}, malformed("length %d exceeds maximum %d", n, MaxLineSize)
	}

	body := line[2:]
	if len(body) < n+1 {
		return Frame{}, malformed("truncated data: declared %d bytes, %d follow the length field", n, len(body))
	}
	if len(body) > n+1 {
		return Frame{}, malformed("%d unexpected bytes after marker", len(body)-n-1)
	}

	f := Frame{Data: body[:n]}
	if i := bytes.IndexByte(f.Data, Sentinel); i >= 0 {
		return Frame{}, malformed("line terminator inside data at offset %d", i)
	}
	switch m := body[n]; m {
	case TerminalMarker:
		f.Kind = Terminal
	case ContinuationMarker:
		f.Kind = Continuation
	default:
		return Frame{}, malformed("invalid marker %q", m)
	}
	return f, nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
