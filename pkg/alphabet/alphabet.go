package alphabet

import (
	"fmt"
)

// Class is the role a byte plays in a text stream.
type Class uint8

const (
	Invalid Class = iota
	Graphic
	Space
	Tab
	Newline
)

func (c Class) String() string {
	switch c {
	case Graphic:
		return "graphic"
	case Space:
		return "space"
	case Tab:
		return "tab"
	case Newline:
		return "newline"
	default:
		return "invalid"
	}
}

// Classify returns the class of b. Only 7-bit printing characters count as graphic; the
// text stream guarantees nothing for the C1/Latin-1 range.
func Classify(b byte) Class {
	switch {
	case b == '\n':
		return Newline
	case b == ' ':
		return Space
	case b == '\t':
		return Tab
	case b > ' ' && b < 0x7f:
		return Graphic
	default:
		return Invalid
	}
}

// IsData reports whether b may appear inside a line: a printing character or HT.
func IsData(b byte) bool {
	c := Classify(b)
	return c == Graphic || c == Space || c == Tab
}

// IsWhitespace reports whether b is SP or HT, the bytes a text stream may drop at the end
// of a line.
func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}

// LineSafe reports whether line, without its EOL, is reproduced exactly by a text stream:
// only data bytes and, unless empty, a final non-space character.
func LineSafe(line []byte) bool {
	for _, b := range line {
		if !IsData(b) {
			return false
		}
	}
	return len(line) == 0 || !IsWhitespace(line[len(line)-1])
}

// Violation is the first byte outside the alphabet.
type Violation struct {
	Offset int64 // 0-based byte offset
	Line   int64 // 1-based line number
	Byte   byte
}

func (v Violation) String() string {
	return fmt.Sprintf("byte 0x%02x at offset %d (line %d)", v.Byte, v.Offset, v.Line)
}
