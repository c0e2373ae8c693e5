package textstream

import (
	"bytes"
)

// Encode encodes data in one go, flushing a trailing partial line.
func Encode(data []byte, lineSize int) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, lineSize)
	if err != nil {
		return nil, err
	}
	if _, err := enc.Write(data); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes a complete sequence of frame lines.
func Decode(encoded []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := NewDecoder(bytes.NewReader(encoded)).WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
