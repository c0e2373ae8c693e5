package textstream

import (
	"io"
)

// Stats counts what an Encoder has consumed and produced.
type Stats struct {
	BytesIn        int64
	BytesOut       int64
	Frames         int64
	TerminalFrames int64
}

// Encoder turns a byte stream into frame lines written to an io.Writer.
//
// Every byte is buffered until it either hits the line size or is a line terminator, at
// which point one frame is written. Close flushes a trailing partial line.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	w        io.Writer
	lineSize int
	buf      []byte // len(buf) <= lineSize
	out      []byte // scratch for the encoded line
	stats    Stats
	err      error
	closed   bool
}

var (
	_ io.WriteCloser = &Encoder{}
	_ io.ByteWriter  = &Encoder{}
)

// NewEncoder creates an Encoder writing frames of at most lineSize data bytes to w.
func NewEncoder(w io.Writer, lineSize int) (*Encoder, error) {
	if err := CheckLineSize(lineSize); err != nil {
		return nil, err
	}
	return &Encoder{
		w:        w,
		lineSize: lineSize,
		buf:      make([]byte, 0, lineSize),
		out:      make([]byte, 0, lineSize+overhead),
	}, nil
}

// LineSize returns the configured maximum number of data bytes per frame.
func (e *Encoder) LineSize() int {
	return e.lineSize
}

// Stats returns the counters collected so far.
func (e *Encoder) Stats() Stats {
	return e.stats
}

// Consume feeds one byte to the encoder. It returns the number of encoded bytes written to
// the underlying writer, which is 0 when the byte was only buffered.
func (e *Encoder) Consume(b byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.closed {
		return 0, ErrClosed
	}
	e.stats.BytesIn++

	eol := b == Sentinel
	reserve := 1
	if b == ' ' || b == '\t' {
		// Whitespace needs one more byte of room than other data.
		reserve = 2
	}
	if !eol && len(e.buf)+reserve < e.lineSize {
		e.buf = append(e.buf, b)
		return 0, nil
	}

	kind := Terminal
	if !eol {
		e.buf = append(e.buf, b)
		kind = Continuation
	}
	return e.emit(kind)
}

// WriteByte implements io.ByteWriter.
func (e *Encoder) WriteByte(b byte) error {
	_, err := e.Consume(b)
	return err
}

// Write implements io.Writer. It consumes all of p and reports len(p) unless the
// underlying writer fails.
func (e *Encoder) Write(p []byte) (int, error) {
	for i, b := range p {
		if _, err := e.Consume(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Flush writes any buffered data as a continuation frame. Buffered data at end of input
// is a final line without terminator, so callers must Flush or Close when the input ends.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if len(e.buf) == 0 {
		return nil
	}
	_, err := e.emit(Continuation)
	return err
}

// Close flushes the encoder. Further calls to Consume fail with ErrClosed.
// Close does not close the underlying writer.
func (e *Encoder) Close() error {
	if e.closed {
		return e.err
	}
	err := e.Flush()
	e.closed = true
	return err
}

func (e *Encoder) emit(kind Kind) (int, error) {
	e.out = AppendFrame(e.out[:0], Frame{Kind: kind, Data: e.buf})
	e.buf = e.buf[:0]

	n, err := e.w.Write(e.out)
	e.stats.BytesOut += int64(n)
	if err == nil && n < len(e.out) {
		err = io.ErrShortWrite
	}
	if err != nil {
		e.err = err
		return n, err
	}
	e.stats.Frames++
	if kind == Terminal {
		e.stats.TerminalFrames++
	}
	return n, nil
}
