package textstream

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Decoder reads frame lines and reconstructs the original byte stream.
//
// A malformed frame stops the decoder: the error is returned from every later call and
// no attempt is made to resynchronize. Whether to give up or skip ahead is up to the
// caller, who can start a new Decoder after the bad line.
type Decoder struct {
	r       *bufio.Reader
	line    int
	pending []byte // decoded bytes not yet returned by Read
	frame   []byte // backing storage for pending
	err     error
}

var (
	_ io.Reader   = &Decoder{}
	_ io.WriterTo = &Decoder{}
)

// NewDecoder creates a Decoder reading frame lines from r.
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(*bufio.Reader)
	if !ok || br.Size() < MaxLineSize+overhead+1 {
		br = bufio.NewReaderSize(r, 4096)
	}
	return &Decoder{
		r:     br,
		frame: make([]byte, 0, MaxLineSize+1),
	}
}

// Line returns the number of frame lines read so far.
func (d *Decoder) Line() int {
	return d.line
}

// ReadFrame returns the next frame. It returns io.EOF once the input is exhausted and a
// *MalformedFrameError for a line that violates the frame format. The returned Data is
// only valid until the next call.
func (d *Decoder) ReadFrame() (Frame, error) {
	if d.err != nil {
		return Frame{}, d.err
	}
	f, err := d.readFrame()
	if err != nil {
		d.err = err
		return Frame{}, err
	}
	return f, nil
}

func (d *Decoder) readFrame() (Frame, error) {
	line, err := d.r.ReadSlice(Sentinel)
	switch {
	case err == nil:
		line = line[:len(line)-1]
	case errors.Is(err, io.EOF):
		if len(line) == 0 {
			return Frame{}, io.EOF
		}
		// Last line without EOL.
	case errors.Is(err, bufio.ErrBufferFull):
		d.line++
		return Frame{}, &MalformedFrameError{
			Line:   d.line,
			Reason: fmt.Sprintf("line longer than %d bytes", d.r.Size()),
		}
	default:
		return Frame{}, fmt.Errorf("reading line %d: %w", d.line+1, err)
	}
	d.line++

	// CRLF storage leaves a CR after the marker.
	line = bytes.TrimSuffix(line, []byte{'\r'})

	f, err := ParseFrame(line)
	if err != nil {
		var mfe *MalformedFrameError
		if errors.As(err, &mfe) {
			mfe.Line = d.line
		}
		return Frame{}, err
	}
	return f, nil
}

// next decodes the next frame into pending.
func (d *Decoder) next() error {
	f, err := d.ReadFrame()
	if err != nil {
		return err
	}
	d.frame = append(d.frame[:0], f.Data...)
	if f.Kind == Terminal {
		d.frame = append(d.frame, Sentinel)
	}
	d.pending = d.frame
	return nil
}

// Read implements io.Reader over the decoded byte stream.
func (d *Decoder) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(d.pending) == 0 {
		if err := d.next(); err != nil {
			return 0, err
		}
	}
	n := copy(p, d.pending)
	d.pending = d.pending[n:]
	return n, nil
}

// WriteTo writes the decoded byte stream to w until the input is exhausted.
func (d *Decoder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for {
		if len(d.pending) > 0 {
			n, err := w.Write(d.pending)
			total += int64(n)
			d.pending = d.pending[n:]
			if err == nil && len(d.pending) > 0 {
				err = io.ErrShortWrite
			}
			if err != nil {
				return total, err
			}
		}
		if err := d.next(); err != nil {
			if errors.Is(err, io.EOF) {
				return total, nil
			}
			return total, err
		}
	}
}
