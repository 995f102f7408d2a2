package ber

import (
	"bytes"
	"io"
)

// Cursor wraps a byte source and counts the bytes consumed from it.
// All offsets reported by the decoder are derived from Tell.
type Cursor struct {
	r   io.Reader
	n   int64
	one [1]byte
}

// NewCursor creates a Cursor reading from r.
func NewCursor(r io.Reader) *Cursor {
	if c, ok := r.(*Cursor); ok {
		return c
	}
	return &Cursor{r: r}
}

// Read implements io.Reader.
func (c *Cursor) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// ReadByte reads exactly one byte.
func (c *Cursor) ReadByte() (byte, error) {
	if _, err := io.ReadFull(c, c.one[:]); err != nil {
		return 0, err
	}
	return c.one[0], nil
}

// ReadN reads exactly n bytes. The buffer grows with the data actually
// received, so a forged length cannot force a large allocation up front.
func (c *Cursor) ReadN(n int64) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	var buf bytes.Buffer
	got, err := io.CopyN(&buf, c, n)
	if err != nil {
		if err == io.EOF && got < n {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

// Tell returns the number of bytes read so far.
func (c *Cursor) Tell() int64 {
	return c.n
}

// Sink wraps a byte sink and counts the bytes written to it.
type Sink struct {
	w io.Writer
	n int64
}

// NewSink creates a Sink writing to w.
func NewSink(w io.Writer) *Sink {
	if s, ok := w.(*Sink); ok {
		return s
	}
	return &Sink{w: w}
}

// Write implements io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.n += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// Tell returns the number of bytes written so far.
func (s *Sink) Tell() int64 {
	return s.n
}
