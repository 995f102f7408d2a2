package ber

import (
	"bytes"
	"io"

	"github.com/slonegd/gober/logger"
)

// eoc is the End-of-Contents marker closing every constructed tag.
var eoc = []byte{0x00, 0x00}

type encoder struct {
	s        *Sink
	maxDepth int
	log      logger.Logger
	header   []byte
}

func (e *encoder) ioError(err error) *Error {
	return newError(KindIO, e.s.Tell(), err)
}

func (e *encoder) write(p []byte) error {
	if _, err := e.s.Write(p); err != nil {
		return e.ioError(err)
	}
	return nil
}

// encodeTag writes t and all its children. Primitive payloads advertise
// their byte length; constructed payloads are always written with
// indefinite length and closed with End-of-Contents.
func (e *encoder) encodeTag(t *Tag, depth int) error {
	var (
		form   TagForm
		length Length
	)
	switch p := t.Payload.(type) {
	case Constructed:
		if depth >= e.maxDepth {
			return newError(KindDepthExceeded, e.s.Tell(), nil)
		}
		form, length = FormConstructed, IndefiniteLength
	case Primitive:
		form, length = FormPrimitive, Definite(uint64(len(p)))
	case nil:
		form, length = FormPrimitive, Definite(0)
	}

	offset := e.s.Tell()
	header, err := e.appendIdentifier(e.header[:0], t.Number, form)
	if err != nil {
		return err
	}
	header = appendLength(header, length)
	e.header = header

	e.log.Debug("ber: %s %s length=%s at offset %d", t.Number, form, length, offset)

	if err := e.write(header); err != nil {
		return err
	}

	switch p := t.Payload.(type) {
	case Primitive:
		return e.write(p)
	case Constructed:
		for _, child := range p {
			if err := e.encodeTag(child, depth+1); err != nil {
				return wrap(err, e.s.Tell())
			}
		}
		return e.write(eoc)
	}
	return nil
}

// Encoder writes TLVs to one stream.
type Encoder struct {
	e encoder
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	o := buildOptions(opts)
	return &Encoder{e: encoder{
		s:        NewSink(w),
		maxDepth: o.maxDepth,
		log:      o.logger,
		header:   make([]byte, 0, 1+maxGroups+1+maxGroups),
	}}
}

// Encode writes t. A failed write may leave a partial TLV in the stream.
func (enc *Encoder) Encode(t *Tag) error {
	return enc.e.encodeTag(t, 0)
}

// Offset returns the number of bytes written so far.
func (enc *Encoder) Offset() int64 {
	return enc.e.s.Tell()
}

// Encode writes t to w.
func Encode(w io.Writer, t *Tag, opts ...Option) error {
	return NewEncoder(w, opts...).Encode(t)
}

// Marshal returns the encoding of t.
func Marshal(t *Tag, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
