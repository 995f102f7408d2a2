package ber

import (
	"bytes"
	"io"
	"math"

	"github.com/slonegd/gober/logger"
)

type decoder struct {
	c        *Cursor
	maxDepth int
	log      logger.Logger
}

func (d *decoder) ioError(err error) *Error {
	return newError(KindIO, d.c.Tell(), err)
}

// unexpected turns a clean io.EOF into io.ErrUnexpectedEOF: the stream
// ended inside a tag.
func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// decodeTag reads one complete TLV. depth is the number of constructed
// tags enclosing it.
func (d *decoder) decodeTag(depth int) (*Tag, error) {
	offset := d.c.Tell()

	number, form, err := d.readIdentifier(depth == 0)
	if err != nil {
		return nil, err
	}

	length, err := d.readLength()
	if err != nil {
		return nil, err
	}

	if length.Indefinite && form == FormPrimitive {
		return nil, newError(KindInvalidLength, d.c.Tell(), nil)
	}

	d.log.Debug("ber: %s %s length=%s at offset %d", number, form, length, offset)

	payload, err := d.readPayload(form, length, depth)
	if err != nil {
		return nil, err
	}

	return &Tag{
		Number:  number,
		Offset:  &offset,
		Payload: payload,
	}, nil
}

func (d *decoder) readPayload(form TagForm, length Length, depth int) (Payload, error) {
	if form == FormPrimitive {
		if length.Value > math.MaxInt64 {
			return nil, newError(KindNumberOverflow, d.c.Tell(), nil)
		}
		data, err := d.c.ReadN(int64(length.Value))
		if err != nil {
			return nil, d.ioError(unexpected(err))
		}
		return Primitive(data), nil
	}

	if depth >= d.maxDepth {
		return nil, newError(KindDepthExceeded, d.c.Tell(), nil)
	}

	start := d.c.Tell()
	children := []*Tag{}
	if !length.Indefinite && length.Value == 0 {
		return Constructed(children), nil
	}

	for {
		child, err := d.decodeTag(depth + 1)
		if err != nil {
			return nil, wrap(err, d.c.Tell())
		}

		if length.Indefinite {
			if child.IsEOC() {
				// end of the indefinite constructed payload
				return Constructed(children), nil
			}
			children = append(children, child)
			continue
		}

		children = append(children, child)
		if uint64(d.c.Tell()-start) >= length.Value {
			return Constructed(children), nil
		}
	}
}

// Decoder reads consecutive top-level TLVs from one stream.
// Offsets of decoded tags are relative to the start of the stream.
type Decoder struct {
	d decoder
}

// NewDecoder creates a Decoder reading from r. No read-ahead is done:
// wrap r in a bufio.Reader when it is unbuffered.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	o := buildOptions(opts)
	return &Decoder{d: decoder{
		c:        NewCursor(r),
		maxDepth: o.maxDepth,
		log:      o.logger,
	}}
}

// Decode reads the next TLV. At a clean end of stream the returned error
// matches io.EOF; a stream ending inside a tag matches io.ErrUnexpectedEOF.
func (dec *Decoder) Decode() (*Tag, error) {
	return dec.d.decodeTag(0)
}

// Offset returns the number of bytes consumed so far.
func (dec *Decoder) Offset() int64 {
	return dec.d.c.Tell()
}

// Decode reads a single TLV from r.
func Decode(r io.Reader, opts ...Option) (*Tag, error) {
	return NewDecoder(r, opts...).Decode()
}

// Unmarshal decodes the first TLV of data and returns it together with the
// bytes that follow it.
func Unmarshal(data []byte, opts ...Option) (*Tag, []byte, error) {
	r := bytes.NewReader(data)
	t, err := Decode(r, opts...)
	if err != nil {
		return nil, nil, err
	}
	return t, data[len(data)-r.Len():], nil
}
