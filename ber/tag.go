// Package ber decodes and encodes ASN.1 BER (X.690) as a tree of
// tag-length-value nodes.
//
// The codec exposes only the raw tag number and payload of every node;
// interpreting a primitive payload as INTEGER, OID, time string and so on
// is left to the caller.
//
// Constructed tags are always encoded with indefinite length, so a tree
// decoded from definite-length input does not re-encode to the same bytes.
package ber

// Payload is the value of a Tag: either Primitive or Constructed.
type Payload interface {
	isPayload()
}

// Primitive is the raw content of a primitive tag.
type Primitive []byte

// Constructed is the ordered list of children of a constructed tag.
type Constructed []*Tag

func (Primitive) isPayload()   {}
func (Constructed) isPayload() {}

// Tag is one TLV node.
type Tag struct {
	Number Number
	// Offset is the stream position of the identifier octet.
	// It is set by the decoder and nil for tags built in memory.
	Offset  *int64
	Payload Payload
}

// NewPrimitive creates a primitive tag.
func NewPrimitive(number Number, data []byte) *Tag {
	if data == nil {
		data = []byte{}
	}
	return &Tag{Number: number, Payload: Primitive(data)}
}

// NewConstructed creates a constructed tag. Children must not be nil.
func NewConstructed(number Number, children ...*Tag) *Tag {
	if children == nil {
		children = []*Tag{}
	}
	return &Tag{Number: number, Payload: Constructed(children)}
}

// Form returns the flavor implied by the payload. A nil payload counts as
// an empty primitive.
func (t *Tag) Form() TagForm {
	if _, ok := t.Payload.(Constructed); ok {
		return FormConstructed
	}
	return FormPrimitive
}

// Bytes returns the payload of a primitive tag, nil otherwise.
func (t *Tag) Bytes() []byte {
	if p, ok := t.Payload.(Primitive); ok {
		return p
	}
	return nil
}

// Children returns the children of a constructed tag, nil otherwise.
func (t *Tag) Children() []*Tag {
	if c, ok := t.Payload.(Constructed); ok {
		return c
	}
	return nil
}

// IsEOC reports whether t is the End-of-Contents marker.
func (t *Tag) IsEOC() bool {
	return t.Number == Universal(Eoc)
}

func (t *Tag) String() string {
	return sprint(t)
}
