package ber

import "strconv"

// Length is the decoded length field of a TLV: a byte count, or indefinite.
type Length struct {
	Value      uint64
	Indefinite bool
}

// IndefiniteLength is the length whose payload ends at an End-of-Contents marker.
var IndefiniteLength = Length{Indefinite: true}

// Definite creates a length of n payload bytes.
func Definite(n uint64) Length {
	return Length{Value: n}
}

func (l Length) String() string {
	if l.Indefinite {
		return "indefinite"
	}
	return strconv.FormatUint(l.Value, 10)
}

const (
	lengthIndefinite = 0x80
	lengthLongForm   = 0x80

	// shortFormLimit is the first value written in the long form.
	// X.690 allows the short form up to 0x7F; this codec switches at 0x1F,
	// which every conforming decoder still accepts.
	shortFormLimit = 0x1F
)

func (d *decoder) readLength() (Length, error) {
	b, err := d.c.ReadByte()
	if err != nil {
		return Length{}, d.ioError(unexpected(err))
	}

	if b == lengthIndefinite {
		return IndefiniteLength, nil
	}
	if b&lengthLongForm == 0 {
		return Definite(uint64(b)), nil
	}

	count := int(b & 0x7F)
	if count > maxGroups {
		return Length{}, newError(KindNumberOverflow, d.c.Tell(), nil)
	}

	var ret uint64
	for i := 0; i < count; i++ {
		b, err := d.c.ReadByte()
		if err != nil {
			return Length{}, d.ioError(unexpected(err))
		}
		ret = ret<<8 | uint64(b)
	}
	return Definite(ret), nil
}

// appendLength appends the encoded length field to buf.
func appendLength(buf []byte, l Length) []byte {
	if l.Indefinite {
		return append(buf, lengthIndefinite)
	}
	if l.Value < shortFormLimit {
		return append(buf, byte(l.Value))
	}
	count := groupsNeeded(l.Value, 8)
	buf = append(buf, lengthLongForm|byte(count))
	for i := count - 1; i >= 0; i-- {
		buf = append(buf, byte(l.Value>>(8*i)))
	}
	return buf
}
