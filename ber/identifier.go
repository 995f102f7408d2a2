package ber

// Identifier octet layout:
//
//	bits 7-6  class
//	bit  5    form (0 primitive, 1 constructed)
//	bits 4-0  tag number, 0x1F announces an extended number
//
// The extended number is a run of 7-bit groups, least-significant group
// first, with the high bit set on every group but the last.

func (d *decoder) readIdentifier(top bool) (Number, TagForm, error) {
	b, err := d.c.ReadByte()
	if err != nil {
		if top {
			return Number{}, 0, d.ioError(err)
		}
		return Number{}, 0, d.ioError(unexpected(err))
	}

	class := TagClass(b & classMask)
	form := TagForm(b & formMask)
	field := b & numberEscape

	if class == ClassUniversal {
		if field == numberEscape {
			// only valid in non-universal classes
			return Number{}, 0, newError(KindInvalidTypeAndFlavor, d.c.Tell(), nil)
		}
		return Universal(UniversalType(field)), form, nil
	}

	if field != numberEscape {
		return Number{Class: class, Value: uint64(field)}, form, nil
	}

	value, err := d.readExtendedNumber()
	if err != nil {
		return Number{}, 0, err
	}
	return Number{Class: class, Value: value}, form, nil
}

func (d *decoder) readExtendedNumber() (uint64, error) {
	var ret uint64
	for i := 0; i < maxGroups; i++ {
		b, err := d.c.ReadByte()
		if err != nil {
			return 0, d.ioError(unexpected(err))
		}
		ret |= uint64(b&0x7F) << (7 * i)
		if b&0x80 == 0 {
			return ret, nil
		}
	}
	return 0, newError(KindNumberOverflow, d.c.Tell(), nil)
}

// appendIdentifier appends the identifier octets of number/form to buf.
func (e *encoder) appendIdentifier(buf []byte, number Number, form TagForm) ([]byte, error) {
	lead := byte(number.Class&classMask) | byte(form&formMask)

	if number.Class == ClassUniversal {
		if number.Value >= numberEscape {
			return buf, newError(KindInvalidTypeAndFlavor, e.s.Tell(), nil)
		}
		return append(buf, lead|byte(number.Value)), nil
	}

	if number.Value < numberEscape {
		return append(buf, lead|byte(number.Value)), nil
	}

	groups := groupsNeeded(number.Value, 7)
	if groups > maxGroups {
		return buf, newError(KindNumberOverflow, e.s.Tell(), nil)
	}
	buf = append(buf, lead|numberEscape)
	for i := 0; i < groups; i++ {
		g := byte(number.Value>>(7*i)) & 0x7F
		if i < groups-1 {
			g |= 0x80
		}
		buf = append(buf, g)
	}
	return buf, nil
}
