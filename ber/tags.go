package ber

import "fmt"

// TagClass represents the class of a BER tag
// The two high-order bits of the identifier octets are used to encode the class.
type TagClass byte

// Tag classes as defined in X.690
const (
	ClassUniversal       TagClass = 0x00 // 0b00000000 - Universal class (ASN.1 built-in types)
	ClassApplication     TagClass = 0x40 // 0b01000000 - Application class (defined by the application)
	ClassContextSpecific TagClass = 0x80 // 0b10000000 - Context-specific class
	ClassPrivate         TagClass = 0xC0 // 0b11000000 - Private class (defined in private specifications)
)

const classMask = 0xC0

func (c TagClass) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContextSpecific:
		return "CONTEXT"
	case ClassPrivate:
		return "PRIVATE"
	}
	return fmt.Sprintf("TagClass(0x%02X)", byte(c))
}

// TagForm represents the form (flavor) of a BER tag
// The next bit (bit 5) indicates if the type is primitive or constructed.
type TagForm byte

// Tag forms as defined in X.690
const (
	FormPrimitive   TagForm = 0x00 // 0b00000000 - Primitive encoding
	FormConstructed TagForm = 0x20 // 0b00100000 - Constructed encoding (contains other types)
)

const formMask = 0x20

func (f TagForm) String() string {
	if f == FormConstructed {
		return "constructed"
	}
	return "primitive"
}

// UniversalType is the tag number of a universal class tag.
// It occupies the 5-bit number field directly and never uses the extended form.
type UniversalType byte

// Universal tags as defined in X.680/X.690
const (
	Eoc              UniversalType = 0x00 // End-of-Contents
	Boolean          UniversalType = 0x01 // BOOLEAN
	Integer          UniversalType = 0x02 // INTEGER
	BitString        UniversalType = 0x03 // BIT STRING
	OctetString      UniversalType = 0x04 // OCTET STRING
	Null             UniversalType = 0x05 // NULL
	ObjectIdentifier UniversalType = 0x06 // OBJECT IDENTIFIER
	ObjectDescriptor UniversalType = 0x07 // ObjectDescriptor
	External         UniversalType = 0x08 // EXTERNAL
	Real             UniversalType = 0x09 // REAL
	Enumerated       UniversalType = 0x0A // ENUMERATED
	EmbeddedPDV      UniversalType = 0x0B // EMBEDDED PDV
	UTF8String       UniversalType = 0x0C // UTF8String
	RelativeOID      UniversalType = 0x0D // RELATIVE-OID
	Time             UniversalType = 0x0E // TIME
	Reserved15       UniversalType = 0x0F // reserved for future use
	Sequence         UniversalType = 0x10 // SEQUENCE, SEQUENCE OF
	Set              UniversalType = 0x11 // SET, SET OF
	NumericString    UniversalType = 0x12 // NumericString
	PrintableString  UniversalType = 0x13 // PrintableString
	T61String        UniversalType = 0x14 // T61String (TeletexString)
	VideotexString   UniversalType = 0x15 // VideotexString
	IA5String        UniversalType = 0x16 // IA5String
	UTCTime          UniversalType = 0x17 // UTCTime
	GeneralizedTime  UniversalType = 0x18 // GeneralizedTime
	GraphicString    UniversalType = 0x19 // GraphicString
	VisibleString    UniversalType = 0x1A // VisibleString (ISO646String)
	GeneralString    UniversalType = 0x1B // GeneralString
	UniversalString  UniversalType = 0x1C // UniversalString
	CharacterString  UniversalType = 0x1D // CHARACTER STRING
	BMPString        UniversalType = 0x1E // BMPString
	// 0x1F is the extended-number escape and is not a universal type
)

// numberEscape in the low 5 bits of the identifier announces an extended tag number.
const numberEscape = 0x1F

var universalNames = [...]string{
	Eoc:              "EOC",
	Boolean:          "BOOLEAN",
	Integer:          "INTEGER",
	BitString:        "BIT STRING",
	OctetString:      "OCTET STRING",
	Null:             "NULL",
	ObjectIdentifier: "OBJECT IDENTIFIER",
	ObjectDescriptor: "ObjectDescriptor",
	External:         "EXTERNAL",
	Real:             "REAL",
	Enumerated:       "ENUMERATED",
	EmbeddedPDV:      "EMBEDDED PDV",
	UTF8String:       "UTF8String",
	RelativeOID:      "RELATIVE-OID",
	Time:             "TIME",
	Reserved15:       "reserved",
	Sequence:         "SEQUENCE",
	Set:              "SET",
	NumericString:    "NumericString",
	PrintableString:  "PrintableString",
	T61String:        "T61String",
	VideotexString:   "VideotexString",
	IA5String:        "IA5String",
	UTCTime:          "UTCTime",
	GeneralizedTime:  "GeneralizedTime",
	GraphicString:    "GraphicString",
	VisibleString:    "VisibleString",
	GeneralString:    "GeneralString",
	UniversalString:  "UniversalString",
	CharacterString:  "CHARACTER STRING",
	BMPString:        "BMPString",
}

// Valid reports whether t is one of the 31 universal discriminants.
func (t UniversalType) Valid() bool {
	return int(t) < len(universalNames)
}

func (t UniversalType) String() string {
	if t.Valid() {
		return universalNames[t]
	}
	return fmt.Sprintf("UniversalType(%d)", byte(t))
}

// Number identifies a tag: its class and its number within that class.
// For the universal class Value holds a UniversalType.
type Number struct {
	Class TagClass
	Value uint64
}

// Universal creates a universal class tag number.
func Universal(t UniversalType) Number {
	return Number{Class: ClassUniversal, Value: uint64(t)}
}

// Application creates an application class tag number.
func Application(n uint64) Number {
	return Number{Class: ClassApplication, Value: n}
}

// ContextSpecific creates a context-specific tag number.
func ContextSpecific(n uint64) Number {
	return Number{Class: ClassContextSpecific, Value: n}
}

// Private creates a private class tag number.
func Private(n uint64) Number {
	return Number{Class: ClassPrivate, Value: n}
}

// UniversalType returns the universal type of n, if n is of the universal class.
func (n Number) UniversalType() (UniversalType, bool) {
	if n.Class != ClassUniversal || n.Value >= uint64(len(universalNames)) {
		return 0, false
	}
	return UniversalType(n.Value), true
}

func (n Number) String() string {
	if t, ok := n.UniversalType(); ok {
		return fmt.Sprintf("[%s %d] %s", n.Class, n.Value, t)
	}
	return fmt.Sprintf("[%s %d]", n.Class, n.Value)
}
