package ber

import (
	"errors"
	"fmt"
)

// Kind classifies a codec failure.
type Kind int

const (
	// KindInvalidTypeAndFlavor: universal class used with the extended-number escape.
	KindInvalidTypeAndFlavor Kind = iota + 1
	// KindInvalidLength: indefinite length on a primitive tag.
	KindInvalidLength
	// KindNumberOverflow: extended tag number or long-form length wider than 8 groups/bytes.
	KindNumberOverflow
	// KindIO: the underlying reader or writer failed.
	KindIO
	// KindDepthExceeded: constructed nesting deeper than the configured limit.
	KindDepthExceeded
)

// Sentinels for errors.Is. Every *Error matches the sentinel of its Kind.
var (
	ErrInvalidTypeAndFlavor = errors.New("ber: tag number and flavor mismatch")
	ErrInvalidLength        = errors.New("ber: indefinite length is only allowed for constructed tags")
	ErrNumberOverflow       = errors.New("ber: number is larger than 8 bytes")
	ErrIO                   = errors.New("ber: i/o error")
	ErrMaxDepthExceeded     = errors.New("ber: maximum depth exceeded")
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidTypeAndFlavor:
		return ErrInvalidTypeAndFlavor
	case KindInvalidLength:
		return ErrInvalidLength
	case KindNumberOverflow:
		return ErrNumberOverflow
	case KindIO:
		return ErrIO
	case KindDepthExceeded:
		return ErrMaxDepthExceeded
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case KindInvalidTypeAndFlavor:
		return "tag number and flavor mismatch"
	case KindInvalidLength:
		return "indefinite length is only allowed for constructed tags"
	case KindNumberOverflow:
		return "number is larger than 8 bytes"
	case KindIO:
		return "i/o error"
	case KindDepthExceeded:
		return "maximum depth exceeded"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by every fallible codec step.
// Offset is the stream position at which the failure was detected.
// Cause is either the native I/O error or, when a constructed tag fails
// because one of its children failed, the child's *Error.
type Error struct {
	Kind   Kind
	Offset int64
	Cause  error
}

func newError(kind Kind, offset int64, cause error) *Error {
	return &Error{Kind: kind, Offset: offset, Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ber: %s at offset %d: %v", e.Kind, e.Offset, e.Cause)
	}
	return fmt.Sprintf("ber: %s at offset %d", e.Kind, e.Offset)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel error of e's Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Innermost follows the chain of nested *Error causes and returns the deepest one,
// which points at the most specific failure location.
func (e *Error) Innermost() *Error {
	cur := e
	for {
		var next *Error
		if !errors.As(cur.Cause, &next) {
			return cur
		}
		cur = next
	}
}

// wrap attaches the offset at the point of failure to err.
// A child's *Error keeps its kind and becomes the cause of the returned one.
func wrap(err error, offset int64) error {
	var inner *Error
	if errors.As(err, &inner) {
		return newError(inner.Kind, offset, err)
	}
	return newError(KindIO, offset, err)
}
