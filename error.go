//go:generate go tool stringer --linecomment --type Kind --output kind_string.go

package parsec

import (
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind classifies why a parser failed.
type Kind int

const (
	// KindEndOfString means the input was exhausted where at least one more
	// character was required.
	KindEndOfString Kind = iota + 1 // end of string

	// KindUnexpectedChar means the next character did not satisfy the
	// required character or predicate.
	KindUnexpectedChar // unexpected character

	// KindTagMismatch means an expected literal was not found.
	KindTagMismatch // tag mismatch

	// KindNumericConversion means a run of digits could not be represented
	// by the target numeric type.
	KindNumericConversion // numeric conversion failure

	// KindResidualInput means a parse that had to consume everything left
	// input behind.
	KindResidualInput // residual input

	// KindValidation means a successful parse was rejected by a semantic
	// check (see [Bind] and [Where]).
	KindValidation // validation failure
)

// Predefined errors (sentinel values).
//
// Every [*Error] produced by a parser matches the sentinel of its kind
// with [errors.Is].
var (
	ErrEndOfString       = &Error{kind: KindEndOfString}
	ErrUnexpectedChar    = &Error{kind: KindUnexpectedChar}
	ErrTagMismatch       = &Error{kind: KindTagMismatch}
	ErrNumericConversion = &Error{kind: KindNumericConversion}
	ErrResidualInput     = &Error{kind: KindResidualInput}
	ErrValidation        = &Error{kind: KindValidation}
)

// Error describes a parse failure at a position of the input.
// It implements both error and slog.LogValuer interfaces.
//
// Error values are immutable; [Error.With] and [Error.Wrap] return copies.
type Error struct {
	src      string
	expected []string
	found    string
	err      error       // Wrapped error (for errors.Unwrap)
	attrs    []slog.Attr // Attributes for structured logging
	off      int
	kind     Kind
	located  bool
}

// failAt creates an Error of the given kind positioned at s.
func failAt(kind Kind, s State) *Error {
	s = s.settled()

	return &Error{
		kind:    kind,
		src:     s.src,
		off:     s.off,
		located: true,
	}
}

// endOfString creates an EndOfString error at s naming what was expected.
func endOfString(s State, expected ...string) *Error {
	return failAt(KindEndOfString, s).expecting(expected...).
		finding("end of input")
}

// unexpected creates an UnexpectedChar error citing the rune at s.
func unexpected(s State, expected ...string) *Error {
	r, _ := s.peek()

	return failAt(KindUnexpectedChar, s).expecting(expected...).
		finding(strconv.QuoteRune(r))
}

// asError extracts an *Error from err.
func asError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}

// Kind returns the failure kind.
func (e *Error) Kind() Kind { return e.kind }

// Offset returns the byte offset of the failure in the input.
func (e *Error) Offset() int { return e.off }

// Position returns the location of the failure in the input.
// The zero Position is returned for sentinel errors.
func (e *Error) Position() Position {
	if !e.located {
		return Position{}
	}

	return positionOf(e.src, e.off)
}

// Source returns the complete input the failure occurred in.
func (e *Error) Source() string { return e.src }

// Expected returns a description of each alternative that would have been
// accepted at the failure position.
func (e *Error) Expected() []string { return slices.Clone(e.expected) }

// Found returns a description of what was found at the failure position.
func (e *Error) Found() string { return e.found }

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.kind.String())

	if e.located {
		pos := e.Position()
		sb.WriteString(" at line ")
		sb.WriteString(strconv.Itoa(pos.Line))
		sb.WriteString(", column ")
		sb.WriteString(strconv.Itoa(pos.Column))
	}

	if len(e.expected) > 0 {
		sb.WriteString(": expected ")
		sb.WriteString(strings.Join(e.expected, " or "))
	}

	if e.found != "" {
		if len(e.expected) > 0 {
			sb.WriteString(", found ")
		} else {
			sb.WriteString(": found ")
		}

		sb.WriteString(e.found)
	}

	if e.err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.err.Error())
	}

	return sb.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && !t.located && t.kind == e.kind
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+6)
	attrs = append(attrs, slog.String("kind", e.kind.String()))

	if e.located {
		pos := e.Position()
		attrs = append(attrs,
			slog.Int("offset", pos.Offset),
			slog.Int("line", pos.Line),
			slog.Int("column", pos.Column),
		)
	}

	if len(e.expected) > 0 {
		attrs = append(attrs, slog.Any("expected", e.expected))
	}

	if e.found != "" {
		attrs = append(attrs, slog.String("found", e.found))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := e.clone()
	c.attrs = append(slices.Clip(c.attrs), attrs...)

	return c
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := e.clone()
	c.err = err

	return c
}

func (e *Error) clone() *Error {
	c := *e

	return &c
}

func (e *Error) expecting(expected ...string) *Error {
	if len(expected) == 0 {
		return e
	}

	c := e.clone()
	c.expected = expected

	return c
}

func (e *Error) finding(found string) *Error {
	c := e.clone()
	c.found = found

	return c
}

// quoteFound renders up to n runes of s for the found field of an error.
func quoteFound(s string, n int) string {
	end := 0
	for i := 0; i < n && end < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}

	return strconv.Quote(s[:end])
}
