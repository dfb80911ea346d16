package parsec

import (
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Number returns a parser that consumes the longest run of decimal digits
// and converts it to T.
//
// It fails with [KindEndOfString] on empty input and [KindUnexpectedChar]
// when no digit is present. Digits that do not fit in T fail with
// [KindNumericConversion].
func Number[T constraints.Integer]() Parser[T] {
	return func(s State) (T, State, error) {
		n := digits(s.Rest())
		if n == 0 {
			return 0, s, noDigits(s)
		}

		v, err := convert[T](s.Rest()[:n])
		if err != nil {
			return 0, s, failAt(KindNumericConversion, s).
				finding(strconv.Quote(s.Rest()[:n])).
				Wrap(err)
		}

		return v, s.advance(n), nil
	}
}

// SignedNumber returns a parser like [Number] that also accepts a single
// leading '-'.
func SignedNumber[T constraints.Signed]() Parser[T] {
	return func(s State) (T, State, error) {
		rest := s.Rest()

		sign := 0
		if rest != "" && rest[0] == '-' {
			sign = 1
		}

		n := digits(rest[sign:])
		if n == 0 {
			return 0, s, noDigits(s.advance(sign))
		}

		n += sign

		v, err := convert[T](rest[:n])
		if err != nil {
			return 0, s, failAt(KindNumericConversion, s).
				finding(strconv.Quote(rest[:n])).
				Wrap(err)
		}

		return v, s.advance(n), nil
	}
}

// digits returns the byte length of the leading run of ASCII digits in s.
func digits(s string) int {
	n := 0
	for n < len(s) && isDigit(rune(s[n])) {
		n++
	}

	return n
}

func noDigits(s State) *Error {
	if s.AtEnd() {
		return endOfString(s, "digit")
	}

	return unexpected(s, "digit")
}

// convert parses text into T, honoring T's size and signedness.
func convert[T constraints.Integer](text string) (T, error) {
	var zero T

	bits := reflect.TypeFor[T]().Bits()

	if ^zero < zero { // signed
		v, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			return zero, err
		}

		return T(v), nil
	}

	v, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return zero, err
	}

	return T(v), nil
}
