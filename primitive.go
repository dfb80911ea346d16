package parsec

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Char returns a parser that consumes exactly one rune equal to c.
func Char(c rune) Parser[rune] {
	want := strconv.QuoteRune(c)

	return func(s State) (rune, State, error) {
		r, size := s.peek()
		if size == 0 {
			return 0, s, endOfString(s, want)
		}

		if r != c {
			return 0, s, unexpected(s, want)
		}

		return r, s.advance(size), nil
	}
}

// AnyChar returns a parser that consumes any single rune.
func AnyChar() Parser[rune] {
	return func(s State) (rune, State, error) {
		r, size := s.peek()
		if size == 0 {
			return 0, s, endOfString(s, "any character")
		}

		return r, s.advance(size), nil
	}
}

// CharFunc returns a parser that consumes one rune satisfying pred.
//
// Unlike [Char], exhausted input is reported as [KindUnexpectedChar]: the
// predicate rejects the end of input like any other character.
func CharFunc(pred func(rune) bool) Parser[rune] {
	return func(s State) (rune, State, error) {
		r, size := s.peek()
		if size == 0 {
			return 0, s, failAt(KindUnexpectedChar, s).finding("end of input")
		}

		if !pred(r) {
			return 0, s, unexpected(s)
		}

		return r, s.advance(size), nil
	}
}

// Tag returns a parser that consumes the literal lit.
//
// An empty lit always succeeds without consuming input.
func Tag(lit string) Parser[Unit] {
	want := strconv.Quote(lit)

	return func(s State) (Unit, State, error) {
		rest := s.Rest()
		if strings.HasPrefix(rest, lit) {
			return Unit{}, s.advance(len(lit)), nil
		}

		if rest == "" {
			return Unit{}, s, endOfString(s, want)
		}

		return Unit{}, s, failAt(KindTagMismatch, s).
			expecting(want).
			finding(quoteFound(rest, utf8.RuneCountInString(lit)))
	}
}

// ManyChars returns a parser that consumes the longest, possibly empty, run
// of runes satisfying pred. It never fails.
func ManyChars(pred func(rune) bool) Parser[string] {
	return func(s State) (string, State, error) {
		rest := s.Rest()

		n := strings.IndexFunc(rest, func(r rune) bool { return !pred(r) })
		if n < 0 {
			n = len(rest)
		}

		return rest[:n], s.advance(n), nil
	}
}

// Spaces returns a parser that consumes a possibly empty run of white space
// other than line breaks.
func Spaces() Parser[string] {
	return ManyChars(func(r rune) bool {
		return r != '\n' && r != '\r' && unicode.IsSpace(r)
	})
}

// Eof returns a parser that succeeds only when the input is exhausted.
func Eof() Parser[Unit] {
	return func(s State) (Unit, State, error) {
		if !s.AtEnd() {
			return Unit{}, s, failAt(KindResidualInput, s).
				expecting("end of input").
				finding(quoteFound(s.Rest(), residualPreview))
		}

		return Unit{}, s, nil
	}
}

// OneOf returns a parser that consumes the first of lits found at the
// current position and returns it. Literals are tried in order, so a
// literal that is a prefix of a later one shadows it.
//
// On failure the expected literals are ordered by their similarity to the
// input at the failure position, most similar first.
func OneOf(lits ...string) Parser[string] {
	longest := 0
	for _, lit := range lits {
		longest = max(longest, utf8.RuneCountInString(lit))
	}

	return func(s State) (string, State, error) {
		rest := s.Rest()

		for _, lit := range lits {
			if strings.HasPrefix(rest, lit) {
				return lit, s.advance(len(lit)), nil
			}
		}

		expected := rankExpected(rest, longest, lits)

		if rest == "" {
			return "", s, endOfString(s, expected...)
		}

		return "", s, failAt(KindTagMismatch, s).
			expecting(expected...).
			finding(quoteFound(rest, longest))
	}
}

// rankExpected quotes lits, ordering those that fuzzily match the next
// width runes of input first, best match first. The rest keep their
// original order.
func rankExpected(input string, width int, lits []string) []string {
	var word strings.Builder

	n := 0
	for _, r := range input {
		if n >= width || unicode.IsSpace(r) {
			break
		}

		word.WriteRune(r)
		n++
	}

	ranked := make([]string, 0, len(lits))
	seen := make([]bool, len(lits))

	if word.Len() > 0 {
		for _, m := range fuzzy.Find(word.String(), lits) {
			ranked = append(ranked, strconv.Quote(m.Str))
			seen[m.Index] = true
		}
	}

	for i, lit := range lits {
		if !seen[i] {
			ranked = append(ranked, strconv.Quote(lit))
		}
	}

	return ranked
}
