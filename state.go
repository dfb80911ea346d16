package parsec

import (
	"strings"
	"unicode/utf8"
)

// Position identifies a location in the original input.
// Line and Column are 1-based; Column counts runes, not bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// State is the unconsumed remainder of an input at some point of a parse.
//
// A State is a small value. Parsers receive one, and return either a new
// State further along the same input or, on failure, the State they were
// given.
//
// The State returned by a repetition is pending until its offset is
// needed: asking for it parses every element the sequence has not
// produced yet.
type State struct {
	src     string
	off     int
	stop    *Error  // why the last repetition ending here stopped
	pending settler // unfinished repetition ending here
}

// settler is a repetition whose end is not known until it is run out.
type settler interface {
	settle() State
}

// NewState returns a State positioned at the start of input.
func NewState(input string) State {
	return State{src: input}
}

// settled returns s with any pending repetition run to its end.
func (s State) settled() State {
	if s.pending == nil {
		return s
	}

	return s.pending.settle()
}

// Rest returns the unconsumed input.
func (s State) Rest() string {
	s = s.settled()

	return s.src[s.off:]
}

// Offset returns the number of bytes consumed so far.
func (s State) Offset() int { return s.settled().off }

// Len returns the number of unconsumed bytes.
func (s State) Len() int {
	s = s.settled()

	return len(s.src) - s.off
}

// AtEnd reports whether the input is exhausted.
func (s State) AtEnd() bool { return s.Len() == 0 }

// Source returns the complete input the State was created from.
func (s State) Source() string { return s.src }

// Position computes the line and column of the State's offset.
func (s State) Position() Position {
	s = s.settled()

	return positionOf(s.src, s.off)
}

// Consumed returns the input between s and the later State next.
func (s State) Consumed(next State) string {
	s, next = s.settled(), next.settled()
	if next.off < s.off {
		return ""
	}

	return s.src[s.off:next.off]
}

// peek decodes the next rune without consuming it.
func (s State) peek() (rune, int) {
	s = s.settled()
	if s.off >= len(s.src) {
		return utf8.RuneError, 0
	}

	return utf8.DecodeRuneInString(s.src[s.off:])
}

// advance returns a State n bytes further along. Any recorded stop reason
// is dropped because it no longer describes the new offset.
func (s State) advance(n int) State {
	s = s.settled()

	return State{src: s.src, off: s.off + n}
}

// stopped returns a copy of s remembering err as the reason a repetition
// ended at this offset. A reason already recorded is kept unless err
// reaches further into the input.
func (s State) stopped(err error) State {
	s = s.settled()

	if e, ok := asError(err); ok {
		if s.stop == nil || e.off > s.stop.off {
			s.stop = e
		}
	}

	return s
}

func positionOf(src string, off int) Position {
	if off > len(src) {
		off = len(src)
	}

	prefix := src[:off]
	line := 1 + strings.Count(prefix, "\n")

	start := strings.LastIndexByte(prefix, '\n') + 1

	return Position{
		Offset: off,
		Line:   line,
		Column: 1 + utf8.RuneCountInString(prefix[start:]),
	}
}
