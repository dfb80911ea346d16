package parsec

import (
	"iter"
)

// Repetition combinators produce their elements on demand. The returned
// sequence parses the next element each time it is pulled, so a consumer
// that stops early never pays for the rest of the input. The sequence is
// single-use: iterating it again resumes after the last element yielded,
// and a finished sequence yields nothing.
//
// The State returned alongside the sequence is pending. Anything that needs
// its offset (a following parser, [Result.Rest], [Result.Finish]) runs the
// repetition to its end first; elements parsed that way are kept until the
// sequence yields them.
//
// All repetition loops rather than recurses, so the number of elements is
// not limited by the stack.

// cursor drives one repetition over one input.
type cursor[T any] struct {
	elem func(State) (T, State, error)
	at   State // where the next element starts
	buf  []T   // parsed but not yet yielded
	done bool
}

// newCursor returns a repetition of elem starting at s. The values in first
// have already been parsed and precede any element parsed from s.
func newCursor[T any](elem func(State) (T, State, error), s State, first ...T) *cursor[T] {
	return &cursor[T]{elem: elem, at: s.settled(), buf: first}
}

// step parses one more element into the buffer. It reports false once the
// repetition has ended.
//
// An element that succeeds without consuming input is kept and ends the
// repetition.
func (c *cursor[T]) step() bool {
	if c.done {
		return false
	}

	v, next, err := c.elem(c.at)
	if err != nil {
		c.at = c.at.stopped(err)
		c.done = true

		return false
	}

	next = next.settled()
	if next.off == c.at.off {
		c.done = true
	}

	c.at = next
	c.buf = append(c.buf, v)

	return true
}

func (c *cursor[T]) settle() State {
	for c.step() {
	}

	return c.at
}

func (c *cursor[T]) all(yield func(T) bool) {
	for len(c.buf) > 0 || c.step() {
		v := c.buf[0]

		var zero T
		c.buf[0] = zero
		c.buf = c.buf[1:]

		if !yield(v) {
			return
		}
	}
}

// result returns the sequence and the pending State of c.
func (c *cursor[T]) result() (iter.Seq[T], State) {
	return c.all, State{src: c.at.src, pending: c}
}

// Many returns a parser that applies p until it fails and yields the values
// of each success. Zero successes is valid, so Many never fails.
//
// An element that succeeds without consuming input is yielded once and ends
// the repetition.
func Many[T any](p Parser[T]) Parser[iter.Seq[T]] {
	return func(s State) (iter.Seq[T], State, error) {
		seq, next := newCursor(p, s).result()

		return seq, next, nil
	}
}

// Many1 returns a parser like [Many] that fails with the error of the first
// attempt when p does not succeed at least once. The first element is
// parsed immediately; the rest on demand.
func Many1[T any](p Parser[T]) Parser[iter.Seq[T]] {
	return func(s State) (iter.Seq[T], State, error) {
		first, next, err := p(s)
		if err != nil {
			return nil, s, err
		}

		c := newCursor(p, next, first)
		c.done = c.at.off == s.Offset()

		seq, next := c.result()

		return seq, next, nil
	}
}

// Repeat returns a parser that applies p exactly n times in sequence and
// yields the n values. It fails with the first failure of p, so all n
// elements are parsed before it returns.
func Repeat[T any](p Parser[T], n int) Parser[iter.Seq[T]] {
	return func(s State) (iter.Seq[T], State, error) {
		values := make([]T, 0, max(n, 0))

		next := s
		for range n {
			v, after, err := p(next)
			if err != nil {
				return nil, s, err
			}

			values = append(values, v)
			next = after
		}

		c := newCursor(p, next, values...)
		c.done = true

		return c.all, c.at, nil
	}
}

// List returns a parser that applies p one or more times, separated by the
// literal sep. A trailing separator is not consumed: the list ends before
// the first separator that is not followed by a successful p.
//
// List fails if the first p fails; it never yields an empty sequence. The
// first element is parsed immediately; the rest on demand.
func List[T any](p Parser[T], sep string) Parser[iter.Seq[T]] {
	item := Ignore(Tag(sep), p)

	return func(s State) (iter.Seq[T], State, error) {
		first, next, err := p(s)
		if err != nil {
			return nil, s, err
		}

		seq, next := newCursor(item, next, first).result()

		return seq, next, nil
	}
}

// ManyLines returns a parser that applies p.Line(term) until a line fails
// or the input is exhausted, and yields the value of each line. A final
// line that ends exactly at the end of input is accepted without term.
// ManyLines never fails.
func ManyLines[T any](p Parser[T], term string) Parser[iter.Seq[T]] {
	eol := Tag(term)

	line := func(s State) (T, State, error) {
		var zero T

		if s.AtEnd() {
			return zero, s, endOfString(s)
		}

		v, next, err := p(s)
		if err != nil || next.AtEnd() {
			return v, next, err
		}

		_, after, err := eol(next)
		if err != nil {
			return zero, s, err
		}

		return v, after, nil
	}

	return func(s State) (iter.Seq[T], State, error) {
		seq, next := newCursor(line, s).result()

		return seq, next, nil
	}
}
