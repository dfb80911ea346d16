package parsec

import (
	"sync"
)

// Map returns a parser that applies f to the value of p.
// Failures of p pass through unchanged.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(s State) (U, State, error) {
		v, next, err := p(s)
		if err != nil {
			var zero U

			return zero, s, err
		}

		return f(v), next, nil
	}
}

// Bind returns a parser that runs f on the value of p to decide the result.
//
// If f returns an error the parser fails even though p succeeded, and the
// input is left unconsumed. An error from f that wraps an [*Error] is
// propagated as is; any other error is wrapped in a [KindValidation] error
// located where p started.
func Bind[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(s State) (U, State, error) {
		var zero U

		v, next, err := p(s)
		if err != nil {
			return zero, s, err
		}

		u, err := f(v)
		if err != nil {
			if _, ok := asError(err); ok {
				return zero, s, err
			}

			return zero, s, failAt(KindValidation, s).
				finding(quoteFound(s.Consumed(next), residualPreview)).
				Wrap(err)
		}

		return u, next, nil
	}
}

// AndThen returns a parser that applies p1 and then p2 to the remainder,
// pairing their values.
func AndThen[T, U any](p1 Parser[T], p2 Parser[U]) Parser[Pair[T, U]] {
	return func(s State) (Pair[T, U], State, error) {
		a, mid, err := p1(s)
		if err != nil {
			return Pair[T, U]{}, s, err
		}

		b, next, err := p2(mid)
		if err != nil {
			return Pair[T, U]{}, s, err
		}

		return Pair[T, U]{Left: a, Right: b}, next, nil
	}
}

// SepPair returns a parser that applies p1, the literal sep, and then p2,
// pairing the values of p1 and p2.
func SepPair[T, U any](p1 Parser[T], sep string, p2 Parser[U]) Parser[Pair[T, U]] {
	return AndThen(p1.SkipTag(sep), p2)
}

// Skip returns a parser that applies p1 and then p2, keeping only the value
// of p1.
func Skip[T, U any](p1 Parser[T], p2 Parser[U]) Parser[T] {
	return func(s State) (T, State, error) {
		v, mid, err := p1(s)
		if err != nil {
			return v, s, err
		}

		_, next, err := p2(mid)
		if err != nil {
			var zero T

			return zero, s, err
		}

		return v, next, nil
	}
}

// SkipTag returns a parser that applies p and then consumes the literal lit,
// keeping the value of p.
func (p Parser[T]) SkipTag(lit string) Parser[T] {
	return Skip(p, Tag(lit))
}

// Ignore returns a parser that applies p1 and then p2, keeping only the
// value of p2. It reads naturally for prefix-then-payload grammars:
//
//	Ignore(Tag("Monkey "), Number[int]())
func Ignore[T, U any](p1 Parser[T], p2 Parser[U]) Parser[U] {
	return func(s State) (U, State, error) {
		var zero U

		_, mid, err := p1(s)
		if err != nil {
			return zero, s, err
		}

		v, next, err := p2(mid)
		if err != nil {
			return zero, s, err
		}

		return v, next, nil
	}
}

// Or returns a parser that tries p and, only if p fails, tries q on the
// same input. When both fail the error of q is returned.
func (p Parser[T]) Or(q Parser[T]) Parser[T] {
	return Or(p, q)
}

// Or returns a parser that tries each of ps in order on the same input and
// returns the result of the first that succeeds. When all fail the error of
// the last is returned. Or with no parsers always fails.
func Or[T any](ps ...Parser[T]) Parser[T] {
	return func(s State) (T, State, error) {
		var (
			zero T
			err  error = failAt(KindUnexpectedChar, s)
		)

		for _, p := range ps {
			var (
				v    T
				next State
			)

			v, next, err = p(s)
			if err == nil {
				return v, next, nil
			}
		}

		return zero, s, err
	}
}

// Maybe returns a parser that makes p optional. It always succeeds,
// consuming nothing when p fails.
func Maybe[T any](p Parser[T]) Parser[Option[T]] {
	return func(s State) (Option[T], State, error) {
		v, next, err := p(s)
		if err != nil {
			return Option[T]{}, s.stopped(err), nil
		}

		return Option[T]{Value: v, Valid: true}, next, nil
	}
}

// Line returns a parser that applies p and then requires the literal term,
// typically a line break.
func (p Parser[T]) Line(term string) Parser[T] {
	return Skip(p, Tag(term))
}

// Lazy returns a parser that defers building its parser until first use.
// It makes recursive grammars possible:
//
//	var value parsec.Parser[Node]
//	value = parsec.Lazy(func() parsec.Parser[Node] {
//		return parsec.Or(number, list(value))
//	})
//
// The function is called at most once.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	get := sync.OnceValue(f)

	return func(s State) (T, State, error) {
		return get()(s)
	}
}

// Label returns a parser that reports name as the expectation whenever p
// fails.
func Label[T any](p Parser[T], name string) Parser[T] {
	return func(s State) (T, State, error) {
		v, next, err := p(s)
		if err != nil {
			if e, ok := asError(err); ok {
				err = e.expecting(name)
			}

			return v, next, err
		}

		return v, next, nil
	}
}

// Recognize returns a parser that applies p and returns the input it
// consumed.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(s State) (string, State, error) {
		_, next, err := p(s)
		if err != nil {
			return "", s, err
		}

		return s.Consumed(next), next, nil
	}
}

// Value returns a parser that applies p and returns v in place of its value.
func Value[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}
