package parsec

// Parser consumes a prefix of a State.
//
// On success it returns the parsed value and the State following the
// consumed prefix. On failure it returns the zero value, the State it was
// given, and a non-nil error (an [*Error] for every parser in this package).
//
// Parsers carry no mutable state; one Parser may be invoked any number of
// times, from any number of goroutines.
type Parser[T any] func(s State) (T, State, error)

// Unit is the value of parsers that only recognize input, such as [Tag].
type Unit struct{}

// Pair holds the values of two parsers applied in sequence.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// Option holds the value of an optional parser (see [Maybe]).
type Option[T any] struct {
	Value T
	Valid bool
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.Value, o.Valid }

// Or returns the value if present, else def.
func (o Option[T]) Or(def T) T {
	if o.Valid {
		return o.Value
	}

	return def
}

// Parse applies p to the complete input.
func (p Parser[T]) Parse(input string) Result[T] {
	v, rest, err := p(NewState(input))

	return Result[T]{value: v, rest: rest, err: err}
}

// Result is the outcome of [Parser.Parse]: either a value and the
// unconsumed remainder, or an error.
type Result[T any] struct {
	value T
	rest  State
	err   error
}

// Value returns the parsed value, or the zero value if the parse failed.
func (r Result[T]) Value() T { return r.value }

// Rest returns the unconsumed input.
func (r Result[T]) Rest() string { return r.rest.Rest() }

// State returns the State following the parse.
func (r Result[T]) State() State { return r.rest.settled() }

// Err returns the parse error, if any.
func (r Result[T]) Err() error { return r.err }

// Unwrap returns the value and the parse error.
// Unconsumed input is not an error here; see [Result.Finish].
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }

// Finish returns the parsed value only if the parse succeeded and consumed
// the complete input. A pending repetition is run to its end first; its
// sequence still yields every element.
//
// By default a single trailing "\n" may remain; see [WithTerminator] and
// [Strict]. Any other remainder fails with a [KindResidualInput] error
// located at the first unconsumed character. If a repetition stopped at
// that position, the failure that stopped it is wrapped as the cause.
func (r Result[T]) Finish(opts ...FinishOption) (T, error) {
	var zero T

	if r.err != nil {
		return zero, r.err
	}

	cfg := apply(finishConfig{terminator: "\n"}, opts...)

	end := r.rest.settled()

	rest := end.Rest()
	if rest == "" || (cfg.terminator != "" && rest == cfg.terminator) {
		return r.value, nil
	}

	err := failAt(KindResidualInput, end).
		expecting("end of input").
		finding(quoteFound(rest, residualPreview))

	if end.stop != nil && end.stop.off >= end.off {
		err = err.Wrap(end.stop)
	}

	return zero, err
}

// residualPreview is the number of runes of residual input cited in errors.
const residualPreview = 16

// ParseAll applies p to input and finishes the result.
func ParseAll[T any](p Parser[T], input string, opts ...FinishOption) (T, error) {
	return p.Parse(input).Finish(opts...)
}

// finishConfig configures [Result.Finish].
type finishConfig struct {
	terminator string
}

// FinishOption configures [Result.Finish].
type FinishOption func(finishConfig) finishConfig

// WithTerminator returns a [FinishOption] that permits term as the only
// unconsumed input.
func WithTerminator(term string) FinishOption {
	return func(c finishConfig) finishConfig {
		c.terminator = term

		return c
	}
}

// Strict returns a [FinishOption] that permits no unconsumed input at all.
func Strict() FinishOption {
	return WithTerminator("")
}

// apply applies multiple options to a config.
func apply[C any, O ~func(C) C](cfg C, opts ...O) C {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}
