package parsec

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrExprCompile is returned by [Where] when its expression does not
// compile.
var ErrExprCompile = errors.New("expression compilation failed")

// ErrExprResult is wrapped by the validation failure of a [Where] parser
// whose expression did not evaluate to a boolean.
var ErrExprResult = errors.New("expression did not evaluate to a boolean")

// Where returns a parser that applies p and accepts its value only if the
// boolean expr-lang expression holds.
//
// The expression is compiled once, here. It is evaluated with two
// variables:
//
//   - value: the value produced by p
//   - text:  the input consumed by p
//
// For example:
//
//	even := parsec.MustWhere(parsec.Number[int](), "value % 2 == 0")
//	word := parsec.MustWhere(parsec.ManyChars(unicode.IsLetter), "len(text) > 0")
//
// A false result, or an evaluation error, fails with [KindValidation]
// located where p started, leaving the input unconsumed.
func Where[T any](p Parser[T], expression string) (Parser[T], error) {
	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrExprCompile, expression, err)
	}

	return where(p, expression, program), nil
}

// MustWhere is like [Where] but panics if the expression does not compile.
// It simplifies safe initialization of global parsers.
func MustWhere[T any](p Parser[T], expression string) Parser[T] {
	w, err := Where(p, expression)
	if err != nil {
		panic(err)
	}

	return w
}

func where[T any](p Parser[T], expression string, program *vm.Program) Parser[T] {
	want := "value satisfying " + strconv.Quote(expression)

	return func(s State) (T, State, error) {
		var zero T

		v, next, err := p(s)
		if err != nil {
			return zero, s, err
		}

		text := s.Consumed(next)

		fail := failAt(KindValidation, s).
			expecting(want).
			finding(quoteFound(text, residualPreview))

		out, err := expr.Run(program, map[string]any{
			"value": v,
			"text":  text,
		})
		if err != nil {
			return zero, s, fail.Wrap(err)
		}

		ok, isBool := out.(bool)
		if !isBool {
			return zero, s, fail.Wrap(ErrExprResult)
		}

		if !ok {
			return zero, s, fail
		}

		return v, next, nil
	}
}
