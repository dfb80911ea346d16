// Package parsec provides generic parser combinators for small text formats.
//
// A [Parser] consumes a prefix of its input and returns a typed value and
// the remaining input, or fails with an [*Error]. Grammars are declared by
// composing primitive parsers with combinators, then driven once across
// the full input:
//
//	monkey := parsec.SepPair(
//		parsec.Ignore(parsec.Tag("Monkey "), parsec.Number[int]()),
//		":\n  Starting items: ",
//		parsec.List(parsec.Number[uint64](), ", "),
//	)
//
//	monkeys, err := parsec.List(monkey.Line("\n"), "\n").
//		Parse(input).
//		Finish()
//
// # Primitives
//
//   - [Char], [AnyChar], [CharFunc]: a single rune
//   - [Tag], [OneOf]: literal text
//   - [Number], [SignedNumber]: decimal integers
//   - [ManyChars], [Spaces]: runs of runes (never fail)
//   - [Eof]: end of input
//
// # Combinators
//
// Sequencing: [AndThen], [SepPair], [Skip], [Ignore], [Parser.SkipTag],
// [Parser.Line]. Choice: [Or], [Parser.Or], [Maybe]. Repetition: [Many],
// [Many1], [Repeat], [List], [ManyLines]. Values: [Map], [Bind], [Value],
// [Recognize], [Where]. Grammar plumbing: [Lazy], [Label], [Trace].
//
// Go methods cannot introduce type parameters, so combinators that change
// the value type are functions; those that keep it are also available as
// methods.
//
// # Choice
//
// [Or] is ordered choice: alternatives are tried left to right, each on the
// original input, and the first success wins even if a later alternative
// would match more. A failed alternative never consumes input.
//
// # Repetition
//
// [Many] accepts zero elements, [List] requires one. [List] consumes a
// separator only together with the element that follows it, so "1,2," parsed
// by List(Number[int](), ",") yields 1 and 2 and leaves ",".
//
// Repetition results are single-use [iter.Seq] values that parse each
// element when it is pulled. Breaking out of a range loop early leaves the
// rest of the input unparsed until something asks where the repetition
// ended, such as a following parser or [Result.Finish].
//
// # Finishing
//
// [Result.Finish] rejects any parse that leaves input behind, except one
// trailing line break (see [WithTerminator] and [Strict]). When a
// repetition stopped where the residue begins, the failure that stopped it
// is wrapped as the cause, so the report points at the malformed element:
//
//	_, err := parsec.List(parsec.Number[int](), ",").Parse("1,2,x").Finish()
//	errors.Is(err, parsec.ErrResidualInput)  // true
//	errors.Is(err, parsec.ErrUnexpectedChar) // true
//
// # Errors
//
// Every failure is an [*Error] with a [Kind], a [Position], and the
// expected and found text. Errors match their kind's sentinel with
// [errors.Is], log as structured groups through [log/slog], and render with
// the offending source line via [Report].
//
// # Concurrency
//
// Parsers are immutable and may be shared by any number of goroutines.
package parsec
