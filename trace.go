package parsec

import (
	"log/slog"

	"github.com/ardnew/parsec/log"
)

// Trace returns a parser that behaves like p and logs each attempt and its
// outcome at [log.LevelTrace] to logger, labeled with name. The zero
// [log.Logger] selects [log.Default] at the time of each attempt, so
// tracing can be switched on later with [log.Config].
//
// Parsers never log on their own; Trace is the only way to observe a parse
// as it happens. When the logger is not enabled for Trace the cost is one
// level check per attempt. A traced repetition that matches is run to its
// end so that the text it consumed can be logged.
func Trace[T any](p Parser[T], name string, logger log.Logger) Parser[T] {
	return func(s State) (T, State, error) {
		l := logger
		if l.Logger == nil {
			l = log.Default()
		}

		ctx := log.DefaultContextProvider()

		if !l.Enabled(ctx, log.LevelTrace) {
			return p(s)
		}

		l = l.With(slog.String("parser", name))

		pos := s.Position()

		l.TraceContext(ctx, "parser attempt",
			slog.Int("offset", pos.Offset),
			slog.Int("line", pos.Line),
			slog.Int("column", pos.Column),
		)

		v, next, err := p(s)
		if err != nil {
			l.TraceContext(ctx, "parser failed", slog.Any("error", err))

			return v, next, err
		}

		l.TraceContext(ctx, "parser matched",
			slog.String("text", quoteFound(s.Consumed(next), residualPreview)),
			slog.Int("consumed", next.Offset()-s.Offset()),
		)

		return v, next, nil
	}
}
