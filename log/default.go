package log

import (
	"context"
	"os"
	"sync/atomic"
)

// DefaultContextProvider returns the context used when logging on behalf
// of callers that do not supply one.
var DefaultContextProvider = context.TODO

// defaultLog is the Logger returned by Default.
var defaultLog atomic.Pointer[Logger]

func init() {
	l := Make(os.Stderr)
	defaultLog.Store(&l)
}

// Default returns the package default Logger. It writes JSON to standard
// error at [DefaultLevel] until changed with [Config].
func Default() Logger { return *defaultLog.Load() }

// Config replaces the default Logger with one derived from it by opts.
// Options not given keep their current values.
func Config(opts ...Option) {
	l := Default().Wrap(opts...)
	defaultLog.Store(&l)
}
