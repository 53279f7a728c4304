package wrap

import (
	"fmt"

	"go.uber.org/zap"

	"interpose/callable"
	"interpose/signature"
)

// Sink consumes one formatted call record.
type Sink func(string)

// StdoutSink writes call records to standard output. It is the
// default sink.
func StdoutSink(msg string) {
	fmt.Println(msg)
}

// ZapSink adapts a zap logger into a call-record sink.
func ZapSink(l *zap.Logger) Sink {
	return func(msg string) {
		l.Info(msg)
	}
}

// Format renders one call into the string handed to the sink.
type Format func(name string, pos []any, named *signature.Args) string

// Logging builds a pre-call-only wrapper that formats and sinks each
// call before the underlying callable runs, exactly once per
// invocation, on the caller's goroutine. Arguments and result pass
// through untouched.
//
// bound drops the leading receiver from what is formatted when the
// wrapped callable is a receiver-first unbound method; it never
// changes what is passed to the real call. A nil sink means
// StdoutSink, a nil format means CallSignature.
func Logging(sink Sink, format Format, bound bool) Wrapper {
	if sink == nil {
		sink = StdoutSink
	}

	if format == nil {
		format = CallSignature
	}

	return func(c *callable.Callable) *callable.Callable {
		pre := func(pos []any, named *signature.Args) ([]any, *signature.Args, error) {
			logged := pos
			if bound && len(pos) > 0 {
				logged = pos[1:]
			}

			sink(format(c.Name(), logged, named))

			return pos, named, nil
		}

		return Wrap(c, pre, nil)
	}
}
