package wrap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"interpose/callable"
	"interpose/signature"
	"interpose/wrap"
)

func TestLogging_SinksOncePerCallBeforeBody(t *testing.T) {
	t.Parallel()

	var events []string

	c, err := callable.Func(func(x int) int {
		events = append(events, "body")
		return x * 2
	}, "x")
	require.NoError(t, err)

	sink := func(msg string) { events = append(events, msg) }

	logged := wrap.Logging(sink, nil, false)(c)

	out, err := logged.Invoke(21)
	require.NoError(t, err)

	assert.Equal(t, 42, out)
	require.Len(t, events, 2)
	assert.Equal(t, "body", events[1])
	assert.Contains(t, events[0], "Executing: ")
	assert.Contains(t, events[0], "(21)")
}

func TestLogging_BoundDropsReceiverFromRecordOnly(t *testing.T) {
	t.Parallel()

	var records []string

	c, err := callable.Func(func(self *int, x int) int {
		return *self + x
	}, "self", "x")
	require.NoError(t, err)

	logged := wrap.Logging(func(msg string) { records = append(records, msg) }, nil, true)(c)

	recv := 10

	out, err := logged.Invoke(&recv, 2)
	require.NoError(t, err)

	// The receiver reached the real call but not the record.
	assert.Equal(t, 12, out)
	require.Len(t, records, 1)
	assert.Contains(t, records[0], "(2)")
}

func TestLogging_NamedArgumentsRendered(t *testing.T) {
	t.Parallel()

	var records []string

	c := mulCallable(t)

	logged := wrap.Logging(func(msg string) { records = append(records, msg) }, nil, false)(c)

	_, err := logged.Call([]any{1}, signature.NewArgs().Set("b", 2))
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Contains(t, records[0], "mul(1, b=2)")
}

func TestZapSink(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)

	c := mulCallable(t)
	logged := wrap.Logging(wrap.ZapSink(zap.New(core)), nil, false)(c)

	out, err := logged.Invoke(1, 2)
	require.NoError(t, err)
	assert.Equal(t, mul(1, 2, 3), out)

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "Executing: mul(1, 2)")
}
