package signature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interpose/signature"
)

func TestForFunc(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		sig, err := signature.ForFunc(func(a int, b string) {}, "a", "b")
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b"}, sig.Names())
		assert.False(t, sig.IsVariadic())
	})

	t.Run("variadic", func(t *testing.T) {
		t.Parallel()

		sig, err := signature.ForFunc(func(head int, rest ...int) {}, "head", "rest")
		require.NoError(t, err)

		assert.True(t, sig.IsVariadic())
	})

	t.Run("not a function", func(t *testing.T) {
		t.Parallel()

		_, err := signature.ForFunc(42, "x")
		assert.ErrorIs(t, err, signature.ErrNotAFunction)

		_, err = signature.ForFunc(nil)
		assert.ErrorIs(t, err, signature.ErrNotAFunction)
	})

	t.Run("arity mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := signature.ForFunc(func(a, b int) {}, "a")
		assert.ErrorIs(t, err, signature.ErrParamCount)
	})

	t.Run("duplicate names", func(t *testing.T) {
		t.Parallel()

		_, err := signature.ForFunc(func(a, b int) {}, "a", "a")
		assert.ErrorIs(t, err, signature.ErrDuplicateParam)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := signature.ForFunc(func(a int) {}, "")
		assert.ErrorIs(t, err, signature.ErrEmptyParamName)
	})
}

func TestWithDefault(t *testing.T) {
	t.Parallel()

	sig, err := signature.ForFunc(func(a, b int) {}, "a", "b")
	require.NoError(t, err)

	derived, err := sig.WithDefault("b", 7)
	require.NoError(t, err)

	p, ok := derived.Param("b")
	require.True(t, ok)
	assert.True(t, p.HasDefault)
	assert.Equal(t, 7, p.Default)

	// The original signature is untouched.
	p, _ = sig.Param("b")
	assert.False(t, p.HasDefault)

	_, err = sig.WithDefault("nope", 1)
	assert.ErrorIs(t, err, signature.ErrUnknownParam)
}

func TestTail(t *testing.T) {
	t.Parallel()

	sig, err := signature.ForFunc(func(self, x int) {}, "self", "x")
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, sig.Tail().Names())
	assert.Equal(t, 0, signature.Signature{}.Tail().Len())
}

func TestArgs_OrderAndUpdate(t *testing.T) {
	t.Parallel()

	args := signature.NewArgs().Set("b", 1).Set("a", 2)
	args.Set("b", 3) // update in place, order kept

	assert.Equal(t, []string{"b", "a"}, args.Names())

	v, ok := args.Get("b")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	clone := args.Clone()
	clone.Set("c", 4)

	assert.Equal(t, 2, args.Len())
	assert.Equal(t, 3, clone.Len())
}

func TestArgs_NilSafety(t *testing.T) {
	t.Parallel()

	var args *signature.Args

	assert.Equal(t, 0, args.Len())
	assert.Nil(t, args.Names())
	assert.False(t, args.Has("x"))
	assert.Equal(t, 0, args.Clone().Len())
}
