package signature_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interpose/signature"
)

func mulSig(t *testing.T) signature.Signature {
	t.Helper()

	sig, err := signature.ForFunc(
		func(a, b, c int) int { return a * (b + c) },
		"a", "b", "c",
	)
	require.NoError(t, err)

	sig, err = sig.WithDefault("c", 3)
	require.NoError(t, err)

	return sig
}

func ExampleMerge() {
	sig, _ := signature.New(
		signature.Param{Name: "a"},
		signature.Param{Name: "b"},
		signature.Param{Name: "c", Default: 3, HasDefault: true},
	)

	merged, _ := signature.Merge(sig, []any{1}, signature.NewArgs().Set("b", 10))
	fmt.Println(merged.Pairs())

	merged, _ = signature.Merge(sig, nil, signature.NewArgs().Set("a", 1).Set("b", 10))
	fmt.Println(merged.Pairs())

	merged, _ = signature.Merge(sig, []any{1, 10}, nil)
	fmt.Println(merged.Pairs())

	merged, _ = signature.Merge(sig, nil, nil)
	fmt.Println(merged.Len())

	// Output:
	// [{a 1} {b 10} {c 3}]
	// [{a 1} {b 10}]
	// [{a 1} {b 10} {c 3}]
	// 0
}

func TestMerge_FastPathIsIdentity(t *testing.T) {
	t.Parallel()

	sig := mulSig(t)

	// Deliberately not in declaration order.
	named := signature.NewArgs().Set("b", 2).Set("a", 1)

	merged, err := signature.Merge(sig, nil, named)
	require.NoError(t, err)

	assert.Same(t, named, merged)
	assert.Equal(t, []string{"b", "a"}, merged.Names())
}

func TestMerge_BindingFollowsDeclarationOrder(t *testing.T) {
	t.Parallel()

	sig := mulSig(t)

	merged, err := signature.Merge(sig, []any{1}, signature.NewArgs().Set("b", 2))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, merged.Names())

	c, ok := merged.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, c)
}

func TestMerge_PartialBindingLeavesParamsAbsent(t *testing.T) {
	t.Parallel()

	sig := mulSig(t)

	merged, err := signature.Merge(sig, []any{1}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c"}, merged.Names())
	assert.False(t, merged.Has("b"))
}

func TestMerge_Errors(t *testing.T) {
	t.Parallel()

	sig := mulSig(t)

	t.Run("too many positionals", func(t *testing.T) {
		t.Parallel()

		_, err := signature.Merge(sig, []any{1, 2, 3, 4}, nil)
		assert.ErrorIs(t, err, signature.ErrTooManyArgs)
	})

	t.Run("positional and named collide", func(t *testing.T) {
		t.Parallel()

		_, err := signature.Merge(sig, []any{1}, signature.NewArgs().Set("a", 5))
		assert.ErrorIs(t, err, signature.ErrDuplicateArg)
	})

	t.Run("unknown named argument", func(t *testing.T) {
		t.Parallel()

		_, err := signature.Merge(sig, []any{1}, signature.NewArgs().Set("nope", 5))
		assert.ErrorIs(t, err, signature.ErrUnknownArg)
	})
}

func TestMerge_Variadic(t *testing.T) {
	t.Parallel()

	sig, err := signature.ForFunc(
		func(sep string, parts ...string) string { return "" },
		"sep", "parts",
	)
	require.NoError(t, err)

	merged, err := signature.Merge(sig, []any{"-", "x", "y", "z"}, nil)
	require.NoError(t, err)

	parts, ok := merged.Get("parts")
	require.True(t, ok)
	assert.Equal(t, []any{"x", "y", "z"}, parts)

	// Not enough positionals to reach the variadic slot: it stays absent.
	merged, err = signature.Merge(sig, []any{"-"}, nil)
	require.NoError(t, err)
	assert.False(t, merged.Has("parts"))
}
