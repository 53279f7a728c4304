package specfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interpose/specfile"
)

func TestParse(t *testing.T) {
	t.Parallel()

	data := `
version: "1"
wrap:
  - methods: add
    args:
      x: Increment
  - methods: [add, multiply]
    args:
      x: Double
    output: Stringify
`

	f, err := specfile.Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Groups, 2)

	assert.Equal(t, specfile.StringOrArray{"add"}, f.Groups[0].Methods,
		"scalar form decodes as a one-element array")
	assert.Equal(t, map[string]string{"x": "Increment"}, f.Groups[0].Args)
	assert.Empty(t, f.Groups[0].Output)

	assert.Equal(t, specfile.StringOrArray{"add", "multiply"}, f.Groups[1].Methods)
	assert.Equal(t, "add", f.Groups[1].Methods.First())
	assert.True(t, f.Groups[1].Methods.Contains("multiply"))
	assert.Equal(t, "Stringify", f.Groups[1].Output)
}

func TestParse_VersionDefaults(t *testing.T) {
	t.Parallel()

	f, err := specfile.Parse([]byte("wrap:\n  - methods: add\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := specfile.Parse([]byte("wrap:\n  - methods: {bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse spec YAML")
}

func TestParse_RejectsBadMethodsShape(t *testing.T) {
	t.Parallel()

	_, err := specfile.Parse([]byte("wrap:\n  - methods: {a: b}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string or array")
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	f := &specfile.File{
		Version: "1",
		Groups: []specfile.Group{
			{Methods: specfile.StringOrArray{"add"}, Args: map[string]string{"x": "Increment"}},
			{Methods: specfile.StringOrArray{"add", "multiply"}, Output: "Stringify"},
		},
	}

	data, err := specfile.Marshal(f)
	require.NoError(t, err)

	assert.Contains(t, string(data), "methods: add\n",
		"single method marshals back to scalar form")

	back, err := specfile.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}
