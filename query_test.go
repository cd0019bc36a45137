package tinyargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValue_UnknownName(t *testing.T) {
	p := New()
	p.Add("-n", "--name", Value, false, "Name to greet")

	val, ok := p.GetValue("--nope")
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestGetValue_FlagHasNoValue(t *testing.T) {
	p := New()
	p.Add("-v", "--verbose", Flag, false, "Enable verbose output")
	require.NoError(t, p.Parse([]string{"-v"}))

	_, ok := p.GetValue("-v")
	assert.False(t, ok)
}

func TestGetValue_EmptyStringValue(t *testing.T) {
	p := New()
	p.Add("-n", "--name", Value, false, "Name to greet")
	require.NoError(t, p.Parse([]string{"--name", ""}))

	val, ok := p.GetValue("--name")
	assert.True(t, ok, "An empty string is still a supplied value")
	assert.Empty(t, val)
	assert.True(t, p.Has("--name"))
}

func TestIsFlagSet_UnknownName(t *testing.T) {
	p := New()
	assert.False(t, p.IsFlagSet("--anything"))
}

func TestHas(t *testing.T) {
	p := New()
	p.Add("-v", "--verbose", Flag, false, "Enable verbose output")
	p.Add("-n", "--name", Value, false, "Name to greet")
	p.Add("-o", "--output", Value, false, "Output path")
	require.NoError(t, p.Parse([]string{"--name", "Alice"}))

	assert.False(t, p.Has("--verbose"), "Unset flag")
	assert.True(t, p.Has("-n"), "Value option with a value")
	assert.False(t, p.Has("--output"), "Unset value option")
	assert.False(t, p.Has("--nope"), "Unknown name")
}
