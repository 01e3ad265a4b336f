package symbolic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindAndValue(t *testing.T) {
	env := NewEnvironment().Bind("batch", 8)
	v, ok := env.Value("batch")
	require.True(t, ok)
	require.Equal(t, 8, v)
}

func TestDefineLeavesUnbound(t *testing.T) {
	env := NewEnvironment().Define("seq")
	require.False(t, env.IsBound("seq"))
	_, ok := env.Value("seq")
	require.False(t, ok, "Value should report unknown for a defined-but-unbound name")
}

func TestUnknownNameIsUnbound(t *testing.T) {
	env := NewEnvironment()
	require.False(t, env.IsBound("nope"))
}
