package symbolic

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomlx/tensorshape/shape"
)

func TestResolveSubstitutesKnownBindings(t *testing.T) {
	env := NewEnvironment().Bind("batch", 8).Bind("channels", 3)
	res, err := env.Resolve([]string{"batch", "224", "224", "channels"}, true)
	require.NoError(t, err)
	require.Equal(t, []int{8, 224, 224, 3}, res.Dims)
	require.True(t, res.Resolved)
}

func TestEqPropagatesBindingToUnboundDim(t *testing.T) {
	env := NewEnvironment().Bind("a", 4).Eq("a", "b")
	res, err := env.Resolve([]string{"b"}, true)
	require.NoError(t, err)
	require.Equal(t, []int{4}, res.Dims)
}

func TestEqPropagatesThroughChain(t *testing.T) {
	env := NewEnvironment().Bind("a", 5).Eq("a", "b").Eq("b", "c")
	res, err := env.Resolve([]string{"c"}, true)
	require.NoError(t, err)
	require.Equal(t, 5, res.Dims[0])
}

func TestValidateCatchesConflictingConstraint(t *testing.T) {
	env := NewEnvironment().Bind("a", 4).Bind("b", 5).Eq("a", "b")
	_, err := env.Resolve([]string{"a", "b"}, true)
	require.Equal(t, shape.ConstraintViolation, shape.ClassifierOf(err))
}

func TestStrictModeFailsOnUnresolvedAxis(t *testing.T) {
	env := NewEnvironment()
	_, err := env.Resolve([]string{"unbound"}, true)
	require.Equal(t, shape.UnresolvedDim, shape.ClassifierOf(err))
}

func TestNonStrictModeReturnsPartialWithWarnings(t *testing.T) {
	env := NewEnvironment().Bind("a", 4)
	res, err := env.Resolve([]string{"a", "unbound"}, false)
	require.NoError(t, err)
	require.False(t, res.Resolved)
	require.Equal(t, []string{"unbound"}, res.Warnings)
	require.Equal(t, -1, res.Dims[1])
}

func TestPropagateConvergesWithinBoundForLongChain(t *testing.T) {
	env := NewEnvironment().Bind("x0", 7)
	for i := 0; i < 50; i++ {
		env = env.Eq(sym(i), sym(i+1))
	}
	res, err := env.Resolve([]string{sym(50)}, true)
	require.NoError(t, err)
	require.Equal(t, 7, res.Dims[0])
}

func sym(i int) string {
	return "x" + strconv.Itoa(i)
}

func TestEqConstraintAgainstLiteral(t *testing.T) {
	env := NewEnvironment().Eq("a", "10")
	res, err := env.Resolve([]string{"a"}, true)
	require.NoError(t, err)
	require.Equal(t, 10, res.Dims[0])
}
