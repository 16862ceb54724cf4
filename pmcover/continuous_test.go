package pmcover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/telecast/pmcover"
)

func continuousFixture() *pmcover.Instance {
	return newInstance(map[pmcover.Key][]string{
		{A: "a", C: "1"}: {"1", "2", "3"},
		{A: "a", C: "2"}: {"3", "4"},
		{A: "b", C: "3"}: {"4", "5"},
		{A: "b", C: "4"}: {"1"},
	}, map[string]int{"a": 1, "b": 1})
}

// TestContinuous_SeedDeterminism: a fixed seed reproduces the exact
// selection; the zero seed maps to a stable default.
func TestContinuous_SeedDeterminism(t *testing.T) {
	inst := continuousFixture()

	a, err := pmcover.Continuous(inst, 4, pmcover.WithSeed(7))
	require.NoError(t, err)
	b, err := pmcover.Continuous(inst, 4, pmcover.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a, b)

	z1, err := pmcover.Continuous(inst, 4)
	require.NoError(t, err)
	z2, err := pmcover.Continuous(inst, 4, pmcover.WithSeed(0))
	require.NoError(t, err)
	require.Equal(t, z1, z2)
}

// TestContinuous_BudgetRespect: no source exceeds its budget, and
// zero-budget sources are never selected.
func TestContinuous_BudgetRespect(t *testing.T) {
	inst := newInstance(map[pmcover.Key][]string{
		{A: "a", C: "1"}: {"1"},
		{A: "b", C: "2"}: {"2"},
		{A: "b", C: "3"}: {"3"},
	}, map[string]int{"a": 0, "b": 1})

	sel, err := pmcover.Continuous(inst, 3, pmcover.WithSeed(3), pmcover.WithIterations(10), pmcover.WithSamples(5))
	require.NoError(t, err)

	perSource := map[string]int{}
	for _, key := range sel {
		perSource[key.A]++
	}
	require.Zero(t, perSource["a"])
	require.LessOrEqual(t, perSource["b"], 1)
}

// TestContinuous_CoversEasyInstance: with ample iterations the rounding
// covers kRem on an instance where every key is needed.
func TestContinuous_CoversEasyInstance(t *testing.T) {
	inst := newInstance(map[pmcover.Key][]string{
		{A: "a", C: "1"}: {"1", "2"},
		{A: "b", C: "2"}: {"3", "4"},
	}, map[string]int{"a": 1, "b": 1})

	sel, err := pmcover.Continuous(inst, 4, pmcover.WithSeed(1), pmcover.WithIterations(20), pmcover.WithSamples(10))
	require.NoError(t, err)
	require.Equal(t, 4, pmcover.Covered(sel, inst))
}

// TestContinuous_OptionValidation rejects non-positive tunables.
func TestContinuous_OptionValidation(t *testing.T) {
	inst := continuousFixture()

	_, err := pmcover.Continuous(inst, 1, pmcover.WithIterations(0))
	require.ErrorIs(t, err, pmcover.ErrOptionViolation)

	_, err = pmcover.Continuous(inst, 1, pmcover.WithSamples(-5))
	require.ErrorIs(t, err, pmcover.ErrOptionViolation)
}

// TestContinuous_ZeroRemaining selects nothing when kRem ≤ 0.
func TestContinuous_ZeroRemaining(t *testing.T) {
	inst := continuousFixture()

	sel, err := pmcover.Continuous(inst, 0, pmcover.WithSeed(2), pmcover.WithIterations(5), pmcover.WithSamples(2))
	require.NoError(t, err)
	require.NotNil(t, sel)
	require.Empty(t, sel)
}
