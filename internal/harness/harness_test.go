package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64p(f float64) *float64 { return &f }

func TestRunBindsDefsInOrder(t *testing.T) {
	s := &Scenario{
		Name: "bindings",
		Defs: []Def{
			{Name: "zero", Construct: &Construct{}},
			{Name: "one", Construct: &Construct{Left: []string{"zero"}}},
			{Name: "two", Op: &Op{Kind: "add", Args: []string{"one", "one"}}},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	require.Len(t, result.Bindings, 3)
	assert.Equal(t, Binding{Name: "zero", Structure: "< | >", Value: 0}, result.Bindings[0])
	assert.Equal(t, Binding{Name: "one", Structure: "< 0 | >", Value: 1}, result.Bindings[1])
	assert.Equal(t, Binding{Name: "two", Structure: "< 1 1 | >", Value: 2}, result.Bindings[2])
	assert.True(t, result.Passed())
}

func TestRunOps(t *testing.T) {
	s := &Scenario{
		Name: "ops",
		Defs: []Def{
			{Name: "zero", Construct: &Construct{}},
			{Name: "one", Construct: &Construct{Left: []string{"zero"}}},
			{Name: "three", FromFloat: float64p(3)},
			{Name: "diff", Op: &Op{Kind: "sub", Args: []string{"three", "one"}}},
			{Name: "neg", Op: &Op{Kind: "neg", Args: []string{"one"}}},
			{Name: "prod", Op: &Op{Kind: "mul", Args: []string{"one", "three"}}},
			{Name: "rest", Op: &Op{Kind: "rem", Args: []string{"three", "one"}}},
		},
		Asserts: []Assert{
			{Kind: "float", Args: []string{"diff"}, Value: float64p(2)},
			{Kind: "float", Args: []string{"neg"}, Value: float64p(-1)},
			{Kind: "float", Args: []string{"prod"}, Value: float64p(3)},
			{Kind: "float", Args: []string{"rest"}, Value: float64p(0)},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Passed(), "failures: %v", result.Failures)
}

func TestRunAssertFailureIsNotAnError(t *testing.T) {
	s := &Scenario{
		Name: "failing",
		Defs: []Def{
			{Name: "zero", Construct: &Construct{}},
			{Name: "one", Construct: &Construct{Left: []string{"zero"}}},
		},
		Asserts: []Assert{
			{Kind: "lt", Args: []string{"one", "zero"}},
			{Kind: "leq", Args: []string{"zero", "one"}},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Asserts)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "not below")
	assert.False(t, result.Passed())
}

func TestRunMalformedAssert(t *testing.T) {
	s := &Scenario{
		Name: "malformed",
		Defs: []Def{
			{Name: "zero", Construct: &Construct{}},
			{Name: "one", Construct: &Construct{Left: []string{"zero"}}},
		},
		Asserts: []Assert{
			{Kind: "malformed", Construct: &Construct{Left: []string{"one"}, Right: []string{"zero"}}},
			// A well-formed pair must not satisfy a malformed assert.
			{Kind: "malformed", Construct: &Construct{Left: []string{"zero"}, Right: []string{"one"}}},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "not rejected")
}

func TestRunUnknownReferenceIsAnError(t *testing.T) {
	s := &Scenario{
		Name: "broken",
		Defs: []Def{
			{Name: "x", Op: &Op{Kind: "add", Args: []string{"missing", "missing"}}},
		},
	}

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown name "missing"`)
}

func TestRunRejectedConstructIsAnError(t *testing.T) {
	s := &Scenario{
		Name: "rejected",
		Defs: []Def{
			{Name: "zero", Construct: &Construct{}},
			{Name: "one", Construct: &Construct{Left: []string{"zero"}}},
			{Name: "bad", Construct: &Construct{Left: []string{"one"}, Right: []string{"zero"}}},
		},
	}

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "def bad")
}

func TestRunRemByZeroIsAnError(t *testing.T) {
	s := &Scenario{
		Name: "rem_zero",
		Defs: []Def{
			{Name: "zero", Construct: &Construct{}},
			{Name: "one", Construct: &Construct{Left: []string{"zero"}}},
			{Name: "bad", Op: &Op{Kind: "rem", Args: []string{"one", "zero"}}},
		},
	}

	_, err := Run(s)
	require.Error(t, err)
}

func TestSnapshotFormat(t *testing.T) {
	r := &Result{
		Scenario: "demo",
		Bindings: []Binding{
			{Name: "half", Structure: "< 0 | 1 >", Value: 0.5},
		},
		Asserts:  3,
		Failures: []string{"assert 2 (eq): mismatch"},
	}

	want := "scenario: demo\nhalf = < 0 | 1 > = 0.5\nasserts: 2 passed, 1 failed\n"
	assert.Equal(t, want, string(Snapshot(r)))
}
