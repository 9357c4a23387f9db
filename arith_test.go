package surreal_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/surreal"
	"github.com/roach88/surreal/internal/testutil"
)

func TestAdd_Laws(t *testing.T) {
	u := surreal.NewUniverse()
	v := testutil.DayGen(t, u, 4)
	zero := u.Zero()

	for _, x := range v {
		assert.True(t, x.Add(zero).Eq(x), "%s + 0", x)

		for _, y := range v {
			assert.True(t, x.Add(y).Eq(y.Add(x)), "%s + %s commutes", x, y)
		}
	}
}

func TestAdd_Associative(t *testing.T) {
	u := surreal.NewUniverse()
	v := testutil.DayGen(t, u, 3)

	for _, x := range v {
		for _, y := range v {
			for _, z := range v {
				assert.True(t, x.Add(y).Add(z).Eq(x.Add(y.Add(z))),
					"(%s + %s) + %s", x, y, z)
			}
		}
	}
}

func TestNeg_Laws(t *testing.T) {
	u := surreal.NewUniverse()
	v := testutil.DayGen(t, u, 4)
	zero := u.Zero()

	for _, x := range v {
		assert.True(t, x.Sub(x).Eq(zero), "%s - itself", x)
		assert.True(t, x.Neg().Neg().Eq(x), "-(-%s)", x)

		for _, y := range v {
			assert.True(t, x.Add(y).Sub(y).Eq(x), "(%s + %s) - %s", x, y, y)
			assert.True(t, x.Add(y).Neg().Eq(x.Neg().Add(y.Neg())), "-(%s + %s)", x, y)
		}
	}
}

func TestMul_Laws(t *testing.T) {
	u := surreal.NewUniverse()
	v := testutil.DayGen(t, u, 3)
	zero := u.Zero()
	one := u.One()

	for _, x := range v {
		assert.True(t, x.Mul(zero).Eq(zero), "%s * 0", x)
		assert.True(t, x.Mul(one).Eq(x), "%s * 1", x)

		for _, y := range v {
			assert.True(t, x.Mul(y).Eq(y.Mul(x)), "%s * %s commutes", x, y)
			assert.True(t, x.Mul(y).Neg().Eq(x.Neg().Mul(y)), "-(%s * %s)", x, y)
		}
	}
}

func TestArith_Scenarios(t *testing.T) {
	u := surreal.NewUniverse()
	zero := u.Zero()
	one := u.One()
	negOne := testutil.MustNew(t, u, nil, []surreal.Number{zero})

	assert.True(t, one.Add(one.Neg()).Eq(zero), "1 + (-1)")
	assert.True(t, negOne.Add(one).Eq(zero), "-1 + 1")
	assert.True(t, one.Mul(one).Eq(one), "1 * 1")
	assert.True(t, negOne.Mul(negOne).Eq(one), "-1 * -1")
}

func TestRem(t *testing.T) {
	u := surreal.NewUniverse()
	one := u.One()
	two := one.Add(one)
	three := two.Add(one)
	five := three.Add(two)

	assert.True(t, five.Rem(two).Eq(one), "5 %% 2")
	assert.True(t, five.Rem(three).Eq(two), "5 %% 3")
	assert.True(t, two.Rem(three).Eq(two), "2 %% 3 leaves the dividend")
	assert.True(t, three.Rem(one).Eq(u.Zero()), "3 %% 1")
}

func TestRemChecked_RejectsNonPositiveDivisor(t *testing.T) {
	u := surreal.NewUniverse()
	one := u.One()

	_, err := one.RemChecked(u.Zero())
	require.Error(t, err)
	assert.True(t, surreal.IsDivisorError(err))

	_, err = one.RemChecked(one.Neg())
	require.Error(t, err)
	assert.True(t, surreal.IsDivisorError(err))

	got, err := one.Add(one).RemChecked(one)
	require.NoError(t, err)
	assert.True(t, got.Eq(u.Zero()))
}

func TestArith_ReferentialTransparency(t *testing.T) {
	u := surreal.NewUniverse()
	half := testutil.MustNew(t, u, []surreal.Number{u.Zero()}, []surreal.Number{u.One()})
	one := u.One()

	// Identifier-equal operands must produce identifier-equal results on
	// every call: memoization is observably transparent.
	first := half.Add(one)
	second := half.Add(one)
	assert.Equal(t, first.ID(), second.ID())

	assert.Equal(t, half.Mul(one).ID(), half.Mul(one).ID())
	assert.Equal(t, half.Neg().ID(), half.Neg().ID())
}

func TestArith_ConcurrentSameOperands(t *testing.T) {
	u := surreal.NewUniverse()
	v := testutil.DayGen(t, u, 3)

	// Hammer the same operand pairs from several goroutines; races on memo
	// entries must still converge on identical IDs.
	const workers = 8
	results := make([][]surreal.ID, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for _, x := range v {
				for _, y := range v {
					results[w] = append(results[w], x.Add(y).ID(), x.Mul(y).ID())
				}
			}
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		assert.Equal(t, results[0], results[w], "worker %d diverged", w)
	}
}

func TestDivApprox(t *testing.T) {
	u := surreal.NewUniverse()
	one := u.One()
	two := one.Add(one)
	three := two.Add(one)

	assert.Equal(t, 1.5, three.DivApprox(two).Float())
	assert.Equal(t, 0.5, one.DivApprox(two).Float())
}
