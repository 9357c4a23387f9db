package surreal_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/roach88/surreal"
	"github.com/roach88/surreal/internal/testutil"
)

func TestString_KnownRenderings(t *testing.T) {
	u := surreal.NewUniverse()
	zero := u.Zero()
	one := u.One()

	assert.Equal(t, "< | >", zero.String())
	assert.Equal(t, "< 0 | >", one.String())

	half := testutil.MustNew(t, u, []surreal.Number{zero}, []surreal.Number{one})
	assert.Equal(t, "< 0 | 1 >", half.String())
}

func TestString_ZeroValueHandle(t *testing.T) {
	var x surreal.Number
	assert.Equal(t, "<invalid Number>", x.String())
}

func TestString_Golden(t *testing.T) {
	u := surreal.NewUniverse()
	zero := u.Zero()
	one := u.One()
	negOne := testutil.MustNew(t, u, nil, []surreal.Number{zero})
	half := testutil.MustNew(t, u, []surreal.Number{zero}, []surreal.Number{one})

	entries := []struct {
		name string
		num  surreal.Number
	}{
		{"zero", zero},
		{"one", one},
		{"neg_one", negOne},
		{"two", one.Add(one)},
		{"half", half},
		{"neg_half", half.Neg()},
		{"three_quarters", testutil.MustNew(t, u, []surreal.Number{half}, []surreal.Number{one})},
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s = %s\n", e.name, e.num)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "renderings", []byte(b.String()))
}
