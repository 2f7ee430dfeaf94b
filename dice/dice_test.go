package dice

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koykov/distrib"
)

// TestRollDiceReturnsResults ensures roll results are deterministic and aggregated.
func TestRollDiceReturnsResults(t *testing.T) {
	draws := []float64{0, .5, .99}
	var i int
	p := distrib.New(distrib.SourceFunc(func() float64 {
		x := draws[i%len(draws)]
		i++
		return x
	}))
	result, err := RollDice(p, Spec{Sides: 12, Count: 2}, Spec{Sides: 6, Count: 1})
	require.NoError(t, err)
	want := Result{
		Rolls: []Roll{
			{Sides: 12, Results: []int{1, 7}, Total: 8},
			{Sides: 6, Results: []int{6}, Total: 6},
		},
		Total: 14,
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("unexpected result (-want +got):\n%s", diff)
	}
}

// TestRollDiceDeterministic ensures the same seed gives the same rolls.
func TestRollDiceDeterministic(t *testing.T) {
	specs := []Spec{{Sides: 6, Count: 4}, {Sides: 20, Count: 3}}
	a, err := RollDice(distrib.New(distrib.NewLCG(99)), specs...)
	require.NoError(t, err)
	b, err := RollDice(distrib.New(distrib.NewLCG(99)), specs...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	for _, roll := range a.Rolls {
		for _, v := range roll.Results {
			assert.True(t, v >= 1 && v <= roll.Sides, "value %d out of d%d", v, roll.Sides)
		}
	}
}

func TestRollDiceErrors(t *testing.T) {
	p := distrib.New(distrib.NewLCG(1))
	_, err := RollDice(p)
	assert.ErrorIs(t, err, ErrMissingDice)

	tcs := []Spec{
		{Sides: 0, Count: 2},
		{Sides: -1, Count: 2},
		{Sides: 6, Count: 0},
		{Sides: 6, Count: -1},
		{Sides: 6, Count: MaxCount + 1},
		{Sides: 6, Count: 1 << 62},
		{Sides: MaxSides + 1, Count: 1},
	}
	for _, tc := range tcs {
		_, err := RollDice(p, Spec{Sides: 6, Count: 1}, tc)
		if !errors.Is(err, ErrInvalidDiceSpec) {
			t.Fatalf("RollDice(%+v) error = %v, want %v", tc, err, ErrInvalidDiceSpec)
		}
	}
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Spec
		wantErr error
	}{
		{"regular", "2d6", Spec{Sides: 6, Count: 2}, nil},
		{"single", "d20", Spec{Sides: 20, Count: 1}, nil},
		{"upper and spaces", " 3D8 ", Spec{Sides: 8, Count: 3}, nil},
		{"no d", "26", Spec{}, ErrBadNotation},
		{"bad count", "xd6", Spec{}, ErrBadNotation},
		{"bad sides", "2d", Spec{}, ErrBadNotation},
		{"zero sides", "2d0", Spec{}, ErrInvalidDiceSpec},
		{"zero count", "0d6", Spec{}, ErrInvalidDiceSpec},
		{"max count", "1000d6", Spec{Sides: 6, Count: MaxCount}, nil},
		{"max sides", "d1000000", Spec{Sides: MaxSides, Count: 1}, nil},
		{"count above max", "1001d6", Spec{}, ErrInvalidDiceSpec},
		{"huge count", "4611686018427387904d6", Spec{}, ErrInvalidDiceSpec},
		{"sides above max", "2d1000001", Spec{}, ErrInvalidDiceSpec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpec(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func TestParseSpecs(t *testing.T) {
	specs, err := ParseSpecs("2d6,1d8, d4")
	require.NoError(t, err)
	assert.Equal(t, []Spec{{6, 2}, {8, 1}, {4, 1}}, specs)

	_, err = ParseSpecs("2d6,,1d8")
	assert.ErrorIs(t, err, ErrBadNotation)

	_, err = ParseSpecs(strings.Repeat("d6,", MaxSpecs) + "d6")
	assert.ErrorIs(t, err, ErrTooManySpecs)
}

func TestRollDiceLimits(t *testing.T) {
	p := distrib.New(distrib.NewLCG(1))
	result, err := RollDice(p, Spec{Sides: 6, Count: MaxCount})
	require.NoError(t, err)
	assert.Len(t, result.Rolls[0].Results, MaxCount)

	specs := make([]Spec, MaxSpecs+1)
	for i := range specs {
		specs[i] = Spec{Sides: 6, Count: 1}
	}
	_, err = RollDice(p, specs...)
	assert.ErrorIs(t, err, ErrTooManySpecs)
	_, err = RollDice(p, specs[:MaxSpecs]...)
	assert.NoError(t, err)
}

func mustParse(t *testing.T, s string) Spec {
	t.Helper()
	spec, err := ParseSpec(s)
	require.NoError(t, err)
	return spec
}
