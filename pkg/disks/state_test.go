package disks_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/errors"
)

func TestNew_Alternating(t *testing.T) {
	for k := 1; k <= 12; k++ {
		s, err := disks.New(k)
		require.NoError(t, err)

		assert.Equal(t, 2*k, s.TotalCount())
		assert.Equal(t, k, s.LightCount())
		assert.Equal(t, k, s.DarkCount())

		lights, darks := 0, 0
		for i := 0; i < s.TotalCount(); i++ {
			if s.Get(i) == disks.Light {
				lights++
			} else {
				darks++
			}
		}
		assert.Equal(t, k, lights, "k=%d light disks", k)
		assert.Equal(t, k, darks, "k=%d dark disks", k)

		assert.True(t, s.IsAlternating(), "fresh row must be alternating (k=%d)", k)
		assert.False(t, s.IsSorted(), "fresh row must not be sorted (k=%d)", k)
	}
}

func TestNew_InvalidLightCount(t *testing.T) {
	for _, k := range []int{0, -1} {
		_, err := disks.New(k)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidLightCount))
	}
	assert.Panics(t, func() { disks.MustNew(0) })
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "D L", disks.MustNew(1).String())
	assert.Equal(t, "D L D L D L", disks.MustNew(3).String())
	assert.Equal(t, "", disks.State{}.String())
}

func TestState_IsIndex(t *testing.T) {
	s := disks.MustNew(2)
	assert.False(t, s.IsIndex(-1))
	assert.True(t, s.IsIndex(0))
	assert.True(t, s.IsIndex(3))
	assert.False(t, s.IsIndex(4))
}

func TestState_GetOutOfRangePanics(t *testing.T) {
	s := disks.MustNew(2)
	assert.Panics(t, func() { s.Get(4) })
	assert.Panics(t, func() { s.Get(-1) })
}

func TestState_Swap(t *testing.T) {
	s := disks.MustNew(2)
	s.Swap(0)
	assert.Equal(t, "L D D L", s.String())
	s.Swap(2)
	assert.Equal(t, "L D L D", s.String())

	// The last index has no right neighbour.
	assert.Panics(t, func() { s.Swap(3) })
	assert.Panics(t, func() { s.Swap(-1) })
}

func TestState_CloneIsIndependent(t *testing.T) {
	orig := disks.MustNew(3)
	cp := orig.Clone()
	cp.Swap(0)

	assert.Equal(t, "D L D L D L", orig.String())
	assert.Equal(t, "L D D L D L", cp.String())
	assert.False(t, orig.Equal(cp))
}

func TestState_Equal(t *testing.T) {
	assert.True(t, disks.MustNew(3).Equal(disks.MustNew(3)))
	assert.True(t, disks.MustNew(2).Equal(disks.MustParse("D L D L")))
	assert.False(t, disks.MustNew(2).Equal(disks.MustParse("L L D D")))

	// Different lengths are never equal, even on a shared prefix.
	assert.False(t, disks.MustNew(2).Equal(disks.MustNew(3)))
	assert.False(t, disks.MustNew(1).Equal(disks.State{}))
}

func TestState_Predicates(t *testing.T) {
	tests := []struct {
		row         string
		alternating bool
		sorted      bool
	}{
		{"D L", true, false},
		{"L D", false, true},
		{"D L D L D L", true, false},
		{"L L L D D D", false, true},
		{"L D L D", false, false},
		{"D D L L", false, false},
		{"L L D D", false, true},
		{"D L D L L D", false, false},
		// Palindrome-style rows must not pass as alternating.
		{"D L L D", false, false},
		// A misplaced pair straddling the midpoint.
		{"L L D L D D", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.row, func(t *testing.T) {
			s := disks.MustParse(tt.row)
			assert.Equal(t, tt.alternating, s.IsAlternating(), "IsAlternating")
			assert.Equal(t, tt.sorted, s.IsSorted(), "IsSorted")
		})
	}
}

func TestState_Inversions(t *testing.T) {
	assert.Equal(t, 0, disks.MustParse("L L D D").Inversions())
	assert.Equal(t, 1, disks.MustNew(1).Inversions())
	assert.Equal(t, 6, disks.MustNew(3).Inversions())
	assert.Equal(t, 4, disks.MustParse("D D L L").Inversions())
	for k := 1; k <= 20; k++ {
		assert.Equal(t, k*(k+1)/2, disks.MustNew(k).Inversions(), "k=%d", k)
	}
}

func TestState_Colors(t *testing.T) {
	s := disks.MustNew(1)
	c := s.Colors()
	assert.Equal(t, []disks.Color{disks.Dark, disks.Light}, c)

	c[0] = disks.Light
	assert.Equal(t, disks.Dark, s.Get(0), "Colors must return a copy")
}

func TestState_JSON(t *testing.T) {
	type wrapper struct {
		Row disks.State `json:"row"`
	}

	data, err := json.Marshal(wrapper{Row: disks.MustNew(2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"row":"D L D L"}`, string(data))

	var got wrapper
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.Row.Equal(disks.MustNew(2)))

	err = json.Unmarshal([]byte(`{"row":"D D D L"}`), &got)
	assert.Error(t, err)
}
