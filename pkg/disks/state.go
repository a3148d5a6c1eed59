package disks

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/disksort/pkg/errors"
)

// =============================================================================
// Color
// =============================================================================

// Color is the color of a single disk.
type Color uint8

const (
	// Light disks belong in the left half of a sorted row.
	Light Color = iota
	// Dark disks belong in the right half of a sorted row.
	Dark
)

// String returns the single-letter rendering used in row strings.
func (c Color) String() string {
	if c == Light {
		return "L"
	}
	return "D"
}

// =============================================================================
// State - Row of Disks
// =============================================================================

// State is an ordered row of disks.
//
// State wraps a slice, so plain assignment shares the underlying disks.
// Use [State.Clone] to obtain an independent copy before mutating a row
// that someone else may still hold.
type State struct {
	colors []Color
}

// New returns a row of 2*lightCount disks in alternating form, dark first.
// lightCount must be at least 1.
func New(lightCount int) (State, error) {
	if lightCount < 1 {
		return State{}, errors.New(errors.ErrCodeInvalidLightCount,
			"light count must be at least 1, got %d", lightCount)
	}
	colors := make([]Color, 2*lightCount)
	for i := range colors {
		colors[i] = expectedAlternating(i)
	}
	return State{colors: colors}, nil
}

// MustNew is like New but panics if lightCount is invalid.
func MustNew(lightCount int) State {
	s, err := New(lightCount)
	if err != nil {
		panic(err)
	}
	return s
}

// TotalCount returns the number of disks in the row.
func (s State) TotalCount() int {
	return len(s.colors)
}

// LightCount returns the number of light disks, always half the row.
func (s State) LightCount() int {
	return s.TotalCount() / 2
}

// DarkCount returns the number of dark disks, always half the row.
func (s State) DarkCount() int {
	return s.LightCount()
}

// IsIndex reports whether i addresses a disk in the row.
func (s State) IsIndex(i int) bool {
	return i >= 0 && i < s.TotalCount()
}

// Get returns the color of the disk at index i.
// It panics if i is not a valid index.
func (s State) Get(i int) Color {
	if !s.IsIndex(i) {
		panic(fmt.Sprintf("disks: index %d out of range [0,%d)", i, s.TotalCount()))
	}
	return s.colors[i]
}

// Swap exchanges the disks at indices i and i+1.
// It panics unless both indices are valid.
func (s *State) Swap(i int) {
	if !s.IsIndex(i) || !s.IsIndex(i+1) {
		panic(fmt.Sprintf("disks: swap index %d out of range [0,%d)", i, s.TotalCount()-1))
	}
	s.colors[i], s.colors[i+1] = s.colors[i+1], s.colors[i]
}

// Clone returns an independent copy of the row.
func (s State) Clone() State {
	return State{colors: slices.Clone(s.colors)}
}

// Colors returns a copy of the disk sequence in index order.
func (s State) Colors() []Color {
	return slices.Clone(s.colors)
}

// Equal reports whether both rows hold the same colors in the same order.
// Rows of different lengths are never equal.
func (s State) Equal(other State) bool {
	return slices.Equal(s.colors, other.colors)
}

// String renders the row as space-separated letters, e.g. "D L D L".
func (s State) String() string {
	var b strings.Builder
	b.Grow(2 * len(s.colors))
	for i, c := range s.colors {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// =============================================================================
// Predicates
// =============================================================================

// IsAlternating reports whether every even index holds a dark disk and every
// odd index a light one.
func (s State) IsAlternating() bool {
	for i, c := range s.colors {
		if c != expectedAlternating(i) {
			return false
		}
	}
	return true
}

// IsSorted reports whether the left half holds only light disks and the
// right half only dark disks.
func (s State) IsSorted() bool {
	half := s.TotalCount() / 2
	for i, c := range s.colors {
		want := Dark
		if i < half {
			want = Light
		}
		if c != want {
			return false
		}
	}
	return true
}

// Inversions returns the number of (dark, light) pairs where the dark disk
// sits left of the light one. Every adjacent dark-light swap removes exactly
// one inversion, so this is the swap count any adjacent-swap sort needs.
func (s State) Inversions() int {
	n, darks := 0, 0
	for _, c := range s.colors {
		if c == Dark {
			darks++
		} else {
			n += darks
		}
	}
	return n
}

func expectedAlternating(i int) Color {
	if i%2 == 0 {
		return Dark
	}
	return Light
}
