package disks

import (
	"strings"

	"github.com/matzehuels/disksort/pkg/errors"
)

// Parse reads a row from its string form.
//
// Tokens are "L" and "D" (case-insensitive), separated by whitespace as
// produced by [State.String]. The compact form without separators ("DLDL")
// is accepted as well. The row must be non-empty, of even length, and hold
// as many light disks as dark ones.
func Parse(s string) (State, error) {
	if err := errors.ValidateRowString(s); err != nil {
		return State{}, err
	}

	tokens := strings.Fields(s)
	if len(tokens) == 1 {
		tokens = strings.Split(tokens[0], "")
	}

	colors := make([]Color, 0, len(tokens))
	lights := 0
	for i, tok := range tokens {
		switch strings.ToUpper(tok) {
		case "L":
			colors = append(colors, Light)
			lights++
		case "D":
			colors = append(colors, Dark)
		default:
			return State{}, errors.New(errors.ErrCodeInvalidRow, "unknown disk %q at position %d", tok, i)
		}
	}

	if len(colors)%2 != 0 {
		return State{}, errors.New(errors.ErrCodeInvalidRow, "row must have an even number of disks, got %d", len(colors))
	}
	if lights*2 != len(colors) {
		return State{}, errors.New(errors.ErrCodeInvalidRow,
			"row must hold as many light disks as dark ones, got %d light of %d", lights, len(colors))
	}
	return State{colors: colors}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) State {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return st
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
