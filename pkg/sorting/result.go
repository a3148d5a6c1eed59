package sorting

import (
	"encoding/json"

	"github.com/matzehuels/disksort/pkg/disks"
)

// Result is the outcome of one sort: the final row and the number of swaps
// that produced it. A Result is immutable once returned.
type Result struct {
	algorithm Name
	after     disks.State
	swapCount int
	passes    int
	compares  int
}

// NewResult builds a Result. It is exported for decoders and tests; the
// algorithms in this package construct their own.
func NewResult(algorithm Name, after disks.State, swapCount, passes, comparisons int) Result {
	return Result{
		algorithm: algorithm,
		after:     after.Clone(),
		swapCount: swapCount,
		passes:    passes,
		compares:  comparisons,
	}
}

// Algorithm returns the name of the algorithm that produced the result.
func (r Result) Algorithm() Name { return r.algorithm }

// After returns a copy of the final row.
func (r Result) After() disks.State { return r.after.Clone() }

// SwapCount returns the number of adjacent swaps performed.
func (r Result) SwapCount() int { return r.swapCount }

// Passes returns the number of directional sweeps performed.
func (r Result) Passes() int { return r.passes }

// Comparisons returns the number of adjacent pairs inspected across all passes.
func (r Result) Comparisons() int { return r.compares }

// resultJSON is the wire form of Result.
type resultJSON struct {
	Algorithm   Name        `json:"algorithm" yaml:"algorithm"`
	After       disks.State `json:"after" yaml:"after"`
	SwapCount   int         `json:"swap_count" yaml:"swap_count"`
	Passes      int         `json:"passes" yaml:"passes"`
	Comparisons int         `json:"comparisons" yaml:"comparisons"`
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w resultJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = Result{
		algorithm: w.Algorithm,
		after:     w.After,
		swapCount: w.SwapCount,
		passes:    w.Passes,
		compares:  w.Comparisons,
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Result) MarshalYAML() (any, error) {
	return r.wire(), nil
}

func (r Result) wire() resultJSON {
	return resultJSON{
		Algorithm:   r.algorithm,
		After:       r.after,
		SwapCount:   r.swapCount,
		Passes:      r.passes,
		Comparisons: r.compares,
	}
}
