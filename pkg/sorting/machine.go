package sorting

import (
	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/errors"
)

// phase is the state of a sort run. A run starts unsorted and moves to
// sorted after the pass that leaves the row in sorted form.
type phase int

const (
	unsorted phase = iota
	sorted
)

// machine owns the working copy of a row for one sort call and counts the
// swaps and passes applied to it.
type machine struct {
	algorithm Name
	row       disks.State
	phase     phase
	swaps     int
	passes    int
	compares  int
	maxPasses int
	observer  Observer
}

// newMachine validates before and returns a machine over a private copy of it.
// A sorted row starts in the sorted phase; a row that is neither sorted nor
// alternating is rejected.
func newMachine(algorithm Name, before disks.State, opts []Option) (*machine, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m := &machine{
		algorithm: algorithm,
		row:       before.Clone(),
		// Every pass over an unsorted binary row settles at least one disk.
		maxPasses: before.TotalCount() + 1,
		observer:  o.observer,
	}

	switch {
	case m.row.IsSorted():
		m.phase = sorted
	case !m.row.IsAlternating():
		return nil, errors.New(errors.ErrCodeNotAlternating,
			"%s: row %q is not in alternating form", algorithm, before.String())
	}
	return m, nil
}

// done reports whether the run reached the sorted phase.
func (m *machine) done() bool {
	return m.phase == sorted
}

// sweep runs one pass in direction dir over the pair indices lo..hi
// inclusive, swapping every dark disk that sits directly left of a light
// disk. Swaps take effect immediately, so a disk can travel several positions
// within one pass.
func (m *machine) sweep(dir Direction, lo, hi int) error {
	if m.passes >= m.maxPasses {
		return errors.New(errors.ErrCodeInternal,
			"%s: no sorted row after %d passes over %d disks", m.algorithm, m.passes, m.row.TotalCount())
	}

	swaps := 0
	for n := 0; n <= hi-lo; n++ {
		i := lo + n
		if dir == Backward {
			i = hi - n
		}
		m.compares++
		if m.row.Get(i) == disks.Dark && m.row.Get(i+1) == disks.Light {
			m.row.Swap(i)
			swaps++
		}
	}

	m.swaps += swaps
	m.passes++
	if m.row.IsSorted() {
		m.phase = sorted
	}

	if m.observer != nil {
		m.observer(Step{Pass: m.passes, Direction: dir, Swaps: swaps, Row: m.row.Clone()})
	}
	return nil
}

// result packages the machine's final state.
func (m *machine) result() Result {
	return Result{
		algorithm: m.algorithm,
		after:     m.row,
		swapCount: m.swaps,
		passes:    m.passes,
		compares:  m.compares,
	}
}
