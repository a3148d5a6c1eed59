package sorting

import "github.com/matzehuels/disksort/pkg/disks"

// SortLeftToRight sorts a copy of before with repeated left-to-right passes
// over every adjacent pair until the row is sorted.
//
// A sorted input is returned unchanged with zero swaps. An input that is
// neither sorted nor alternating fails with NOT_ALTERNATING.
func SortLeftToRight(before disks.State, opts ...Option) (Result, error) {
	m, err := newMachine(LeftToRight, before, opts)
	if err != nil {
		return Result{}, err
	}

	last := before.TotalCount() - 2
	for !m.done() {
		if err := m.sweep(Forward, 0, last); err != nil {
			return Result{}, err
		}
	}
	return m.result(), nil
}
