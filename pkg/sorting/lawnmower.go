package sorting

import "github.com/matzehuels/disksort/pkg/disks"

// SortLawnmower sorts a copy of before by alternating left-to-right and
// right-to-left passes.
//
// The passes cover a window of pair indices [lo, hi]. A left-to-right pass
// carries the rightmost unsettled dark disk to the right edge of the window,
// so hi shrinks by one and the following right-to-left pass starts one pair
// left of where the forward pass ended. That pass carries the leftmost
// unsettled light disk to the left edge, so lo grows by one. The window never
// extends past index 0 or the last pair.
//
// A sorted input is returned unchanged with zero swaps. An input that is
// neither sorted nor alternating fails with NOT_ALTERNATING.
func SortLawnmower(before disks.State, opts ...Option) (Result, error) {
	m, err := newMachine(Lawnmower, before, opts)
	if err != nil {
		return Result{}, err
	}

	lo, hi := 0, before.TotalCount()-2
	for !m.done() {
		if err := m.sweep(Forward, lo, hi); err != nil {
			return Result{}, err
		}
		hi--
		if m.done() {
			break
		}

		if err := m.sweep(Backward, lo, hi); err != nil {
			return Result{}, err
		}
		lo++
	}
	return m.result(), nil
}
