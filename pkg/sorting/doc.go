// Package sorting solves the alternating disks problem with adjacent swaps.
//
// Both algorithms take a row in alternating form (see pkg/disks), sort a
// private copy of it, and return a [Result] with the sorted row and the
// number of swaps performed. The caller's row is never modified.
//
// # Algorithms
//
//   - [SortLeftToRight]: Repeated full left-to-right passes. Every pass swaps
//     each dark disk that sits directly left of a light disk.
//   - [SortLawnmower]: Alternates a left-to-right pass with a right-to-left
//     pass, shrinking the window from both ends as disks settle, like mowing a
//     lawn in rows.
//
// Every swap removes exactly one (dark, light) inversion, so both algorithms
// perform the same number of swaps on the same input: n(n+1)/2 for an
// alternating row with n light disks. They differ in the number of passes,
// which [Result.Passes] reports.
//
// # Preconditions
//
// An already sorted row is returned unchanged with zero swaps. A row that is
// neither sorted nor alternating is rejected with a NOT_ALTERNATING error from
// pkg/errors.
//
// # Tracing
//
// Pass [WithObserver] to receive a [Step] after every pass, carrying a
// snapshot of the row. Renderers and the interactive stepper use this.
//
// # Usage
//
//	row := disks.MustNew(3)
//	res, err := sorting.SortLawnmower(row)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.After(), res.SwapCount()) // L L L D D D 6
package sorting
