package sorting_test

import (
	"fmt"

	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/sorting"
)

func ExampleSortLeftToRight() {
	res, err := sorting.SortLeftToRight(disks.MustNew(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.After())
	fmt.Println("swaps:", res.SwapCount(), "passes:", res.Passes())
	// Output:
	// L L L D D D
	// swaps: 6 passes: 3
}

func ExampleSortLawnmower() {
	before := disks.MustNew(4)
	rec := sorting.NewRecorder(before)

	res, err := sorting.SortLawnmower(before, sorting.WithObserver(rec.Observe))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("start        ", rec.Initial)
	for _, step := range rec.Steps {
		fmt.Printf("%-13s %s\n", step.Direction, step.Row)
	}
	fmt.Println("swaps:", res.SwapCount(), "comparisons:", res.Comparisons())
	// Output:
	// start         D L D L D L D L
	// left-to-right L D L D L D L D
	// right-to-left L L D L D L D D
	// left-to-right L L L D L D D D
	// right-to-left L L L L D D D D
	// swaps: 10 comparisons: 22
}

func ExampleSort() {
	row, _ := disks.Parse("L L D D")
	res, err := sorting.Sort("lawnmower", row)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.After(), res.SwapCount())

	_, err = sorting.Sort("lawnmower", disks.MustParse("L D L D"))
	fmt.Println(err)
	// Output:
	// L L D D 0
	// NOT_ALTERNATING: lawnmower: row "L D L D" is not in alternating form
}
