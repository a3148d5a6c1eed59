package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/disksort/pkg/sorting"
)

// Text lists the run one row per line:
//
//	lawnmower
//	start            D L D L
//	pass 1  ->  2    L D L D
//	pass 2  <-  1    L L D D
//	swaps 3, passes 2, comparisons 5
func Text(run sorting.Run) []byte {
	var buf bytes.Buffer
	res := run.Result

	fmt.Fprintf(&buf, "%s\n", res.Algorithm())
	fmt.Fprintf(&buf, "%-16s %s\n", "start", run.Before)
	for _, st := range run.Steps {
		fmt.Fprintf(&buf, "%-16s %s\n", stepLabel(st), st.Row)
	}
	if len(run.Steps) == 0 && res.Passes() > 0 {
		fmt.Fprintf(&buf, "%-16s %s\n", "end", res.After())
	}
	fmt.Fprintf(&buf, "swaps %d, passes %d, comparisons %d\n",
		res.SwapCount(), res.Passes(), res.Comparisons())
	return buf.Bytes()
}

func stepLabel(st sorting.Step) string {
	arrow := "->"
	if st.Direction == sorting.Backward {
		arrow = "<-"
	}
	return fmt.Sprintf("pass %-3d%s %2d", st.Pass, arrow, st.Swaps)
}
