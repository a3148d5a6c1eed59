package sorting

import (
	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/errors"
)

// Direction is the direction of a single pass.
type Direction int

const (
	// Forward sweeps from low to high indices.
	Forward Direction = iota
	// Backward sweeps from high to low indices.
	Backward
)

// String returns "left-to-right" or "right-to-left".
func (d Direction) String() string {
	if d == Backward {
		return "right-to-left"
	}
	return "left-to-right"
}

// Step describes one completed pass.
type Step struct {
	Pass      int         `json:"pass" yaml:"pass"`           // 1-based pass number
	Direction Direction   `json:"direction" yaml:"direction"` // sweep direction
	Swaps     int         `json:"swaps" yaml:"swaps"`         // swaps made during this pass
	Row       disks.State `json:"row" yaml:"row"`             // snapshot after the pass
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left-to-right":
		*d = Forward
	case "right-to-left":
		*d = Backward
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown direction %q", text)
	}
	return nil
}

// Observer receives a Step after every pass. It runs synchronously on the
// sorting goroutine. Step.Row is a snapshot the observer may keep.
type Observer func(Step)

// Option configures a sort call.
type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver registers fn to be called after every pass.
func WithObserver(fn Observer) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// Recorder collects the steps of a sort. Use Recorder.Observe as the observer.
type Recorder struct {
	Initial disks.State
	Steps   []Step
}

// NewRecorder returns a Recorder that remembers the starting row.
func NewRecorder(initial disks.State) *Recorder {
	return &Recorder{Initial: initial.Clone()}
}

// Observe appends step to the recording.
func (r *Recorder) Observe(step Step) {
	r.Steps = append(r.Steps, step)
}

// Run bundles a Result with the row it started from and, when a Recorder
// was attached, the passes that led to it. It is the unit the pipeline
// caches and the renderers draw.
type Run struct {
	Before disks.State `json:"before" yaml:"before"`
	Result Result      `json:"result" yaml:"result"`
	Steps  []Step      `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Record sorts before with the algorithm registered under name and
// returns the run together with every pass.
func Record(name string, before disks.State) (Run, error) {
	rec := NewRecorder(before)
	res, err := Sort(name, before, WithObserver(rec.Observe))
	if err != nil {
		return Run{}, err
	}
	return Run{Before: rec.Initial, Result: res, Steps: rec.Steps}, nil
}
