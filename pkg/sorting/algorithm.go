package sorting

import (
	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/errors"
)

// Name identifies a sorting algorithm.
type Name string

// Algorithm names, used on the command line, in the HTTP API, and in cache keys.
const (
	LeftToRight Name = "left-to-right"
	Lawnmower   Name = "lawnmower"
)

// Func is the signature shared by all algorithms in this package.
type Func func(before disks.State, opts ...Option) (Result, error)

var algorithms = map[Name]Func{
	LeftToRight: SortLeftToRight,
	Lawnmower:   SortLawnmower,
}

// Names returns the algorithm names in a stable order.
func Names() []string {
	return []string{string(LeftToRight), string(Lawnmower)}
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Func, error) {
	if err := errors.ValidateAlgorithm(name, Names()); err != nil {
		return nil, err
	}
	return algorithms[Name(name)], nil
}

// Sort runs the algorithm registered under name on before.
func Sort(name string, before disks.State, opts ...Option) (Result, error) {
	fn, err := Lookup(name)
	if err != nil {
		return Result{}, err
	}
	return fn(before, opts...)
}
