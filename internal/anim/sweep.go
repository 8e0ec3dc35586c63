package anim

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoFrames is returned for a sweep that produces no frames.
var ErrNoFrames = errors.New("sweep has no frames")

// Sweep is an arithmetic sequence of rotation angles in radians: Start,
// Start+Step, ... up to but excluding Stop.
type Sweep struct {
	Start, Stop, Step float64
}

// DefaultSweep is a thousand frames turning the ball through 100 radians.
func DefaultSweep() Sweep { return Sweep{Start: 0, Stop: 100, Step: 0.1} }

// Validate checks that the sweep is finite and moves towards Stop.
func (sw Sweep) Validate() error {
	for _, v := range []float64{sw.Start, sw.Stop, sw.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("invalid sweep %v: non-finite bound", sw)
		}
	}
	if sw.Step == 0 {
		return fmt.Errorf("invalid sweep %v: zero step", sw)
	}
	if sw.Len() == 0 {
		return ErrNoFrames
	}
	return nil
}

// Len returns the number of angles in the sweep.
func (sw Sweep) Len() int {
	if sw.Step == 0 {
		return 0
	}
	n := math.Ceil((sw.Stop - sw.Start) / sw.Step)
	if !(n > 0) {
		return 0
	}
	return int(n)
}

// At returns the i-th angle.
func (sw Sweep) At(i int) float64 { return sw.Start + float64(i)*sw.Step }

func (sw Sweep) String() string {
	return fmt.Sprintf("[%g:%g:%g]", sw.Start, sw.Stop, sw.Step)
}
