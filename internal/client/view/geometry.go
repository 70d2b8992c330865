package view

import "time"

type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// Transition records how the last layout change was applied.
type Transition struct {
	Animated bool
	Duration time.Duration
}

var (
	Immediate = Transition{}

	// DefaultBounds is the portrait phone size screens are laid out in when
	// the front-end does not say otherwise.
	DefaultBounds = Rect{Width: 390, Height: 844}
)

func Animated(d time.Duration) Transition {
	return Transition{Animated: true, Duration: d}
}
