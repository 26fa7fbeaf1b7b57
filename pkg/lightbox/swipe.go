package lightbox

import (
	"math"
	"time"
)

const (
	// SwipeThreshold is the minimum horizontal distance in pixels
	SwipeThreshold = 50.0
	// SwipeVelocityThreshold is the minimum horizontal speed in px/ms
	SwipeVelocityThreshold = 0.3
	// MaxVerticalRatio caps |dy|/|dx| for a drag to count as horizontal
	MaxVerticalRatio = 0.75
)

// Swipe is the outcome of a finished touch
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeLeft
	SwipeRight
)

func (s Swipe) String() string {
	switch s {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	}
	return "none"
}

// DetectSwipe classifies a drag by its displacement and duration
func DetectSwipe(dx, dy float64, elapsed time.Duration) Swipe {
	absX := math.Abs(dx)
	absY := math.Abs(dy)
	if absX <= SwipeThreshold {
		return SwipeNone
	}

	ms := float64(elapsed) / float64(time.Millisecond)
	velocity := math.Inf(1)
	if ms > 0 {
		velocity = absX / ms
	}
	if velocity <= SwipeVelocityThreshold || absY/absX >= MaxVerticalRatio {
		return SwipeNone
	}

	if dx < 0 {
		return SwipeLeft
	}
	return SwipeRight
}

type touchStart struct {
	x, y float64
	at   time.Time
}

// SwipeDetector turns touch start/end pairs into swipe callbacks
type SwipeDetector struct {
	OnSwipeLeft  func()
	OnSwipeRight func()

	start *touchStart
}

// TouchStart records where a drag began
func (d *SwipeDetector) TouchStart(x, y float64, at time.Time) {
	d.start = &touchStart{x: x, y: y, at: at}
}

// TouchEnd finishes a drag, firing the matching callback
func (d *SwipeDetector) TouchEnd(x, y float64, at time.Time) Swipe {
	if d.start == nil {
		return SwipeNone
	}
	start := d.start
	d.start = nil

	swipe := DetectSwipe(x-start.x, y-start.y, at.Sub(start.at))
	switch swipe {
	case SwipeLeft:
		if d.OnSwipeLeft != nil {
			d.OnSwipeLeft()
		}
	case SwipeRight:
		if d.OnSwipeRight != nil {
			d.OnSwipeRight()
		}
	}
	return swipe
}

// TouchCancel forgets an unfinished drag
func (d *SwipeDetector) TouchCancel() {
	d.start = nil
}

// SwipeHandlers returns a detector driving n. Swipes only navigate on small
// viewports: a leftward drag shows the next item, a rightward one the previous.
func (n *Navigator) SwipeHandlers(smallViewport bool) *SwipeDetector {
	d := &SwipeDetector{}
	if smallViewport {
		d.OnSwipeLeft = func() { n.Next() }
		d.OnSwipeRight = func() { n.Prev() }
	}
	return d
}
