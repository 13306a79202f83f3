// Package fps measures the achieved frame rate. The render loop counts
// frames while a timer on its own goroutine periodically converts the
// count into a rate and resets it.
package fps

import (
	"fmt"
	"sync/atomic"
	"time"
)

// DefaultInterval is the sampling period between rate reports.
const DefaultInterval = 5000 * time.Millisecond

// Rate is an average frame rate in frames per second.
type Rate float64

// String formats the rate as a report line body, e.g. "59.80 FPS".
func (r Rate) String() string {
	return fmt.Sprintf("%.2f FPS", float64(r))
}

// Counter counts rendered frames. Increment and SampleAndReset may be
// called concurrently from different goroutines.
type Counter struct {
	frames atomic.Uint64
}

// Increment records one rendered frame.
func (c *Counter) Increment() {
	c.frames.Add(1)
}

// Pending returns the frames counted since the last reset.
func (c *Counter) Pending() uint64 {
	return c.frames.Load()
}

// SampleAndReset swaps the count to zero in one step and returns the
// average rate over interval. A non-positive interval yields zero.
func (c *Counter) SampleAndReset(interval time.Duration) Rate {
	n := c.frames.Swap(0)
	if interval <= 0 {
		return 0
	}
	return Rate(float64(n) / interval.Seconds())
}
