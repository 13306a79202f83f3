package fps

import (
	"fmt"
	"io"
	"time"
)

// Sink receives each sampled rate.
type Sink func(Rate)

// PrintTo returns a Sink writing one "<rate> FPS" line per sample to w.
// Write errors are ignored; the report is best-effort console output.
func PrintTo(w io.Writer) Sink {
	return func(r Rate) {
		//nolint:errcheck // Best-effort report
		fmt.Fprintln(w, r)
	}
}

// Reporter samples a Counter on a fixed interval and hands the rate to a Sink.
type Reporter struct {
	counter  *Counter
	interval time.Duration
	sink     Sink
}

// NewReporter creates a reporter for counter. A non-positive interval
// falls back to DefaultInterval.
func NewReporter(counter *Counter, interval time.Duration, sink Sink) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reporter{
		counter:  counter,
		interval: interval,
		sink:     sink,
	}
}

// Interval returns the sampling period.
func (r *Reporter) Interval() time.Duration {
	return r.interval
}

// Fire samples and resets the counter, reports the rate and returns the
// interval until the next sample. It is the Callback for AddTimer.
func (r *Reporter) Fire() time.Duration {
	rate := r.counter.SampleAndReset(r.interval)
	if r.sink != nil {
		r.sink(rate)
	}
	return r.interval
}

// Start registers the reporter on a new Timer.
func (r *Reporter) Start() *Timer {
	return AddTimer(r.interval, r.Fire)
}
