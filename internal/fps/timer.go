package fps

import (
	"sync"
	"time"
)

// Callback is invoked each time a Timer fires. It returns the delay until
// the next firing; zero or negative stops the timer.
type Callback func() time.Duration

// Timer calls a Callback on its own goroutine, first after the initial
// interval and then after whatever interval the callback returns.
type Timer struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// AddTimer starts a timer that first fires after interval.
// A non-positive interval returns an already stopped timer.
func AddTimer(interval time.Duration, cb Callback) *Timer {
	t := &Timer{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go t.run(interval, cb)
	return t
}

func (t *Timer) run(interval time.Duration, cb Callback) {
	defer close(t.done)
	if interval <= 0 {
		return
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-timer.C:
			next := cb()
			if next <= 0 {
				return
			}
			timer.Reset(next)
		}
	}
}

// Remove stops the timer and waits for a running callback to return.
// It is safe to call more than once.
func (t *Timer) Remove() {
	t.once.Do(func() {
		close(t.stop)
	})
	<-t.done
}

// Done is closed once the timer will not fire again.
func (t *Timer) Done() <-chan struct{} {
	return t.done
}
