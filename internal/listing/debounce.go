package listing

import (
	"sync"
	"time"
)

// Debouncer delivers only the latest pushed value after quiet period.
// Every push cancels pending delivery, stale timers are recognized by generation.
type Debouncer[T any] struct {
	mu      sync.Mutex
	fireMu  sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	gen     uint64
	stopped bool
	deliver func(T)
}

func NewDebouncer[T any](delay time.Duration, deliver func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, deliver: deliver}
}

// Push schedules delivery of v replacing pending one
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen, v) })
}

// Cancel drops pending delivery
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
	}
}

// Stop cancels pending delivery and ignores further pushes.
// It waits for running delivery to return, so it must not be called from deliver.
func (d *Debouncer[T]) Stop() {
	d.Cancel()

	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	d.fireMu.Lock()
	d.fireMu.Unlock()
}

func (d *Debouncer[T]) fire(gen uint64, v T) {
	d.fireMu.Lock()
	defer d.fireMu.Unlock()

	d.mu.Lock()
	stale := d.stopped || gen != d.gen
	d.mu.Unlock()

	if !stale {
		d.deliver(v)
	}
}
