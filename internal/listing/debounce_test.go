package listing

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncerDeliversLatest(t *testing.T) {
	var rec recorder
	d := NewDebouncer(30*time.Millisecond, rec.record)
	defer d.Stop()

	for _, v := range []string{"a", "ac", "acm"} {
		d.Push(v)
	}

	require.Eventually(t, func() bool { return len(rec.recorded()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, []string{"acm"}, rec.recorded())
}

func TestDebouncerCancelAndStop(t *testing.T) {
	var rec recorder
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Push("a")
	d.Cancel()
	time.Sleep(50 * time.Millisecond)
	require.Empty(t, rec.recorded(), "cancelled value delivered")

	d.Push("b")
	d.Stop()
	d.Push("c")
	time.Sleep(50 * time.Millisecond)
	require.Empty(t, rec.recorded(), "value delivered after stop")
}

func TestDebouncerStopWaitsForDelivery(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var rec recorder
	d := NewDebouncer(10*time.Millisecond, func(v string) {
		close(entered)
		<-release
		rec.record(v)
	})

	d.Push("a")
	select {
	case <-entered:
	case <-time.After(time.Second):
		require.FailNow(t, "value was not delivered")
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		d.Stop()
	}()

	select {
	case <-stopped:
		require.FailNow(t, "stop returned while delivery was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		require.FailNow(t, "stop did not return after delivery finished")
	}
	require.Equal(t, []string{"a"}, rec.recorded(), "delivery must complete before stop returns")
}
