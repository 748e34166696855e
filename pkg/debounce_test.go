package pkg

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_Trigger(t *testing.T) {
	t.Run("burst collapses to trailing call", func(t *testing.T) {
		d := NewDebouncer(30 * time.Millisecond)
		var calls int32
		var last int32

		for i := 1; i <= 5; i++ {
			n := int32(i)
			d.Trigger(func() {
				atomic.AddInt32(&calls, 1)
				atomic.StoreInt32(&last, n)
			})
		}

		time.Sleep(100 * time.Millisecond)
		if got := atomic.LoadInt32(&calls); got != 1 {
			t.Fatalf("expected 1 call, got %d", got)
		}
		if got := atomic.LoadInt32(&last); got != 5 {
			t.Fatalf("expected trailing call, got %d", got)
		}
	})

	t.Run("stop cancels pending call", func(t *testing.T) {
		d := NewDebouncer(30 * time.Millisecond)
		var calls int32
		d.Trigger(func() { atomic.AddInt32(&calls, 1) })
		d.Stop()

		time.Sleep(80 * time.Millisecond)
		if got := atomic.LoadInt32(&calls); got != 0 {
			t.Fatalf("expected no calls after Stop, got %d", got)
		}
	})

	t.Run("flush runs immediately and cancels the timer", func(t *testing.T) {
		d := NewDebouncer(time.Hour)
		var pending int32
		var flushed int32
		d.Trigger(func() { atomic.AddInt32(&pending, 1) })
		d.Flush(func() { atomic.AddInt32(&flushed, 1) })

		if got := atomic.LoadInt32(&flushed); got != 1 {
			t.Fatalf("expected flush to run, got %d", got)
		}
		time.Sleep(50 * time.Millisecond)
		if got := atomic.LoadInt32(&pending); got != 0 {
			t.Fatalf("expected pending call to be cancelled, got %d", got)
		}
	})
}
