// Package heartbeat runs a callback at a fixed interval on a background
// goroutine, for liveness reporting during long-running operations.
package heartbeat

import (
	"sync"
	"time"
)

// Heartbeat fires a callback every interval until stopped.
type Heartbeat struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Start begins firing fn every interval. The first call happens one full
// interval after Start. Stop must be called to release the goroutine.
func Start(interval time.Duration, fn func()) *Heartbeat {
	h := &Heartbeat{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-h.stop:
				return
			}
		}
	}()

	return h
}

// Stop halts the heartbeat and waits for the goroutine to exit. It is
// safe to call more than once.
func (h *Heartbeat) Stop() {
	h.once.Do(func() { close(h.stop) })
	<-h.done
}
