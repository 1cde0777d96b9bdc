package game

import (
	"sync"
	"time"
)

// Scheduler runs fn every interval until the returned stop func is called.
// Stop must not block: the session calls it while holding its lock.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (stop func())
}

// TickerScheduler drives ticks from a time.Ticker goroutine
type TickerScheduler struct{}

// Every starts a ticker goroutine
func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}
