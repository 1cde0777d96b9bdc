package storage

import (
	"time"

	"github.com/nonono109/snaker/pkg/game"
)

// stillScheduler never fires
type stillScheduler struct{}

func (stillScheduler) Every(time.Duration, func()) func() { return func() {} }

// crash ticks s straight ahead until it leaves the board
func crash(s *game.Session) {
	for i := 0; i < 100 && s.Status() == game.Playing; i++ {
		s.Tick()
	}
}
