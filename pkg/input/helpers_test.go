package input

import "time"

// stillScheduler never fires
type stillScheduler struct{}

func (stillScheduler) Every(time.Duration, func()) func() { return func() {} }
