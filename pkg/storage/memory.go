package storage

import (
	"context"
	"sync"

	"github.com/nonono109/snaker/pkg/game"
)

// Memory keeps the score for the lifetime of the process
type Memory struct {
	mu    sync.Mutex
	score int
	set   bool
	err   error // Returned by every call when non-nil
}

// NewMemory returns an empty store
func NewMemory() *Memory {
	return &Memory{}
}

// FailWith makes every following Load and Save return err
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

func (m *Memory) Load(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	if !m.set {
		return 0, game.ErrNoHighScore
	}
	return m.score, nil
}

func (m *Memory) Save(_ context.Context, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	// Sessions save independently; keep the best of them
	if !m.set || score > m.score {
		m.score = score
	}
	m.set = true
	return nil
}
