package game

import (
	"context"
	"io"
	"log"
	"sync"
	"time"
)

// fakeScheduler records timer runs; tests fire them by hand
type fakeScheduler struct {
	mu   sync.Mutex
	runs []*fakeRun
}

type fakeRun struct {
	interval time.Duration
	fn       func()
	stopped  bool
}

func (f *fakeScheduler) Every(interval time.Duration, fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	run := &fakeRun{interval: interval, fn: fn}
	f.runs = append(f.runs, run)
	return func() {
		f.mu.Lock()
		run.stopped = true
		f.mu.Unlock()
	}
}

func (f *fakeScheduler) last() *fakeRun {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.runs) == 0 {
		return nil
	}
	return f.runs[len(f.runs)-1]
}

func (f *fakeScheduler) active() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.runs {
		if !r.stopped {
			n++
		}
	}
	return n
}

// fakeStore is an in-memory HighScoreStore with injectable failures
type fakeStore struct {
	mu      sync.Mutex
	score   int
	set     bool
	loadErr error
	saveErr error
	saves   []int
}

func (f *fakeStore) Load(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return 0, f.loadErr
	}
	if !f.set {
		return 0, ErrNoHighScore
	}
	return f.score, nil
}

func (f *fakeStore) Save(_ context.Context, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, score)
	if f.saveErr != nil {
		return f.saveErr
	}
	f.score = score
	f.set = true
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestSession(opts ...Option) (*Session, *fakeScheduler) {
	sched := &fakeScheduler{}
	base := []Option{WithScheduler(sched), WithSeed(42), WithLogger(quietLogger())}
	return NewSession(append(base, opts...)...), sched
}

// setBoard replaces snake and food of a running session
func setBoard(s *Session, snake *Snake, food Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snake = snake
	s.food = food
}

// playScore starts a game, eats n foods straight ahead and then runs into the top wall
func playScore(s *Session, n int) {
	s.Start()
	for i := 0; i < n; i++ {
		s.mu.Lock()
		s.food = s.snake.Head().Add(s.snake.Pending().Delta())
		s.mu.Unlock()
		s.Tick()
	}
	s.mu.Lock()
	s.food = Point{X: 0, Y: s.grid.Size - 1}
	s.mu.Unlock()
	for i := 0; i < s.grid.Size && s.Status() == Playing; i++ {
		s.Tick()
	}
}
