package game

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/nonono109/snaker/pkg/config"
)

// Session owns one player's game: status, snake, food, score and timer
type Session struct {
	mu sync.Mutex

	grid       Grid
	status     Status
	difficulty Difficulty
	snake      *Snake
	food       Point
	score      int
	highScore  int
	newBest    bool
	cleared    bool
	warning    string

	store     HighScoreStore
	placer    *FoodPlacer
	scheduler Scheduler
	logger    *log.Logger

	stopTimer func()
	timerGen  uint64 // Bumped on every timer start/stop; stale ticks are dropped
	version   uint64

	subscribers map[int]func(Event)
	nextSubID   int
}

// Option configures a Session
type Option func(*Session)

// WithStore sets the high-score store
func WithStore(store HighScoreStore) Option {
	return func(s *Session) { s.store = store }
}

// WithRand sets the random source used for food placement
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.placer = NewFoodPlacer(s.grid, rng) }
}

// WithSeed seeds food placement
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithScheduler replaces the ticker used to drive the game
func WithScheduler(sched Scheduler) Option {
	return func(s *Session) { s.scheduler = sched }
}

// WithDifficulty sets the initial difficulty
func WithDifficulty(d Difficulty) Option {
	return func(s *Session) { s.difficulty = d }
}

// WithLogger sets the logger for soft failures
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithGridSize changes the board size. Sizes below config.MinGridSize are ignored.
func WithGridSize(size int) Option {
	return func(s *Session) {
		if size < config.MinGridSize {
			s.logger.Printf("grid size %d too small, keeping %d", size, s.grid.Size)
			return
		}
		s.grid = Grid{Size: size}
		s.placer = NewFoodPlacer(s.grid, s.placer.rng)
	}
}

// NewSession creates an idle session and loads the stored high score
func NewSession(opts ...Option) *Session {
	s := &Session{
		grid:        Grid{Size: config.GridSize},
		status:      Idle,
		difficulty:  Medium,
		store:       nopStore{},
		scheduler:   TickerScheduler{},
		logger:      log.Default(),
		subscribers: make(map[int]func(Event)),
	}
	s.placer = NewFoodPlacer(s.grid, rand.New(rand.NewSource(time.Now().UnixNano())))
	for _, opt := range opts {
		opt(s)
	}

	s.snake = InitialSnake(s.grid)
	s.food, _ = s.placer.Place(s.snake.Body)
	s.highScore = s.loadHighScore()
	return s
}

func (s *Session) loadHighScore() int {
	ctx, cancel := context.WithTimeout(context.Background(), config.StoreTimeout)
	defer cancel()

	score, err := s.store.Load(ctx)
	if errors.Is(err, ErrNoHighScore) {
		return 0
	}
	if err != nil {
		s.logger.Printf("high score unavailable, starting from 0: %v", err)
		return 0
	}
	if score < 0 {
		return 0
	}
	return score
}

// Subscribe registers fn to receive every published event. Events may be
// delivered from the timer goroutine; use Event.Version to drop stale ones.
func (s *Session) Subscribe(fn func(Event)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// update runs fn under the lock and publishes a snapshot when fn reports a change
func (s *Session) update(fn func() bool) bool {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return false
	}
	s.version++
	ev := s.snapshotLocked()
	subs := make([]func(Event), 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(ev)
	}
	return true
}

// Start begins a new game from Idle or GameOver
func (s *Session) Start() bool {
	return s.update(func() bool {
		if s.status != Idle && s.status != GameOver {
			return false
		}
		s.beginLocked()
		return true
	})
}

// Restart begins a new game after a game over
func (s *Session) Restart() bool {
	return s.update(func() bool {
		if s.status != GameOver {
			return false
		}
		s.beginLocked()
		return true
	})
}

// Pause freezes a running game
func (s *Session) Pause() bool {
	return s.update(func() bool {
		if s.status != Playing {
			return false
		}
		s.pauseLocked()
		return true
	})
}

// Resume continues a paused game with a fresh timer
func (s *Session) Resume() bool {
	return s.update(func() bool {
		if s.status != Paused {
			return false
		}
		s.resumeLocked()
		return true
	})
}

// TogglePause switches between Playing and Paused
func (s *Session) TogglePause() bool {
	return s.update(func() bool {
		switch s.status {
		case Playing:
			s.pauseLocked()
			return true
		case Paused:
			s.resumeLocked()
			return true
		}
		return false
	})
}

func (s *Session) beginLocked() {
	s.refreshHighScoreLocked()
	s.resetLocked()
	s.status = Playing
	s.startTimerLocked()
}

func (s *Session) pauseLocked() {
	s.stopTimerLocked()
	s.status = Paused
}

func (s *Session) resumeLocked() {
	s.status = Playing
	s.startTimerLocked()
}

// SetDifficulty changes the tick interval. Only allowed while Idle.
func (s *Session) SetDifficulty(d Difficulty) bool {
	return s.update(func() bool {
		if s.status != Idle || d < Easy || d > Hard {
			return false
		}
		s.difficulty = d
		return true
	})
}

// Steer submits a direction intent. Only accepted while Playing.
func (s *Session) Steer(d Direction) bool {
	return s.update(func() bool {
		if s.status != Playing {
			return false
		}
		return s.snake.Steer(d)
	})
}

// Tick advances the game by one step. It is a no-op unless Playing.
func (s *Session) Tick() {
	s.update(func() bool {
		return s.stepLocked()
	})
}

func (s *Session) tickFrom(gen uint64) {
	s.update(func() bool {
		if gen != s.timerGen {
			return false
		}
		return s.stepLocked()
	})
}

func (s *Session) stepLocked() bool {
	if s.status != Playing {
		return false
	}

	res := s.snake.Step(s.grid, s.food)
	switch {
	case res.Outcome.Dead():
		s.gameOverLocked()
	case res.Outcome == Ate:
		s.score += config.FoodScore
		food, ok := s.placer.Place(s.snake.Body)
		if !ok {
			s.cleared = true
			s.gameOverLocked()
			break
		}
		s.food = food
	}
	return true
}

func (s *Session) resetLocked() {
	s.snake = InitialSnake(s.grid)
	s.score = 0
	s.newBest = false
	s.cleared = false
	s.warning = ""
	s.food, _ = s.placer.Place(s.snake.Body)
}

func (s *Session) gameOverLocked() {
	s.stopTimerLocked()
	s.status = GameOver

	s.refreshHighScoreLocked()
	if s.score > s.highScore {
		s.highScore = s.score
		ctx, cancel := context.WithTimeout(context.Background(), config.StoreTimeout)
		defer cancel()
		if err := s.store.Save(ctx, s.highScore); err != nil {
			s.logger.Printf("failed to save high score %d: %v", s.highScore, err)
			s.warning = "high score could not be saved"
		}
	}
	s.newBest = s.score > 0 && s.score >= s.highScore
}

// refreshHighScoreLocked adopts a better score saved by another session
func (s *Session) refreshHighScoreLocked() {
	if stored := s.loadHighScore(); stored > s.highScore {
		s.highScore = stored
	}
}

func (s *Session) startTimerLocked() {
	s.stopTimerLocked()
	gen := s.timerGen
	s.stopTimer = s.scheduler.Every(s.difficulty.Interval(), func() {
		s.tickFrom(gen)
	})
}

func (s *Session) stopTimerLocked() {
	if s.stopTimer != nil {
		s.stopTimer()
		s.stopTimer = nil
	}
	s.timerGen++
}

// Close stops the timer. The session stays readable.
func (s *Session) Close() {
	s.mu.Lock()
	s.stopTimerLocked()
	s.mu.Unlock()
}

// Status returns the current status
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Snapshot returns the latest published state
func (s *Session) Snapshot() Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Event {
	return Event{
		Version: s.version,
		Board: Board{
			Snake:    s.snake.Segments(),
			Food:     s.food,
			GridSize: s.grid.Size,
		},
		HUD: HUD{
			Status:     s.status,
			Score:      s.score,
			HighScore:  s.highScore,
			Difficulty: s.difficulty,
			NewBest:    s.status == GameOver && s.newBest,
			Cleared:    s.cleared,
			Warning:    s.warning,
		},
	}
}
