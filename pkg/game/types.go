package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/nonono109/snaker/pkg/config"
)

// Point represents a cell on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is a movement direction of the snake
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the one-cell offset for d. Y grows downwards.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection parses "up", "down", "left" or "right" (any case)
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return Up, false
}

// Status is the session state
type Status int

const (
	Idle Status = iota
	Playing
	Paused
	GameOver
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalText encodes the status by name for JSON clients
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name written by MarshalText
func (s *Status) UnmarshalText(b []byte) error {
	for _, c := range []Status{Idle, Playing, Paused, GameOver} {
		if c.String() == string(b) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", b)
}

// Difficulty selects the tick interval
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every difficulty from slowest to fastest
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Interval returns the time between two snake moves
func (d Difficulty) Interval() time.Duration {
	switch d {
	case Easy:
		return config.EasyInterval
	case Hard:
		return config.HardInterval
	default:
		return config.MediumInterval
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// MarshalText encodes the difficulty by name
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a difficulty name
func (d *Difficulty) UnmarshalText(b []byte) error {
	v, ok := ParseDifficulty(string(b))
	if !ok {
		return fmt.Errorf("unknown difficulty %q", b)
	}
	*d = v
	return nil
}

// ParseDifficulty parses "easy", "medium" or "hard" (any case)
func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if strings.EqualFold(d.String(), s) {
			return d, true
		}
	}
	return Medium, false
}

// Board is a read-only snapshot of the playfield for renderers
type Board struct {
	Snake    []Point `json:"snake"`
	Food     Point   `json:"food"`
	GridSize int     `json:"gridSize"`
}

// HUD is a read-only snapshot of the session for overlays
type HUD struct {
	Status     Status     `json:"status"`
	Score      int        `json:"score"`
	HighScore  int        `json:"highScore"`
	Difficulty Difficulty `json:"difficulty"`
	NewBest    bool       `json:"newBest"`           // Game over with a score at least the stored best
	Cleared    bool       `json:"cleared"`           // Game over because no free cell was left for food
	Warning    string     `json:"warning,omitempty"` // Soft persistence failure
}

// Event is published to subscribers after every state change
type Event struct {
	Version uint64 `json:"version"`
	Board   Board  `json:"board"`
	HUD     HUD    `json:"hud"`
}
