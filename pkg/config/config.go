package config

import "time"

// Board dimensions
const (
	GridSize    = 20 // 20x20 square grid
	MinGridSize = 3  // Smallest board that holds the initial snake
)

// Scoring
const (
	FoodScore = 10 // Points per food eaten
)

// Difficulty settings (interval between two snake moves)
const (
	EasyInterval   = 150 * time.Millisecond
	MediumInterval = 100 * time.Millisecond
	HardInterval   = 60 * time.Millisecond
)

// Food placement
const (
	// FoodSampleLimit bounds the random sampling before the placer falls
	// back to scanning every free cell.
	FoodSampleLimit = 64
)

// Persistence settings
const (
	HighScoreKey  = "snake-highscore"
	DefaultDBPath = "data/snake.db"
	RecordDir     = "records"
)

// Web server settings
const (
	DefaultAddr      = ":8080"
	DefaultStaticDir = "web/static"
	ReadTimeout      = 5 * time.Second
	WriteTimeout     = 10 * time.Second
	IdleTimeout      = 30 * time.Second
	ShutdownTimeout  = 5 * time.Second
)

// Characters for terminal rendering
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharWall  = "⬜"
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFood  = "🍎"
)

// StoreTimeout bounds a single high-score read or write
const StoreTimeout = 2 * time.Second
