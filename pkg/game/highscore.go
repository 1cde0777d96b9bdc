package game

import (
	"context"
	"errors"
)

// ErrNoHighScore is returned by stores that have never saved a score
var ErrNoHighScore = errors.New("no high score stored")

// HighScoreStore persists the best score across sessions
type HighScoreStore interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, score int) error
}

type nopStore struct{}

func (nopStore) Load(context.Context) (int, error) { return 0, ErrNoHighScore }
func (nopStore) Save(context.Context, int) error   { return nil }
