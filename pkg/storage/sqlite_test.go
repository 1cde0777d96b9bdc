package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nonono109/snaker/pkg/config"
	"github.com/nonono109/snaker/pkg/game"
)

func openTestDB(t *testing.T, path string) *SQLite {
	t.Helper()
	db, err := OpenSQLite(path, config.HighScoreKey)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteMissingScore(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "nested", "snake.db"))

	score, err := db.Load(context.Background())
	if !errors.Is(err, game.ErrNoHighScore) {
		t.Fatalf("Expected ErrNoHighScore, got %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0, got %d", score)
	}
}

func TestSQLiteRoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.db")
	ctx := context.Background()

	db, err := OpenSQLite(path, config.HighScoreKey)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := db.Save(ctx, 120); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	db.Close()

	reopened := openTestDB(t, path)
	score, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if score != 120 {
		t.Errorf("Expected 120, got %d", score)
	}
}

func TestSQLiteKeepsLargerScore(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "snake.db"))
	ctx := context.Background()

	for _, s := range []int{30, 90, 40} {
		if err := db.Save(ctx, s); err != nil {
			t.Fatalf("Save(%d) failed: %v", s, err)
		}
	}
	score, _ := db.Load(ctx)
	if score != 90 {
		t.Errorf("Expected 90 to survive a lower concurrent write, got %d", score)
	}
}

func TestMemoryKeepsLargerScore(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, s := range []int{50, 30} {
		if err := m.Save(ctx, s); err != nil {
			t.Fatalf("Save(%d) failed: %v", s, err)
		}
	}
	if score, _ := m.Load(ctx); score != 50 {
		t.Errorf("Expected 50 to survive a lower write, got %d", score)
	}
}

func TestMemorySharedBySessions(t *testing.T) {
	m := NewMemory()
	a := game.NewSession(game.WithStore(m), game.WithScheduler(stillScheduler{}), game.WithSeed(1))
	defer a.Close()

	a.Start()
	m.Save(context.Background(), 50) // Another connection's best lands mid-game

	crash(a)
	if hs := a.Snapshot().HUD.HighScore; hs != 50 {
		t.Errorf("Expected the shared best 50, got %d", hs)
	}
	if score, _ := m.Load(context.Background()); score != 50 {
		t.Errorf("Stored best decreased to %d", score)
	}
}

func TestSQLiteKeysAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.db")
	a := openTestDB(t, path)
	ctx := context.Background()
	a.Save(ctx, 70)

	b, err := OpenSQLite(path, "other-key")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer b.Close()
	if _, err := b.Load(ctx); !errors.Is(err, game.ErrNoHighScore) {
		t.Errorf("Expected no score under another key, got %v", err)
	}
}

func TestSessionPersistsThroughSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.db")
	db := openTestDB(t, path)
	db.Save(context.Background(), 40)

	s := game.NewSession(game.WithStore(db), game.WithScheduler(stillScheduler{}))
	if hs := s.Snapshot().HUD.HighScore; hs != 40 {
		t.Errorf("Expected high score 40 from disk, got %d", hs)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.Load(ctx); !errors.Is(err, game.ErrNoHighScore) {
		t.Errorf("Expected ErrNoHighScore, got %v", err)
	}
	m.Save(ctx, 10)
	if score, err := m.Load(ctx); err != nil || score != 10 {
		t.Errorf("Expected 10, got %d (%v)", score, err)
	}

	boom := errors.New("boom")
	m.FailWith(boom)
	if err := m.Save(ctx, 20); !errors.Is(err, boom) {
		t.Errorf("Expected injected error, got %v", err)
	}
}
