package game

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDirectionOpposites(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if d.Opposite() != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, d.Opposite(), want)
		}
		if sum := d.Delta().Add(want.Delta()); sum != (Point{}) {
			t.Errorf("Deltas of %v and %v do not cancel: %v", d, want, sum)
		}
	}
}

func TestParseNames(t *testing.T) {
	if d, ok := ParseDirection("LEFT"); !ok || d != Left {
		t.Errorf("ParseDirection(LEFT) = %v, %v", d, ok)
	}
	if _, ok := ParseDirection("north"); ok {
		t.Error("north is not a direction")
	}
	if d, ok := ParseDifficulty("Hard"); !ok || d != Hard {
		t.Errorf("ParseDifficulty(Hard) = %v, %v", d, ok)
	}
	if _, ok := ParseDifficulty("nightmare"); ok {
		t.Error("nightmare is not a difficulty")
	}
}

func TestDifficultyIntervalsShrink(t *testing.T) {
	for i := 1; i < len(Difficulties); i++ {
		if Difficulties[i].Interval() >= Difficulties[i-1].Interval() {
			t.Errorf("%v should be faster than %v", Difficulties[i], Difficulties[i-1])
		}
	}
}

func TestHUDEncodesNames(t *testing.T) {
	b, err := json.Marshal(HUD{Status: GameOver, Difficulty: Easy})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"status":"game_over"`) || !strings.Contains(string(b), `"difficulty":"easy"`) {
		t.Errorf("Unexpected encoding: %s", b)
	}

	var hud HUD
	if err := json.Unmarshal([]byte(`{"status":"sleeping"}`), &hud); err == nil {
		t.Error("Expected an error for an unknown status")
	}
}
