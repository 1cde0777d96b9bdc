package game

import (
	"os"
	"strings"
	"testing"
)

func TestRecorderWritesFrames(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewRecorder(dir, "test")
	if err != nil {
		t.Fatalf("Failed to create recorder: %v", err)
	}

	s, _ := newTestSession()
	detach := rec.Attach(s)
	s.Start()
	s.Tick()
	s.Tick()
	detach()
	s.Tick() // Not recorded

	dropped, err := rec.Close()
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if dropped != 0 {
		t.Errorf("Expected no dropped frames, got %d", dropped)
	}
	if _, err := rec.Close(); err != nil {
		t.Errorf("Second close should be a no-op, got %v", err)
	}

	f, err := os.Open(rec.Path())
	if err != nil {
		t.Fatalf("Failed to open recording: %v", err)
	}
	defer f.Close()

	frames, err := ReadFrames(f)
	if err != nil {
		t.Fatalf("ReadFrames failed: %v", err)
	}
	// Initial snapshot, start, two ticks
	if len(frames) != 4 {
		t.Fatalf("Expected 4 frames, got %d", len(frames))
	}
	if frames[0].Event.HUD.Status != Idle || frames[1].Event.HUD.Status != Playing {
		t.Errorf("Unexpected statuses: %v, %v", frames[0].Event.HUD.Status, frames[1].Event.HUD.Status)
	}
	if frames[3].Event.Version != s.Snapshot().Version-1 {
		t.Errorf("Last frame should be the second tick, got version %d", frames[3].Event.Version)
	}

	// Recording after close is ignored
	rec.Record(s.Snapshot())
}

func TestReadFramesRejectsGarbage(t *testing.T) {
	frames, err := ReadFrames(strings.NewReader(`{"time":"2024-01-01T00:00:00Z","event":{"version":1}}` + "\nnot json\n"))
	if err == nil {
		t.Fatal("Expected a decode error")
	}
	if len(frames) != 1 {
		t.Errorf("Expected the valid frame before the error, got %d", len(frames))
	}
}
