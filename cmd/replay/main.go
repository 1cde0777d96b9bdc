package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/term"

	"github.com/nonono109/snaker/pkg/config"
	"github.com/nonono109/snaker/pkg/game"
	"github.com/nonono109/snaker/pkg/renderer"
)

func main() {
	var (
		file  = flag.String("file", "", "recording to play (default: newest in -dir)")
		dir   = flag.String("dir", config.RecordDir, "directory with recordings")
		speed = flag.Float64("speed", 1, "playback speed multiplier")
	)
	flag.Parse()

	path := *file
	if path == "" {
		newest, err := newestRecording(*dir)
		if err != nil {
			log.Fatal(err)
		}
		path = newest
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open recording: %v", err)
	}
	frames, err := game.ReadFrames(f)
	f.Close()
	if err != nil {
		log.Printf("Recording truncated: %v", err)
	}
	if len(frames) == 0 {
		log.Fatalf("No frames in %s", path)
	}

	render := renderer.NewTerminalRenderer(os.Stdout, frames[0].Event.Board.GridSize)
	render.SetClear(term.IsTerminal(int(os.Stdout.Fd())))
	play(render, frames, *speed)
	fmt.Printf("\n  📼 %s: %d frames\n", filepath.Base(path), len(frames))
}

// play renders frames keeping their recorded spacing
func play(render *renderer.TerminalRenderer, frames []game.Frame, speed float64) {
	if speed <= 0 {
		speed = 1
	}
	for i, frame := range frames {
		if i > 0 {
			gap := frame.Time.Sub(frames[i-1].Time)
			// Long idle or paused stretches are capped at one second
			if gap > time.Second {
				gap = time.Second
			}
			time.Sleep(time.Duration(float64(gap) / speed))
		}
		render.Render(frame.Event.Board, frame.Event.HUD)
	}
}

func newestRecording(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "game_*.jsonl"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no recordings in %s", dir)
	}

	type rec struct {
		path string
		mod  time.Time
	}
	recs := make([]rec, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		recs = append(recs, rec{path: m, mod: info.ModTime()})
	}
	if len(recs) == 0 {
		return "", fmt.Errorf("no readable recordings in %s", dir)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].mod.After(recs[j].mod) })
	return recs[0].path, nil
}
