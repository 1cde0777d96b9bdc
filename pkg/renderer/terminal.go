package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/nonono109/snaker/pkg/config"
	"github.com/nonono109/snaker/pkg/game"
)

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	out    io.Writer
	board  [][]int
	buffer strings.Builder
	clear  bool
}

// Cell types for the board
const (
	cellEmpty = iota
	cellHead
	cellBody
	cellFood
)

// NewTerminalRenderer creates a renderer for a size x size board writing to out
func NewTerminalRenderer(out io.Writer, size int) *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, size)
	for i := range board {
		board[i] = make([]int, size)
	}

	return &TerminalRenderer{
		out:   out,
		board: board,
		clear: true,
	}
}

// SetClear enables or disables the ANSI clear-screen prefix
func (r *TerminalRenderer) SetClear(clear bool) {
	r.clear = clear
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

// Render draws the board and the HUD overlay
func (r *TerminalRenderer) Render(b game.Board, hud game.HUD) error {
	if len(r.board) != b.GridSize {
		r.board = make([][]int, b.GridSize)
		for i := range r.board {
			r.board[i] = make([]int, b.GridSize)
		}
	}

	r.buffer.Reset()
	if r.clear {
		r.buffer.WriteString("\033[H\033[2J\033[3J")
	}
	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	grid := game.Grid{Size: b.GridSize}
	if grid.Contains(b.Food) {
		r.board[b.Food.Y][b.Food.X] = cellFood
	}
	for i, p := range b.Snake {
		if !grid.Contains(p) {
			continue
		}
		if i == 0 {
			r.board[p.Y][p.X] = cellHead
		} else {
			r.board[p.Y][p.X] = cellBody
		}
	}

	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n")
	fmt.Fprintf(&r.buffer, "  Score: %d  |  High Score: %d  |  Difficulty: %s\n\n",
		hud.Score, hud.HighScore, hud.Difficulty)

	wall := strings.Repeat(config.CharWall, b.GridSize+2)
	r.buffer.WriteString("  " + wall + "\n")
	for _, row := range r.board {
		r.buffer.WriteString("  " + config.CharWall)
		for _, cell := range row {
			switch cell {
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			default:
				r.buffer.WriteString(config.CharEmpty)
			}
		}
		r.buffer.WriteString(config.CharWall + "\n")
	}
	r.buffer.WriteString("  " + wall + "\n")

	r.writeOverlay(hud)

	_, err := io.WriteString(r.out, r.buffer.String())
	return err
}

func (r *TerminalRenderer) writeOverlay(hud game.HUD) {
	switch hud.Status {
	case game.Idle:
		r.buffer.WriteString("\n  Difficulty: ")
		for i, d := range game.Difficulties {
			label := fmt.Sprintf("%d) %s", i+1, d)
			if d == hud.Difficulty {
				label = "[" + label + "]"
			}
			r.buffer.WriteString(label + "  ")
		}
		r.buffer.WriteString("\n  Press Enter or Space to start\n")
	case game.Playing:
		r.buffer.WriteString("\n  Use WASD or Arrow keys to move. Space to pause, Q to quit\n")
	case game.Paused:
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press Space to continue\n")
	case game.GameOver:
		if hud.Cleared {
			r.buffer.WriteString("\n  🏁 BOARD CLEARED!")
		} else {
			r.buffer.WriteString("\n  💀 GAME OVER!")
		}
		fmt.Fprintf(&r.buffer, " Final score: %d\n", hud.Score)
		if hud.NewBest {
			r.buffer.WriteString("  🏆 New high score!\n")
		}
		r.buffer.WriteString("  Press Enter or Space to restart, Q to quit\n")
	}

	if hud.Warning != "" {
		r.buffer.WriteString("  ⚠️  " + hud.Warning + "\n")
	}
}
