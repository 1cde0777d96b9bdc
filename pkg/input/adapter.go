// Package input turns raw key presses and button taps into session actions.
package input

import (
	"strings"

	"github.com/nonono109/snaker/pkg/game"
)

// Symbol is a raw input token: a key name, a letter or an on-screen button id
type Symbol string

// Named symbols
const (
	ArrowUp    Symbol = "ArrowUp"
	ArrowDown  Symbol = "ArrowDown"
	ArrowLeft  Symbol = "ArrowLeft"
	ArrowRight Symbol = "ArrowRight"
	Space      Symbol = " "
	Enter      Symbol = "Enter"
	Escape     Symbol = "Escape"
)

// Kind classifies a parsed symbol
type Kind int

const (
	KindSteer Kind = iota
	KindPause
	KindConfirm
	KindQuit
)

// Action is what a symbol asks for
type Action struct {
	Kind Kind
	Dir  game.Direction // Set for KindSteer
}

var directionSymbols = map[Symbol]game.Direction{
	ArrowUp:    game.Up,
	ArrowDown:  game.Down,
	ArrowLeft:  game.Left,
	ArrowRight: game.Right,
	"w":        game.Up,
	"s":        game.Down,
	"a":        game.Left,
	"d":        game.Right,
	// On-screen buttons
	"up":    game.Up,
	"down":  game.Down,
	"left":  game.Left,
	"right": game.Right,
}

// Parse maps a symbol to an action. Letters are matched case-insensitively.
func Parse(sym Symbol) (Action, bool) {
	if dir, ok := directionSymbols[sym]; ok {
		return Action{Kind: KindSteer, Dir: dir}, true
	}
	if len(sym) == 1 {
		if dir, ok := directionSymbols[Symbol(strings.ToLower(string(sym)))]; ok {
			return Action{Kind: KindSteer, Dir: dir}, true
		}
	}

	switch sym {
	case Space, "pause":
		return Action{Kind: KindPause}, true
	case Enter, "start", "restart":
		return Action{Kind: KindConfirm}, true
	case Escape, "q", "Q":
		return Action{Kind: KindQuit}, true
	}
	return Action{}, false
}

// Controller is the part of the session the adapter drives
type Controller interface {
	Status() game.Status
	Steer(d game.Direction) bool
	TogglePause() bool
	Start() bool
}

// Adapter routes symbols to a controller according to its status
type Adapter struct {
	ctrl Controller
}

// NewAdapter creates an adapter for ctrl
func NewAdapter(ctrl Controller) *Adapter {
	return &Adapter{ctrl: ctrl}
}

// Handle applies sym and reports whether the session accepted it.
// Quit is never applied here; clients check for it with IsQuit.
func (a *Adapter) Handle(sym Symbol) bool {
	action, ok := Parse(sym)
	if !ok {
		return false
	}

	status := a.ctrl.Status()
	switch action.Kind {
	case KindSteer:
		if status != game.Playing {
			return false
		}
		return a.ctrl.Steer(action.Dir)
	case KindPause:
		if status == game.Playing || status == game.Paused {
			return a.ctrl.TogglePause()
		}
		// Space doubles as confirm on the start and game over screens
		if sym == Space && (status == game.Idle || status == game.GameOver) {
			return a.ctrl.Start()
		}
		return false
	case KindConfirm:
		if status == game.Idle || status == game.GameOver {
			return a.ctrl.Start()
		}
		return false
	}
	return false
}

// IsQuit checks if the symbol is a quit command
func IsQuit(sym Symbol) bool {
	action, ok := Parse(sym)
	return ok && action.Kind == KindQuit
}
