package input

import (
	"github.com/eiannone/keyboard"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan Symbol
	done      chan struct{}
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan Symbol),
		done:      make(chan struct{}),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			sym, ok := ToSymbol(KeyInput{Char: char, Key: key})
			if !ok {
				continue
			}
			select {
			case h.inputChan <- sym:
			case <-h.done:
				return
			}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	close(h.done)
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan Symbol {
	return h.inputChan
}

// ToSymbol converts a raw key event into a symbol
func ToSymbol(in KeyInput) (Symbol, bool) {
	switch in.Key {
	case keyboard.KeyArrowUp:
		return ArrowUp, true
	case keyboard.KeyArrowDown:
		return ArrowDown, true
	case keyboard.KeyArrowLeft:
		return ArrowLeft, true
	case keyboard.KeyArrowRight:
		return ArrowRight, true
	case keyboard.KeySpace:
		return Space, true
	case keyboard.KeyEnter:
		return Enter, true
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Escape, true
	}

	if in.Char != 0 {
		return Symbol(string(in.Char)), true
	}
	return "", false
}
