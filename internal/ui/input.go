package ui

import (
	"github.com/retroenv/chip8emu/internal/keypad"
	"github.com/veandco/go-sdl2/sdl"
)

// keyMapping maps the keyboard to the original 4x4 keypad layout:
//
//	keypad       keyboard
//	1 2 3 C      1 2 3 4
//	4 5 6 D      Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
//
// Z can also be Y for QWERTZ layouts.
var keyMapping = map[sdl.Keycode]byte{
	sdl.K_1: 0x1,
	sdl.K_2: 0x2,
	sdl.K_3: 0x3,
	sdl.K_4: 0xC,
	sdl.K_q: 0x4,
	sdl.K_w: 0x5,
	sdl.K_e: 0x6,
	sdl.K_r: 0xD,
	sdl.K_a: 0x7,
	sdl.K_s: 0x8,
	sdl.K_d: 0x9,
	sdl.K_f: 0xE,
	sdl.K_z: 0xA,
	sdl.K_y: 0xA,
	sdl.K_x: 0x0,
	sdl.K_c: 0xB,
	sdl.K_v: 0xF,
}

// Input tracks the keypad state from SDL keyboard events.
type Input struct {
	keypad keypad.Keypad
}

// NewInput returns a new input state tracker.
func NewInput() *Input {
	return &Input{
		keypad: keypad.New(),
	}
}

// Poll processes all pending SDL events and returns the current keypad
// snapshot. The second return value is true when the user requested to
// quit, either by closing the window or pressing Escape.
func (i *Input) Poll() (keypad.Keypad, bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return i.keypad, true

		case *sdl.KeyboardEvent:
			if e.Keysym.Sym == sdl.K_ESCAPE {
				return i.keypad, true
			}

			keyID, ok := keyMapping[e.Keysym.Sym]
			if !ok {
				continue
			}

			switch e.Type {
			case sdl.KEYDOWN:
				i.keypad.Set(keyID)
			case sdl.KEYUP:
				i.keypad.Unset(keyID)
			}
		}
	}

	return i.keypad, false
}
