// Package keypad implements the 16-key CHIP-8 keypad state.
package keypad

// NumKeys is the number of keys on a CHIP-8 keypad.
const NumKeys = 16

// Keypad holds the pressed state of all 16 keys.
// The zero value is a keypad with no keys pressed. It is a plain value
// type, a fresh snapshot is loaded into the machine once per frame.
type Keypad struct {
	keyStates [NumKeys]bool
}

// New returns a keypad with no keys pressed.
func New() Keypad {
	return Keypad{}
}

// Set marks the key with the given ID (0x0-0xF) as pressed.
func (k *Keypad) Set(keyID byte) {
	k.keyStates[keyID] = true
}

// Unset marks the key with the given ID (0x0-0xF) as released.
func (k *Keypad) Unset(keyID byte) {
	k.keyStates[keyID] = false
}

// IsPressed returns whether the key with the given ID is currently pressed.
func (k Keypad) IsPressed(keyID byte) bool {
	return k.keyStates[keyID]
}

// FirstPressed returns the lowest pressed key ID, if any key is pressed.
func (k Keypad) FirstPressed() (byte, bool) {
	for keyID, pressed := range k.keyStates {
		if pressed {
			return byte(keyID), true
		}
	}
	return 0, false
}
