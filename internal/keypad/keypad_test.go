package keypad

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypad_SetUnset(t *testing.T) {
	k := New()

	assert.False(t, k.IsPressed(0x5))

	k.Set(0x5)
	assert.True(t, k.IsPressed(0x5))
	assert.False(t, k.IsPressed(0x6))

	k.Unset(0x5)
	assert.False(t, k.IsPressed(0x5))
}

func TestKeypad_FirstPressed(t *testing.T) {
	tests := []struct {
		name    string
		keys    []byte
		want    byte
		pressed bool
	}{
		{name: "no keys pressed", keys: nil, want: 0, pressed: false},
		{name: "single key", keys: []byte{0x7}, want: 0x7, pressed: true},
		{name: "lowest index wins", keys: []byte{0xA, 0x3, 0xF}, want: 0x3, pressed: true},
		{name: "key zero", keys: []byte{0x0, 0x1}, want: 0x0, pressed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := New()
			for _, keyID := range tt.keys {
				k.Set(keyID)
			}

			keyID, pressed := k.FirstPressed()
			assert.Equal(t, tt.pressed, pressed)
			assert.Equal(t, tt.want, keyID)
		})
	}
}
