// Package font provides the CHIP-8 font sprite data.
// The font occupies the reserved memory region starting at 0x050 and
// contains the 16 hexadecimal characters, 5 bytes of 8 pixel rows each.
package font

import (
	"fmt"
	"os"
)

// Font layout constants.
const (
	NumCharacters     = 16
	BytesPerCharacter = 5

	// Size is the total size of the font data in bytes.
	Size = NumCharacters * BytesPerCharacter
)

// Font holds the sprite rows of all 16 hexadecimal characters.
type Font [NumCharacters][BytesPerCharacter]byte

// Default returns the CHIP-48 font used when no font file is given.
func Default() Font {
	return Font{
		{0xF0, 0x90, 0x90, 0x90, 0xF0}, // 0
		{0x20, 0x60, 0x20, 0x20, 0x70}, // 1
		{0xF0, 0x10, 0xF0, 0x80, 0xF0}, // 2
		{0xF0, 0x10, 0xF0, 0x10, 0xF0}, // 3
		{0x90, 0x90, 0xF0, 0x10, 0x10}, // 4
		{0xF0, 0x80, 0xF0, 0x10, 0xF0}, // 5
		{0xF0, 0x80, 0xF0, 0x90, 0xF0}, // 6
		{0xF0, 0x10, 0x20, 0x40, 0x40}, // 7
		{0xF0, 0x90, 0xF0, 0x90, 0xF0}, // 8
		{0xF0, 0x90, 0xF0, 0x10, 0xF0}, // 9
		{0xF0, 0x90, 0xF0, 0x90, 0x90}, // A
		{0xE0, 0x90, 0xE0, 0x90, 0xE0}, // B
		{0xF0, 0x80, 0x80, 0x80, 0xF0}, // C
		{0xE0, 0x90, 0x90, 0x90, 0xE0}, // D
		{0xF0, 0x80, 0xF0, 0x80, 0xF0}, // E
		{0xF0, 0x80, 0xF0, 0x80, 0x80}, // F
	}
}

// LoadFile reads font sprite data from a raw 80 byte font file.
func LoadFile(path string) (Font, error) {
	var f Font

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("reading font file %s: %w", path, err)
	}

	if len(data) != Size {
		return f, fmt.Errorf("invalid font file size %d, expected %d bytes", len(data), Size)
	}

	for i := 0; i < NumCharacters; i++ {
		copy(f[i][:], data[i*BytesPerCharacter:(i+1)*BytesPerCharacter])
	}
	return f, nil
}
