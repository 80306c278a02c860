// Package rom handles CHIP-8 program file loading operations.
package rom

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
)

// MaxProgramSize is the size of the user program space, programs are
// loaded at 0x200 and can use memory up to the end of the address space.
const MaxProgramSize = chip8.MemorySize - chip8.ProgramStartAddress

// ErrNoData is returned when the ROM file contains no data.
var ErrNoData = errors.New("ROM file contains no data")

// Load reads a CHIP-8 program file as raw bytes. The content is not
// validated beyond the size of the user program space.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, ErrNoData
	}
	if len(data) > MaxProgramSize {
		return nil, fmt.Errorf("ROM size %d exceeds the program space of %d bytes", len(data), MaxProgramSize)
	}

	return data, nil
}
