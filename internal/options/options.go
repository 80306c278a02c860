// Package options contains the program options.
package options

// DefaultScale is the default screen scale factor.
const DefaultScale = 20

// Program options of the emulator.
type Program struct {
	ROM  string // ROM file to run
	Font string // optional font file overriding the built-in font

	Scale int // screen scale factor

	Debug bool
	Quiet bool
}
