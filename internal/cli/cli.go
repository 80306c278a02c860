// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
)

// ParseFlags parses command line flags and returns program options and
// the quirk configuration for the machine.
func ParseFlags() (options.Program, chip8.Quirks, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	var quirks chip8.Quirks
	readOptionFlags(flags, &opts)
	readQuirkFlags(flags, &quirks)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.ROM == "") {
		return opts, quirks, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, quirks, err
	}

	if err := validateOptions(opts); err != nil {
		return opts, quirks, err
	}

	if opts.ROM == "" {
		opts.ROM = args[0]
	}

	return opts, quirks, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8emu [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file to run as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions validates option values
func validateOptions(opts options.Program) error {
	if opts.Scale < 1 {
		return fmt.Errorf("invalid screen scale %d, must be at least 1", opts.Scale)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.ROM, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Font, "font", "", "name of a font file overriding the built-in font")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "screen scale factor")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

// readQuirkFlags registers the quirk flags. The defaults match the
// CHIP-48 interpreter behavior.
func readQuirkFlags(flags *flag.FlagSet, quirks *chip8.Quirks) {
	flags.BoolVar(&quirks.AssignBeforeShift, "shift-assign", true,
		"load the Y register into X before shift instructions")
	flags.BoolVar(&quirks.SetFlagOnIndexOverflow, "index-overflow-flag", true,
		"set VF when adding to the index register overflows the addressing range")
	flags.BoolVar(&quirks.ModifyIndexOnDumpOrLoad, "index-advance", false,
		"advance the index register during register dump and load instructions")
}
