package cli

import (
	"os"
	"testing"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOpts   options.Program
		wantQuirks chip8.Quirks
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			wantOpts: options.Program{
				ROM:   "test.ch8",
				Scale: options.DefaultScale,
			},
			wantQuirks: chip8.Quirks{
				AssignBeforeShift:      true,
				SetFlagOnIndexOverflow: true,
			},
		},
		{
			name: "custom scale and quirks",
			args: []string{"prog", "-scale", "10", "-shift-assign=false", "-index-advance", "test.ch8"},
			wantOpts: options.Program{
				ROM:   "test.ch8",
				Scale: 10,
			},
			wantQuirks: chip8.Quirks{
				SetFlagOnIndexOverflow:  true,
				ModifyIndexOnDumpOrLoad: true,
			},
		},
		{
			name: "input flag instead of positional argument",
			args: []string{"prog", "-i", "test.ch8", "-font", "chip48.font", "-q"},
			wantOpts: options.Program{
				ROM:   "test.ch8",
				Font:  "chip48.font",
				Scale: options.DefaultScale,
				Quiet: true,
			},
			wantQuirks: chip8.Quirks{
				AssignBeforeShift:      true,
				SetFlagOnIndexOverflow: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()
			os.Args = tt.args

			opts, quirks, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOpts, opts)
			assert.Equal(t, tt.wantQuirks, quirks)
		})
	}
}

func TestParseFlags_MissingROM(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"prog"}

	_, _, err := ParseFlags()
	assert.Error(t, err)

	usageErr, ok := err.(*UsageError)
	assert.True(t, ok)
	assert.NotNil(t, usageErr)
}

func TestParseFlags_InvalidScale(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"prog", "-scale", "0", "test.ch8"}

	_, _, err := ParseFlags()
	assert.Error(t, err)
}
