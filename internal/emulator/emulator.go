// Package emulator ties the CHIP-8 machine to the SDL2 frontend and runs
// the frame loop.
package emulator

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/font"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/rom"
	"github.com/retroenv/chip8emu/internal/ui"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// FramesPerSecond is the display refresh rate, the delay and sound timers
// are decremented at this rate.
const FramesPerSecond = 60

// PrintBanner prints application version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8emu", log.String("version", buildinfo.Version(version, commit, date)))
}

// Run loads the ROM and font into a new machine and executes it until the
// program ends, the user quits, an instruction fails or the context gets
// cancelled.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, quirks chip8.Quirks) error {
	program, err := rom.Load(opts.ROM)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	fontData := font.Default()
	if opts.Font != "" {
		fontData, err = font.LoadFile(opts.Font)
		if err != nil {
			return fmt.Errorf("loading font: %w", err)
		}
	}

	machine := chip8.New(quirks)
	machine.LoadFont(fontData)
	machine.LoadBytes(program, chip8.ProgramStartAddress)
	if opts.Debug {
		machine.SetTraceLogger(logger)
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}
	defer sdl.Quit()

	video, err := ui.NewVideo(opts.Scale)
	if err != nil {
		return fmt.Errorf("creating video output: %w", err)
	}
	defer video.Close()

	input := ui.NewInput()

	beeper, err := ui.NewBeeper()
	if err != nil {
		logger.Error("Audio output not available", log.Err(err))
	} else {
		defer beeper.Close()
	}

	logger.Info("Running ROM",
		log.String("file", opts.ROM),
		log.Int("bytes", len(program)),
	)

	return runFrameLoop(ctx, machine, video, input, beeper, logger)
}

func runFrameLoop(ctx context.Context, machine *chip8.Chip8, video *ui.Video,
	input *ui.Input, beeper *ui.Beeper, logger *log.Logger) error {

	frameDuration := time.Second / FramesPerSecond
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		keys, quit := input.Poll()
		if quit {
			return nil
		}
		machine.LoadKeypad(keys)

		if err := machine.RunFrame(frameDuration); err != nil {
			logger.Debug("Machine state", log.String("dump", machine.DebugString()))
			return fmt.Errorf("executing frame: %w", err)
		}

		if beeper != nil {
			beeper.SetPlaying(machine.PlayingSound())
		}

		if err := video.Render(machine.FrameBuffer()); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}

		if machine.ReachedEnd() {
			logger.Info("Program ended")
			return nil
		}
	}
}
