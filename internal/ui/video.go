// Package ui implements the SDL2 presentation layer and the audio beeper.
package ui

import (
	"fmt"

	"github.com/retroenv/chip8emu/internal/screen"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "CHIP-8 emulator"

// Video renders the machine framebuffer into an SDL2 window, each CHIP-8
// pixel drawn as a scaled rectangle.
type Video struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
}

// NewVideo creates a centered window sized to the screen dimensions
// multiplied by the scale factor. SDL has to be initialized before.
func NewVideo(scale int) (*Video, error) {
	window, err := sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(screen.Width*scale), int32(screen.Height*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	v := &Video{
		window:   window,
		renderer: renderer,
		scale:    int32(scale),
	}

	if err := renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		v.Close()
		return nil, fmt.Errorf("setting draw color: %w", err)
	}
	if err := renderer.Clear(); err != nil {
		v.Close()
		return nil, fmt.Errorf("clearing renderer: %w", err)
	}
	renderer.Present()

	return v, nil
}

// Render draws a framebuffer snapshot.
func (v *Video) Render(frameBuffer [screen.Height][screen.Width]bool) error {
	for yPos, row := range frameBuffer {
		for xPos, pixelOn := range row {
			var val uint8
			if pixelOn {
				val = 255
			}
			if err := v.renderer.SetDrawColor(val, val, val, 255); err != nil {
				return fmt.Errorf("setting draw color: %w", err)
			}

			rect := sdl.Rect{
				X: int32(xPos) * v.scale,
				Y: int32(yPos) * v.scale,
				W: v.scale,
				H: v.scale,
			}
			if err := v.renderer.FillRect(&rect); err != nil {
				return fmt.Errorf("drawing pixel %d,%d: %w", xPos, yPos, err)
			}
		}
	}

	v.renderer.Present()
	return nil
}

// Close destroys the renderer and the window.
func (v *Video) Close() {
	if v.renderer != nil {
		_ = v.renderer.Destroy()
	}
	if v.window != nil {
		_ = v.window.Destroy()
	}
}
