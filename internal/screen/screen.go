// Package screen implements the monochrome CHIP-8 framebuffer.
package screen

// Screen dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Screen holds the 64x32 grid of binary pixel state.
// Pixels are addressed as frameBuffer[y][x], x horizontal, y vertical.
type Screen struct {
	frameBuffer [Height][Width]bool
}

// New returns a new screen with all pixels turned off.
func New() *Screen {
	return &Screen{}
}

// FrameBuffer returns a snapshot of the current pixel state.
func (s *Screen) FrameBuffer() [Height][Width]bool {
	return s.frameBuffer
}

// DrawSprite composites the sprite rows onto the grid using XOR, one byte
// per row of 8 pixels, most significant bit leftmost. The origin wraps
// around the screen dimensions, rows and columns extending past the grid
// bounds are clipped. Returns true if a pixel was turned off in the
// process, the caller sets VF to 1 in that case.
func (s *Screen) DrawSprite(xPos, yPos byte, spriteData []byte) bool {
	xPos %= Width
	yPos %= Height

	pixelTurnedOff := false

	for byteIdx, spriteByte := range spriteData {
		curY := yPos + byte(byteIdx)
		if curY >= Height {
			continue // clip instead of wrapping
		}

		for bitIdx := byte(0); bitIdx < 8; bitIdx++ {
			curX := xPos + bitIdx
			if curX >= Width {
				continue // clip instead of wrapping
			}

			// sprite pixels are stored most significant bit first
			bit := (spriteByte>>(7-bitIdx))&1 == 1
			if !bit {
				continue
			}

			curVal := s.frameBuffer[curY][curX]
			s.frameBuffer[curY][curX] = !curVal
			pixelTurnedOff = pixelTurnedOff || curVal
		}
	}

	return pixelTurnedOff
}

// Clear resets all pixels to off.
func (s *Screen) Clear() {
	s.frameBuffer = [Height][Width]bool{}
}
