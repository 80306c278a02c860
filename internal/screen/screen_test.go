package screen

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestScreen_DrawSprite(t *testing.T) {
	s := New()

	collision := s.DrawSprite(0, 0, []byte{0b11110000})
	assert.False(t, collision)

	fb := s.FrameBuffer()
	for x := 0; x < 4; x++ {
		assert.True(t, fb[0][x], "pixel %d should be on", x)
	}
	for x := 4; x < 8; x++ {
		assert.False(t, fb[0][x], "pixel %d should be off", x)
	}
}

func TestScreen_DrawSpriteAllZeroBits(t *testing.T) {
	s := New()

	collision := s.DrawSprite(10, 10, []byte{0x00, 0x00, 0x00})
	assert.False(t, collision)

	fb := s.FrameBuffer()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			assert.False(t, fb[y][x], "pixel %d,%d should be off", x, y)
		}
	}
}

func TestScreen_DrawSpriteXORSelfInverse(t *testing.T) {
	s := New()

	sprite := []byte{0xFF, 0x81, 0xFF}

	collision := s.DrawSprite(5, 5, sprite)
	assert.False(t, collision)

	// drawing the same sprite again toggles every pixel back off
	collision = s.DrawSprite(5, 5, sprite)
	assert.True(t, collision)

	fb := s.FrameBuffer()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			assert.False(t, fb[y][x], "pixel %d,%d should be off", x, y)
		}
	}
}

func TestScreen_DrawSpriteOriginWraparound(t *testing.T) {
	s := New()

	// origin wraps modulo the screen dimensions
	collision := s.DrawSprite(Width+2, Height+3, []byte{0b10000000})
	assert.False(t, collision)

	fb := s.FrameBuffer()
	assert.True(t, fb[3][2])
}

func TestScreen_DrawSpriteClipping(t *testing.T) {
	s := New()

	// rows and columns past the grid bounds are clipped, not wrapped
	collision := s.DrawSprite(Width-2, Height-1, []byte{0xFF, 0xFF})
	assert.False(t, collision)

	fb := s.FrameBuffer()
	assert.True(t, fb[Height-1][Width-2])
	assert.True(t, fb[Height-1][Width-1])

	// nothing wrapped to the left edge or the top row
	for x := 0; x < Width-2; x++ {
		assert.False(t, fb[Height-1][x], "pixel %d should be off", x)
	}
	for x := 0; x < Width; x++ {
		assert.False(t, fb[0][x], "pixel %d should be off", x)
	}
}

func TestScreen_Clear(t *testing.T) {
	s := New()

	s.DrawSprite(0, 0, []byte{0xFF})
	s.Clear()

	fb := s.FrameBuffer()
	for x := 0; x < 8; x++ {
		assert.False(t, fb[0][x], "pixel %d should be off", x)
	}
}

func TestScreen_FrameBufferIsSnapshot(t *testing.T) {
	s := New()

	fb := s.FrameBuffer()
	s.DrawSprite(0, 0, []byte{0x80})

	// the previously taken snapshot must not change
	assert.False(t, fb[0][0])
	assert.True(t, s.FrameBuffer()[0][0])
}
