package ui

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// Audio tone parameters.
const (
	sampleRate    = 44100
	toneFrequency = 440.0
	toneVolume    = 0.05
)

// Beeper plays a square wave tone while the machine's sound timer is
// running. The tone is toggled once per frame from the frame loop.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	wave   *squareWave
}

// NewBeeper opens the audio device and starts the player. The wave
// generator produces silence until the tone is switched on.
func NewBeeper() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	wave := &squareWave{}
	player := ctx.NewPlayer(wave)
	player.Play()

	return &Beeper{
		ctx:    ctx,
		player: player,
		wave:   wave,
	}, nil
}

// SetPlaying switches the tone on or off.
func (b *Beeper) SetPlaying(playing bool) {
	b.wave.playing.Store(playing)
}

// Close stops the player.
func (b *Beeper) Close() {
	_ = b.player.Close()
}

// squareWave generates a 440 Hz square wave as float32 mono samples.
// Read is called from the audio thread, the playing flag is the only
// state shared with the frame loop.
type squareWave struct {
	playing atomic.Bool
	phase   float32
}

func (w *squareWave) Read(p []byte) (int, error) {
	numSamples := len(p) / 4
	phaseInc := float32(toneFrequency) / sampleRate

	for i := 0; i < numSamples; i++ {
		var sample float32
		if w.playing.Load() {
			if w.phase <= 0.5 {
				sample = toneVolume
			} else {
				sample = -toneVolume
			}
			w.phase += phaseInc
			if w.phase >= 1 {
				w.phase--
			}
		}

		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(sample))
	}

	return numSamples * 4, nil
}
