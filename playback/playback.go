// Package playback renders resolved chords as sine tones with a fixed
// pluck-style envelope. It is a consumer of the core's frequencies; nothing
// in the core depends on the audio device being available.
package playback

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate    = 44100
	attackSeconds = 0.02
	decaySeconds  = 1.4
	voiceGain     = 0.2
	maxPlayers    = 32
)

// Engine owns the audio output device. The oto context is opened lazily on
// the first play and reused for the life of the process.
type Engine struct {
	once    sync.Once
	ctx     *oto.Context
	ctxErr  error
	mu      sync.Mutex
	players map[*oto.Player]struct{}
}

func NewEngine() *Engine {
	return &Engine{players: make(map[*oto.Player]struct{})}
}

func (e *Engine) context() (*oto.Context, error) {
	e.once.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		}
		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			e.ctxErr = fmt.Errorf("cannot create audio context: %w", err)
			return
		}
		<-ready
		e.ctx = ctx
	})
	return e.ctx, e.ctxErr
}

// envelope is the per-voice gain at t seconds: a short linear attack, then
// exponential decay reaching -60 dB at the end of the tone.
func envelope(t float64) float64 {
	if t < attackSeconds {
		return t / attackSeconds
	}
	return math.Pow(10, -3*(t-attackSeconds)/(decaySeconds-attackSeconds))
}

// Render mixes all voices into one mono 16-bit LE buffer. Exported so the
// synthesis is testable without an audio device.
func Render(freqs []float64) []byte {
	numSamples := int(sampleRate * decaySeconds)
	mix := make([]float64, numSamples)
	for _, f := range freqs {
		phase := 0.0
		step := 2 * math.Pi * f / sampleRate
		for i := range mix {
			mix[i] += voiceGain * envelope(float64(i)/sampleRate) * math.Sin(phase)
			phase += step
		}
	}
	return toPCM16(mix)
}

func toPCM16(samples []float64) []byte {
	buf := make([]byte, 2*len(samples))
	for i, v := range samples {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(int16(v*math.MaxInt16)))
	}
	return buf
}

// PlayChord starts every voice at once and returns without waiting for the
// tone to finish. Finished players are reaped on the next call.
func (e *Engine) PlayChord(freqs []float64) error {
	if len(freqs) == 0 {
		return nil
	}
	ctx, err := e.context()
	if err != nil {
		return err
	}

	p := ctx.NewPlayer(bytes.NewReader(Render(freqs)))

	e.mu.Lock()
	for sp := range e.players {
		if !sp.IsPlaying() {
			sp.Close()
			delete(e.players, sp)
		}
	}
	if len(e.players) >= maxPlayers {
		e.mu.Unlock()
		p.Close()
		return nil
	}
	e.players[p] = struct{}{}
	e.mu.Unlock()

	p.Play()
	return nil
}

func (e *Engine) PlayNote(freq float64) error {
	return e.PlayChord([]float64{freq})
}

// Wait blocks until every active player has drained. The CLI uses it to keep
// the process alive for the length of the tone.
func (e *Engine) Wait() {
	for {
		e.mu.Lock()
		active := 0
		for sp := range e.players {
			if sp.IsPlaying() {
				active++
			}
		}
		e.mu.Unlock()
		if active == 0 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
}
