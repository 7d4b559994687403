// internal/audio/effects.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveShape selects the oscillator waveform.
type WaveShape int

const (
	WaveSine WaveShape = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is a one-shot streamer: a waveform whose frequency glides from
// startFreq to endFreq over the duration, with a linear attack/release
// envelope baked in.
type sweep struct {
	startFreq float64
	endFreq   float64
	shape     WaveShape
	gain      float64
	phase     float64
	pos       int
	total     int
	attack    int
	release   int
	rate      beep.SampleRate
}

// NewSweep creates a frequency-sweep effect streamer.
func NewSweep(startFreq, endFreq float64, d time.Duration, shape WaveShape, rate beep.SampleRate, gain float64) beep.Streamer {
	total := rate.N(d)
	attack := rate.N(5 * time.Millisecond)
	release := rate.N(d / 3)
	if attack+release > total {
		attack = 0
		release = total
	}
	return &sweep{
		startFreq: startFreq,
		endFreq:   endFreq,
		shape:     shape,
		gain:      gain,
		total:     total,
		attack:    attack,
		release:   release,
		rate:      rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		t := float64(s.pos) / float64(s.total)
		freq := s.startFreq + (s.endFreq-s.startFreq)*t

		var val float64
		switch s.shape {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		env := 1.0
		if s.attack > 0 && s.pos < s.attack {
			env = float64(s.pos) / float64(s.attack)
		} else if remaining := s.total - s.pos; remaining < s.release {
			env = float64(remaining) / float64(s.release)
		}

		val *= env * s.gain
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// NewShotEffect is the player's fire sound: a quick downward square blip.
func NewShotEffect(rate beep.SampleRate) beep.Streamer {
	return NewSweep(880, 220, 90*time.Millisecond, WaveSquare, rate, 0.18)
}

// NewExplosionEffect is a decaying noise burst.
func NewExplosionEffect(rate beep.SampleRate) beep.Streamer {
	return NewSweep(0, 0, 300*time.Millisecond, WaveNoise, rate, 0.30)
}

// NewPlayerHitEffect is a long falling saw groan.
func NewPlayerHitEffect(rate beep.SampleRate) beep.Streamer {
	return NewSweep(220, 40, 400*time.Millisecond, WaveSaw, rate, 0.28)
}

// NewWaveClearEffect is a short rising three-note jingle.
func NewWaveClearEffect(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		return NewSweep(freq, freq, 110*time.Millisecond, WaveSine, rate, 0.25)
	}
	return beep.Seq(note(523.25), note(659.25), note(783.99))
}
