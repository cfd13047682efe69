package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate used by Player and the default cues.
const SampleRate = beep.SampleRate(44100)

// Cue timing.
const (
	FoundNote1    = 70 * time.Millisecond
	FoundNote2    = 140 * time.Millisecond
	NotFoundBuzz  = 250 * time.Millisecond
	buzzFrequency = 110.0
	cueVolume     = 0.4
)

// FoundCue is a rising two-note chime (E5 then B5).
func FoundCue(sr beep.SampleRate) beep.Streamer {
	lo, err := generators.SineTone(sr, 659.25)
	if err != nil {
		return beep.Silence(sr.N(FoundNote1 + FoundNote2))
	}
	hi, err := generators.SineTone(sr, 987.77)
	if err != nil {
		return beep.Silence(sr.N(FoundNote1 + FoundNote2))
	}

	return newVolume(beep.Seq(
		beep.Take(sr.N(FoundNote1), lo),
		beep.Take(sr.N(FoundNote2), hi),
	), cueVolume)
}

// NotFoundCue is a short low square-wave buzz that fades out.
func NotFoundCue(sr beep.SampleRate) beep.Streamer {
	n := sr.N(NotFoundBuzz)

	return newVolume(beep.Take(n, &buzz{sr: sr, freq: buzzFrequency, total: n}), cueVolume)
}

// newVolume scales s linearly; vol <= 0 silences it.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}

	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// buzz is a square wave with a linear fade over total samples.
type buzz struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func (b *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.sr)
		v := 0.5
		if math.Sin(2*math.Pi*b.freq*t) < 0 {
			v = -0.5
		}
		if b.total > 0 {
			v *= math.Max(0, 1-float64(b.pos)/float64(b.total))
		}
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}

	return len(samples), true
}

func (b *buzz) Err() error { return nil }
