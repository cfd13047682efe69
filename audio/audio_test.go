package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to completion and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = append(out, smp[0])
		}
		if !ok {
			require.NoError(t, s.Err())
			return out
		}
	}
	t.Fatal("streamer did not terminate")

	return nil
}

func peak(samples []float64) float64 {
	m := 0.0
	for _, v := range samples {
		m = math.Max(m, math.Abs(v))
	}

	return m
}

func TestFoundCue(t *testing.T) {
	samples := drain(t, FoundCue(SampleRate))
	assert.Len(t, samples, SampleRate.N(FoundNote1)+SampleRate.N(FoundNote2))
	assert.Greater(t, peak(samples), 0.1, "audible")
	assert.LessOrEqual(t, peak(samples), 1.0, "no clipping")
}

func TestNotFoundCue(t *testing.T) {
	samples := drain(t, NotFoundCue(SampleRate))
	require.Len(t, samples, SampleRate.N(NotFoundBuzz))
	assert.Greater(t, peak(samples[:100]), 0.1)
	assert.Less(t, peak(samples[len(samples)-100:]), peak(samples[:100]), "fades out")
}

func TestNewVolume(t *testing.T) {
	assert.Equal(t, 0.0, peak(drain(t, newVolume(beep.Take(100, &buzz{sr: SampleRate, freq: 100}), 0))))

	half := drain(t, newVolume(beep.Take(100, &buzz{sr: SampleRate, freq: 100}), 0.5))
	assert.InDelta(t, 0.25, peak(half), 1e-9)
}

// TestPlayerGracefulDegradation verifies cues are dropped silently before Init.
func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer()
	assert.False(t, p.Enabled())
	assert.NotPanics(t, func() {
		p.Found()
		p.NotFound()
		p.Close()
	})
	assert.False(t, p.Enabled())
}
