package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Effect builds a fresh streamer for one sound.
type Effect func(rate beep.SampleRate) beep.Streamer

// tone is a sine tone of freq Hz fading out over d.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequencies above the Nyquist limit; play silence instead.
		return beep.Silence(rate.N(d))
	}
	return fadeOut(beep.Take(rate.N(d), sine), rate.N(d))
}

// noise is white noise fading out over d.
func noise(rate beep.SampleRate, d time.Duration, seed int64) beep.Streamer {
	r := rand.New(rand.NewSource(seed))
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := r.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	})
	return fadeOut(beep.Take(rate.N(d), src), rate.N(d))
}

// fadeOut scales s linearly from full volume to silence over total samples.
func fadeOut(s beep.Streamer, total int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			vol := 1 - float64(pos)/float64(total)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
			pos++
		}
		return n, ok
	})
}

// withVolume scales s by vol, where 1 leaves it unchanged.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// DefaultEffects returns the sounds the entities ask for.
func DefaultEffects() map[string]Effect {
	return map[string]Effect{
		"shoot": func(rate beep.SampleRate) beep.Streamer {
			return beep.Seq(
				tone(rate, 880, 30*time.Millisecond),
				tone(rate, 440, 60*time.Millisecond),
			)
		},
		"hit": func(rate beep.SampleRate) beep.Streamer {
			return beep.Mix(
				withVolume(noise(rate, 150*time.Millisecond, 1), 0.4),
				tone(rate, 90, 150*time.Millisecond),
			)
		},
		"coin": func(rate beep.SampleRate) beep.Streamer {
			return beep.Seq(
				tone(rate, 988, 60*time.Millisecond),
				tone(rate, 1319, 120*time.Millisecond),
			)
		},
	}
}
