// Package sound plays the short effects requested through PlaySound messages.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/message"
)

// Options configure the player.
type Options struct {
	SampleRate int
	Volume     float64 // 0 mutes, 1 is unchanged
}

// Subscriber registers for bus messages.
type Subscriber interface {
	AddSubscriber(id string, types []message.Type, handler message.Handler)
	RemoveSubscriber(id string, types []message.Type)
}

const subscriberID = "Sound"

// Player mixes effects into the speaker. Until Init succeeds it only logs what it would
// play.
type Player struct {
	rate        beep.SampleRate
	volume      float64
	effects     map[string]Effect
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player with the default effects.
func NewPlayer(opts Options) *Player {
	rate := opts.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		rate:    beep.SampleRate(rate),
		volume:  opts.Volume,
		effects: DefaultEffects(),
		mixer:   &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Register adds or replaces an effect.
func (p *Player) Register(name string, e Effect) {
	p.effects[name] = e
}

// Subscribe makes the player react to PlaySound messages.
func (p *Player) Subscribe(bus Subscriber) {
	bus.AddSubscriber(subscriberID, []message.Type{message.TypePlaySound}, p.onMessage)
}

// Unsubscribe stops reacting to PlaySound messages.
func (p *Player) Unsubscribe(bus Subscriber) {
	bus.RemoveSubscriber(subscriberID, []message.Type{message.TypePlaySound})
}

func (p *Player) onMessage(msg message.Message) {
	if m, ok := msg.(message.PlaySound); ok {
		p.Play(m.Sound)
	}
}

// Play starts an effect by name. Unknown names are logged.
func (p *Player) Play(name string) {
	s, ok := p.streamer(name)
	if !ok {
		zap.L().Warn("Unknown sound", zap.String("sound", name))
		return
	}
	if !p.initialized {
		zap.L().Debug("Sound disabled", zap.String("sound", name))
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) streamer(name string) (beep.Streamer, bool) {
	e, ok := p.effects[name]
	if !ok {
		return nil, false
	}
	return withVolume(e(p.rate), p.volume), true
}

// Close silences everything still playing.
func (p *Player) Close() {
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
