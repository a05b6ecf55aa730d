package game

import "image/color"

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// color is white with alpha falling from opaque to clear as the message expires.
func (m Message) color() color.Color {
	if m.MaxTime <= 0 {
		return textColor
	}
	a := uint8(255 * min(max(m.TimeLeft/m.MaxTime, 0), 1))
	return color.NRGBA{255, 255, 255, a}
}
