package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chosenoffset.com/forestadventure/internal/core/geom"
)

var (
	// ErrPropertyMissing is returned when a property was never registered.
	ErrPropertyMissing = errors.New("property missing")
	// ErrPropertyType is returned when a property holds another type than requested.
	ErrPropertyType = errors.New("property has unexpected type")
)

// PropertyKey names a capability in an entity's property store.
type PropertyKey int

const (
	PropertyTransform PropertyKey = iota + 1
	PropertyFaceDirection
	PropertyMovement
	PropertyCamera
	PropertyScore
	PropertyTimer
)

var propertyNames = map[PropertyKey]string{
	PropertyTransform:     "Transform",
	PropertyFaceDirection: "FaceDirection",
	PropertyMovement:      "Movement",
	PropertyCamera:        "Camera",
	PropertyScore:         "Score",
	PropertyTimer:         "Timer",
}

func (k PropertyKey) String() string {
	if name, ok := propertyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PropertyKey(%d)", int(k))
}

// Store holds the typed properties of one entity.
type Store struct {
	props map[PropertyKey]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{props: make(map[PropertyKey]any)}
}

// Has reports whether key is registered.
func (s *Store) Has(key PropertyKey) bool {
	_, ok := s.props[key]
	return ok
}

// Add registers v under key, replacing any previous value, and returns v.
func Add[T any](s *Store, key PropertyKey, v T) T {
	s.props[key] = v
	return v
}

// Get returns the value under key as a T.
func Get[T any](s *Store, key PropertyKey) (T, error) {
	var zero T
	raw, ok := s.props[key]
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrPropertyMissing, key)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T, want %T", ErrPropertyType, key, raw, zero)
	}
	return v, nil
}

// Transform is the placement of an entity in the world.
type Transform struct {
	Position geom.Vec
	Scale    geom.Vec
	Rotation float64 // degrees
}

// Facing is the direction an entity looks in.
type Facing struct {
	Dir FaceDirection
}

// Score counts what the player collected.
type Score struct {
	Coins int
}

// Timer accumulates time towards a duration.
type Timer struct {
	Elapsed  float64
	Duration float64
}

// Reset restarts the timer with a new duration.
func (t *Timer) Reset(duration float64) {
	t.Elapsed = 0
	t.Duration = duration
}

// Add advances the timer and reports whether the duration was reached.
func (t *Timer) Add(dt float64) bool {
	t.Elapsed += dt
	return t.Elapsed >= t.Duration
}

// PropertyData is the snapshot an entity is created from.
type PropertyData struct {
	Type       Type
	Position   geom.Vec
	Size       geom.Vec
	Scale      geom.Vec
	Velocity   float64
	FaceDir    FaceDirection
	Properties Properties
}

// Properties are the free-form string properties of a map object.
type Properties map[string]string

// GetString returns the property or defaultVal when absent.
func (p Properties) GetString(key, defaultVal string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return defaultVal
}

// GetBool returns the property parsed as a bool or defaultVal when absent or malformed.
func (p Properties) GetBool(key string, defaultVal bool) bool {
	if v, ok := p[key]; ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return defaultVal
}

// GetInt returns the property parsed as an int or defaultVal when absent or malformed.
func (p Properties) GetInt(key string, defaultVal int) int {
	if v, ok := p[key]; ok {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetFloat returns the property parsed as a float or defaultVal when absent or malformed.
func (p Properties) GetFloat(key string, defaultVal float64) float64 {
	if v, ok := p[key]; ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return defaultVal
}
