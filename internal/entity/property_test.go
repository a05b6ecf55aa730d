package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/forestadventure/internal/core/geom"
)

func TestStoreGet(t *testing.T) {
	s := NewStore()
	tr := Add(s, PropertyTransform, &Transform{Position: geom.Vec{X: 1, Y: 2}})

	got, err := Get[*Transform](s, PropertyTransform)
	require.NoError(t, err)
	assert.Same(t, tr, got)
	assert.True(t, s.Has(PropertyTransform))
}

func TestStoreGetMissing(t *testing.T) {
	_, err := Get[*Score](NewStore(), PropertyScore)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPropertyMissing))
	assert.Contains(t, err.Error(), "Score")
}

func TestStoreGetWrongType(t *testing.T) {
	s := NewStore()
	Add(s, PropertyScore, &Score{})

	_, err := Get[*Timer](s, PropertyScore)

	assert.ErrorIs(t, err, ErrPropertyType)
}

func TestTimer(t *testing.T) {
	var timer Timer
	timer.Reset(1)

	assert.False(t, timer.Add(0.5))
	assert.True(t, timer.Add(0.5))

	timer.Reset(2)
	assert.Zero(t, timer.Elapsed)
	assert.False(t, timer.Add(1))
}

func TestPropertiesGetters(t *testing.T) {
	props := Properties{
		"Map":     "cave.json",
		"Hidden":  "true",
		"Count":   " 3 ",
		"Speed":   "1.5",
		"Garbage": "x",
	}

	assert.Equal(t, "cave.json", props.GetString("Map", ""))
	assert.Equal(t, "none", props.GetString("Missing", "none"))
	assert.True(t, props.GetBool("Hidden", false))
	assert.False(t, props.GetBool("Garbage", false))
	assert.Equal(t, 3, props.GetInt("Count", 0))
	assert.Equal(t, 7, props.GetInt("Garbage", 7))
	assert.InDelta(t, 1.5, props.GetFloat("Speed", 0), 1e-9)

	var empty Properties
	assert.Equal(t, "d", empty.GetString("Map", "d"))
}

func TestMovementRevert(t *testing.T) {
	tr := &Transform{Position: geom.Vec{X: 10, Y: 10}}
	m := NewMovement(tr, 100)
	m.SetDirection(MoveRight)

	m.Update(0.5)
	assert.Equal(t, geom.Vec{X: 60, Y: 10}, tr.Position)

	m.Revert()
	assert.Equal(t, geom.Vec{X: 10, Y: 10}, tr.Position)
}

func TestFaceDirectionHelpers(t *testing.T) {
	assert.Equal(t, FaceUp, FaceDown.Opposite())
	assert.Equal(t, FaceLeft, FaceDown.Clockwise())
	assert.Equal(t, MoveRight, FaceRight.Move())
	assert.Equal(t, FaceLeft, MoveLeft.Face())
	assert.InDelta(t, 90.0, FaceDown.Rotation(), 1e-9)
	assert.Equal(t, FaceUp, ParseFaceDirection("up"))
	assert.Equal(t, TypeMole, ParseType("Mole"))
	assert.Equal(t, TypeUnknown, ParseType("dragon"))
}
