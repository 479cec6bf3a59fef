package framing

import (
	"testing"

	"frontera/app/models"

	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	t.Run("zero point becomes centered default", func(t *testing.T) {
		s := NewSession(models.FocalPoint{})
		assert.Equal(t, models.FocalPoint{X: 50, Y: 50}, s.Point())
	})

	t.Run("stored point carries over with x pinned", func(t *testing.T) {
		s := NewSession(models.FocalPoint{X: 10, Y: 30})
		assert.Equal(t, models.FocalPoint{X: 50, Y: 30}, s.Point())
	})
}

func TestDragGesture(t *testing.T) {
	t.Run("drag down moves the frame up at half sensitivity", func(t *testing.T) {
		s := NewSession(models.FocalPoint{X: 50, Y: 50})
		s.PointerDown(100)
		s.PointerMove(120) // delta +20 -> y -10
		assert.Equal(t, 40.0, s.Point().Y)
	})

	t.Run("moves are incremental, not absolute", func(t *testing.T) {
		s := NewSession(models.FocalPoint{X: 50, Y: 50})
		s.PointerDown(0)
		s.PointerMove(10)
		s.PointerMove(20)
		s.PointerMove(30)
		// Three +10 steps equal one +30 step: 50 - 30/2.
		assert.Equal(t, 35.0, s.Point().Y)
	})

	t.Run("clamps at the bottom", func(t *testing.T) {
		s := NewSession(models.FocalPoint{X: 50, Y: 10})
		s.PointerDown(0)
		s.PointerMove(500)
		assert.Equal(t, 0.0, s.Point().Y)
	})

	t.Run("clamps at the top", func(t *testing.T) {
		s := NewSession(models.FocalPoint{X: 50, Y: 90})
		s.PointerDown(500)
		s.PointerMove(0)
		assert.Equal(t, 100.0, s.Point().Y)
	})

	t.Run("moves outside a drag are ignored", func(t *testing.T) {
		s := NewSession(models.FocalPoint{X: 50, Y: 50})
		s.PointerMove(400)
		assert.Equal(t, 50.0, s.Point().Y)
	})

	t.Run("pointer up ends the drag", func(t *testing.T) {
		s := NewSession(models.FocalPoint{X: 50, Y: 50})
		s.PointerDown(0)
		assert.True(t, s.Dragging())
		s.PointerUp()
		assert.False(t, s.Dragging())
		s.PointerMove(200)
		assert.Equal(t, 50.0, s.Point().Y)
	})

	t.Run("a new drag picks up where the last ended", func(t *testing.T) {
		s := NewSession(models.FocalPoint{X: 50, Y: 50})
		s.PointerDown(0)
		s.PointerMove(20)
		s.PointerUp()

		s.PointerDown(300) // new start must not apply a 300-280 style jump
		s.PointerMove(320)
		assert.Equal(t, 30.0, s.Point().Y)
	})
}

func TestResetForNewCover(t *testing.T) {
	s := NewSession(models.FocalPoint{X: 50, Y: 12})
	s.PointerDown(0)
	s.ResetForNewCover()

	assert.False(t, s.Dragging())
	assert.Equal(t, models.DefaultFocalPoint(), s.Point())
}

func TestObjectPosition(t *testing.T) {
	assert.Equal(t, "50% 42%", ObjectPosition(models.FocalPoint{X: 50, Y: 42}))
	assert.Equal(t, "50% 12.5%", ObjectPosition(models.FocalPoint{X: 50, Y: 12.5}))
}
