// Package framing maps the cover-preview drag gesture onto the persisted
// focal point that anchors responsive crops of a cover image.
package framing

import (
	"fmt"

	"frontera/app/models"
)

// dragDivisor halves drag sensitivity so a full-height drag does not snap
// the frame straight to an extreme.
const dragDivisor = 2

// Session tracks one cover-framing interaction. Horizontal centering is not
// adjustable; only the Y axis moves.
type Session struct {
	point    models.FocalPoint
	dragging bool
	lastY    float64
}

// NewSession starts a framing session at the stored focal point. A zero
// point means the post never had one and becomes the centered default.
func NewSession(start models.FocalPoint) *Session {
	if start == (models.FocalPoint{}) {
		start = models.DefaultFocalPoint()
	}
	start.X = 50
	start.Y = clamp(start.Y)
	return &Session{point: start}
}

// PointerDown captures the starting pointer coordinate and enters the
// dragging state.
func (s *Session) PointerDown(y float64) {
	s.dragging = true
	s.lastY = y
}

// PointerMove applies an incremental drag step. Deltas are taken against
// the last seen coordinate, not the starting one, so rapid moves do not
// drift. Moves outside a drag are ignored.
func (s *Session) PointerMove(y float64) {
	if !s.dragging {
		return
	}
	delta := y - s.lastY
	s.point.Y = clamp(s.point.Y - delta/dragDivisor)
	s.lastY = y
}

// PointerUp exits the dragging state. It fires wherever the pointer is
// released, not only over the preview.
func (s *Session) PointerUp() {
	s.dragging = false
}

// Dragging reports whether a drag is in progress.
func (s *Session) Dragging() bool {
	return s.dragging
}

// ResetForNewCover recenters the focal point after a new cover image is
// selected.
func (s *Session) ResetForNewCover() {
	s.dragging = false
	s.point = models.DefaultFocalPoint()
}

// Point returns the current focal point for persisting on the post.
func (s *Session) Point() models.FocalPoint {
	return s.point
}

// ObjectPosition renders the focal point as the CSS object-position value
// applied uniformly to every crop of the cover image.
func ObjectPosition(p models.FocalPoint) string {
	return fmt.Sprintf("%g%% %g%%", p.X, p.Y)
}

func clamp(y float64) float64 {
	if y < 0 {
		return 0
	}
	if y > 100 {
		return 100
	}
	return y
}
