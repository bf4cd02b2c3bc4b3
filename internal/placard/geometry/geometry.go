// Package geometry converts between screen-space drag deltas and
// template-space field rectangles. Everything here is pure: no state, no
// side effects, no calls out.
package geometry

import (
	"placard-server/internal/placard/domain"
)

// Minimum rectangle dimensions enforced for every field at all times.
const (
	MinWidth  = 100
	MinHeight = 40
)

// Point is a template-space coordinate (top-left origin).
type Point struct {
	X float64
	Y float64
}

// Delta is a screen-space displacement as reported by the drag surface.
type Delta struct {
	DX float64
	DY float64
}

// Edges flags which rectangle edges are active during a resize gesture.
type Edges struct {
	Left   bool
	Right  bool
	Top    bool
	Bottom bool
}

var anchors = map[domain.FieldKey]Point{
	domain.FieldName:  {X: 20, Y: 50},
	domain.FieldPrice: {X: 20, Y: 100},
	domain.FieldDate:  {X: 20, Y: 150},
	domain.FieldCode:  {X: 20, Y: 180},
}

// Anchor returns the fixed base offset of a field. The editing surface
// represents a field origin as "anchor + drag delta" rather than an
// absolute coordinate, so converting in either direction needs it.
func Anchor(key domain.FieldKey) Point {
	return anchors[key]
}

// ToScreenOffset converts a stored template-space origin into the
// zero-based screen delta used by the drag surface.
func ToScreenOffset(origin Point, key domain.FieldKey) Delta {
	anchor := Anchor(key)
	return Delta{DX: origin.X - anchor.X, DY: origin.Y - anchor.Y}
}

// ToTemplateOrigin is the inverse of ToScreenOffset.
func ToTemplateOrigin(delta Delta, key domain.FieldKey) Point {
	anchor := Anchor(key)
	return Point{X: anchor.X + delta.DX, Y: anchor.Y + delta.DY}
}

// ClampRect enforces the minimum-size invariant without moving the
// origin. Rectangles already at or above the minimum pass through
// unchanged.
func ClampRect(r domain.Rect) domain.Rect {
	if r.Width < MinWidth {
		r.Width = MinWidth
	}
	if r.Height < MinHeight {
		r.Height = MinHeight
	}
	return r
}

// ApplyResizeDelta grows or shrinks a rectangle along its active edges.
// An active left or top edge also shifts the origin so the opposite edge
// stays fixed. Deltas are limited so the result never drops below the
// minimum size, keeping the live rectangle valid mid-gesture.
func ApplyResizeDelta(r domain.Rect, edges Edges, delta Delta) domain.Rect {
	if edges.Left {
		dx := delta.DX
		if r.Width-dx < MinWidth {
			dx = r.Width - MinWidth
		}
		r.X += dx
		r.Width -= dx
	} else if edges.Right {
		r.Width += delta.DX
		if r.Width < MinWidth {
			r.Width = MinWidth
		}
	}

	if edges.Top {
		dy := delta.DY
		if r.Height-dy < MinHeight {
			dy = r.Height - MinHeight
		}
		r.Y += dy
		r.Height -= dy
	} else if edges.Bottom {
		r.Height += delta.DY
		if r.Height < MinHeight {
			r.Height = MinHeight
		}
	}

	return r
}

// ClampToCanvas shifts a rectangle back inside the page canvas without
// resizing it. Rectangles larger than the canvas pin to the top-left.
func ClampToCanvas(r domain.Rect, canvas domain.Size) domain.Rect {
	if r.X+r.Width > canvas.Width {
		r.X = canvas.Width - r.Width
	}
	if r.Y+r.Height > canvas.Height {
		r.Y = canvas.Height - r.Height
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}
