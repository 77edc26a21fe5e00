package selection

import "image"

// Rect is a selection rectangle in source-image pixel space. A Rect produced
// by Normalized satisfies Left <= Right and Top <= Bottom.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Normalized orders the coordinates so Left <= Right and Top <= Bottom.
func (r Rect) Normalized() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Clip intersects the rectangle with the image bounds [0,w]x[0,h].
func (r Rect) Clip(w, h float64) Rect {
	r = r.Normalized()
	r.Left = clamp(r.Left, 0, w)
	r.Right = clamp(r.Right, 0, w)
	r.Top = clamp(r.Top, 0, h)
	r.Bottom = clamp(r.Bottom, 0, h)
	return r
}

// Contains reports whether the point lies inside the normalized rectangle,
// borders included.
func (r Rect) Contains(x, y float64) bool {
	r = r.Normalized()
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// ImageRect converts to an integer pixel rectangle, truncating towards the
// interior the way the crop operation consumes it.
func (r Rect) ImageRect() image.Rectangle {
	r = r.Normalized()
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
}

// Translate shifts the rectangle by (dx, dy), limiting the shift so the
// rectangle stays inside [0,w]x[0,h].
func (r Rect) Translate(dx, dy, w, h float64) Rect {
	r = r.Normalized()
	dx = clamp(dx, -r.Left, w-r.Right)
	dy = clamp(dy, -r.Top, h-r.Bottom)
	return Rect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
