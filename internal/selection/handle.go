package selection

// Handle identifies one of the eight draggable resize points: four corners
// and four edge midpoints.
type Handle int

const (
	HandleNone Handle = iota
	HandleNW
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
)

func (h Handle) String() string {
	switch h {
	case HandleNW:
		return "nw"
	case HandleN:
		return "n"
	case HandleNE:
		return "ne"
	case HandleE:
		return "e"
	case HandleSE:
		return "se"
	case HandleS:
		return "s"
	case HandleSW:
		return "sw"
	case HandleW:
		return "w"
	default:
		return "none"
	}
}

// Edges reports which rectangle edges the handle moves. Corner handles move
// two adjacent edges, midpoint handles exactly one.
func (h Handle) Edges() (left, top, right, bottom bool) {
	switch h {
	case HandleNW:
		return true, true, false, false
	case HandleN:
		return false, true, false, false
	case HandleNE:
		return false, true, true, false
	case HandleE:
		return false, false, true, false
	case HandleSE:
		return false, false, true, true
	case HandleS:
		return false, false, false, true
	case HandleSW:
		return true, false, false, true
	case HandleW:
		return true, false, false, false
	}
	return false, false, false, false
}

// HandlePoint is a handle anchor position in image space.
type HandlePoint struct {
	Handle Handle
	X, Y   float64
}

// Handles returns the eight handle anchors of the normalized rectangle.
func (r Rect) Handles() [8]HandlePoint {
	r = r.Normalized()
	mx := (r.Left + r.Right) / 2
	my := (r.Top + r.Bottom) / 2
	return [8]HandlePoint{
		{HandleNW, r.Left, r.Top},
		{HandleN, mx, r.Top},
		{HandleNE, r.Right, r.Top},
		{HandleE, r.Right, my},
		{HandleSE, r.Right, r.Bottom},
		{HandleS, mx, r.Bottom},
		{HandleSW, r.Left, r.Bottom},
		{HandleW, r.Left, my},
	}
}

// HandleAt hit-tests the view-space point (vx, vy) against the handles of r,
// using a square hit area of the given radius in view points.
func HandleAt(r Rect, t Transform, vx, vy, radius float64) Handle {
	for _, hp := range r.Handles() {
		hx, hy := t.ToView(hp.X, hp.Y)
		if abs(vx-hx) <= radius && abs(vy-hy) <= radius {
			return hp.Handle
		}
	}
	return HandleNone
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
