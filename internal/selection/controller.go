package selection

const (
	// MinSize is the smallest selectable width/height in source pixels.
	MinSize = 1.0
	// HitRadius is the handle hit-test radius in view points.
	HitRadius = 10.0
	// clickSlop is the view-space distance below which a press/release pair
	// counts as a click rather than a drag.
	clickSlop = 2.0
)

type phase int

const (
	phaseIdle phase = iota
	phaseDrawing
	phaseMoving
	phaseResizing
)

// Controller implements the pointer-driven selection state machine. Pointer
// positions arrive in view coordinates; the selection rectangle is kept in
// source pixel space and is always clipped to the image bounds. The
// controller is display-free so transitions can be tested deterministically.
type Controller struct {
	imgW, imgH   float64
	viewW, viewH float64
	view         Transform

	sel    Rect
	hasSel bool

	ph     phase
	handle Handle
	origin Rect    // selection snapshot at pointer-down
	anchorX, anchorY float64 // image-space pointer at pointer-down
	downVX, downVY   float64 // view-space pointer at pointer-down
	moved  bool
}

func NewController() *Controller {
	return &Controller{view: Transform{Scale: 1}}
}

// SetImage installs a new image size and resets the selection and drag
// state. The view transform is recomputed against the last known viewport,
// so switching between images of different sizes keeps pointer mapping
// correct without waiting for a widget resize.
func (c *Controller) SetImage(w, h int) {
	c.imgW, c.imgH = float64(w), float64(h)
	c.view = Fit(c.imgW, c.imgH, c.viewW, c.viewH)
	c.sel = Rect{}
	c.hasSel = false
	c.ph = phaseIdle
	c.handle = HandleNone
}

// SetViewport recomputes the contain-fit view transform for the given view
// size. Called whenever the widget is resized.
func (c *Controller) SetViewport(w, h float64) {
	c.viewW, c.viewH = w, h
	c.view = Fit(c.imgW, c.imgH, w, h)
}

// View returns the current image-to-view transform.
func (c *Controller) View() Transform { return c.view }

// Selection returns the committed selection rectangle, normalized and
// clipped, and whether one exists. Rectangles below the minimum size report
// as absent.
func (c *Controller) Selection() (Rect, bool) {
	if !c.hasSel {
		return Rect{}, false
	}
	r := c.sel.Clip(c.imgW, c.imgH)
	if r.Width() < MinSize || r.Height() < MinSize {
		return Rect{}, false
	}
	return r, true
}

// Dragging reports whether a pointer drag is in progress.
func (c *Controller) Dragging() bool { return c.ph != phaseIdle }

// RegionAt classifies the view-space point for cursor feedback: the handle
// under the point, and otherwise whether the point lies inside the selection.
func (c *Controller) RegionAt(vx, vy float64) (Handle, bool) {
	r, ok := c.Selection()
	if !ok {
		return HandleNone, false
	}
	if h := HandleAt(r, c.view, vx, vy, HitRadius); h != HandleNone {
		return h, false
	}
	ix, iy := c.view.ToImage(vx, vy)
	return HandleNone, r.Contains(ix, iy)
}

// PointerDown begins a drawing, moving or resizing drag depending on where
// the press lands relative to the current selection.
func (c *Controller) PointerDown(vx, vy float64) {
	if c.imgW <= 0 || c.imgH <= 0 {
		return
	}
	ix, iy := c.view.ToImage(vx, vy)
	c.downVX, c.downVY = vx, vy
	c.moved = false

	if r, ok := c.Selection(); ok {
		if h := HandleAt(r, c.view, vx, vy, HitRadius); h != HandleNone {
			c.ph = phaseResizing
			c.handle = h
			c.origin = r
			c.anchorX, c.anchorY = ix, iy
			return
		}
		if r.Contains(ix, iy) {
			c.ph = phaseMoving
			c.origin = r
			c.anchorX, c.anchorY = ix, iy
			return
		}
	}

	c.ph = phaseDrawing
	c.anchorX = clamp(ix, 0, c.imgW)
	c.anchorY = clamp(iy, 0, c.imgH)
	c.sel = Rect{c.anchorX, c.anchorY, c.anchorX, c.anchorY}
	c.hasSel = true
}

// PointerMove updates the rectangle for the drag in progress.
func (c *Controller) PointerMove(vx, vy float64) {
	if c.ph == phaseIdle {
		return
	}
	if abs(vx-c.downVX) > clickSlop || abs(vy-c.downVY) > clickSlop {
		c.moved = true
	}
	ix, iy := c.view.ToImage(vx, vy)

	switch c.ph {
	case phaseDrawing:
		c.sel = Rect{
			Left:   c.anchorX,
			Top:    c.anchorY,
			Right:  clamp(ix, 0, c.imgW),
			Bottom: clamp(iy, 0, c.imgH),
		}
	case phaseMoving:
		c.sel = c.origin.Translate(ix-c.anchorX, iy-c.anchorY, c.imgW, c.imgH)
	case phaseResizing:
		c.sel = c.resized(ix-c.anchorX, iy-c.anchorY)
	}
}

// resized applies the drag delta to the edges selected by the active handle,
// keeping each moving edge within bounds and at least MinSize away from its
// fixed opposite.
func (c *Controller) resized(dx, dy float64) Rect {
	r := c.origin
	left, top, right, bottom := c.handle.Edges()
	if left {
		r.Left = clamp(c.origin.Left+dx, 0, c.origin.Right-MinSize)
	}
	if right {
		r.Right = clamp(c.origin.Right+dx, c.origin.Left+MinSize, c.imgW)
	}
	if top {
		r.Top = clamp(c.origin.Top+dy, 0, c.origin.Bottom-MinSize)
	}
	if bottom {
		r.Bottom = clamp(c.origin.Bottom+dy, c.origin.Top+MinSize, c.imgH)
	}
	return r
}

// PointerUp commits the drag. A drawn rectangle below the minimum size is
// discarded, and a click inside the selection without any drag clears it.
func (c *Controller) PointerUp() {
	switch c.ph {
	case phaseDrawing:
		r := c.sel.Clip(c.imgW, c.imgH)
		if r.Width() < MinSize || r.Height() < MinSize {
			c.hasSel = false
		} else {
			c.sel = r
		}
	case phaseMoving:
		if !c.moved {
			c.hasSel = false
		}
	}
	c.ph = phaseIdle
	c.handle = HandleNone
}

// Clear drops the selection and any drag in progress.
func (c *Controller) Clear() {
	c.sel = Rect{}
	c.hasSel = false
	c.ph = phaseIdle
	c.handle = HandleNone
}
