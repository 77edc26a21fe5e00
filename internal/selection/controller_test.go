package selection

import (
	"math/rand"
	"testing"
)

// newTestController returns a controller for a 200x100 image with an
// identity view transform, so view and image coordinates coincide.
func newTestController() *Controller {
	c := NewController()
	c.SetImage(200, 100)
	c.SetViewport(200, 100)
	return c
}

func drag(c *Controller, x0, y0, x1, y1 float64) {
	c.PointerDown(x0, y0)
	c.PointerMove(x1, y1)
	c.PointerUp()
}

func TestController_DrawCommitsSelection(t *testing.T) {
	c := newTestController()
	drag(c, 10, 20, 60, 80)
	r, ok := c.Selection()
	if !ok {
		t.Fatal("expected selection after drag")
	}
	if r.Left != 10 || r.Top != 20 || r.Right != 60 || r.Bottom != 80 {
		t.Fatalf("selection %+v", r)
	}
}

func TestController_DrawBackwardsNormalizes(t *testing.T) {
	c := newTestController()
	drag(c, 60, 80, 10, 20)
	r, ok := c.Selection()
	if !ok || r.Left != 10 || r.Top != 20 || r.Right != 60 || r.Bottom != 80 {
		t.Fatalf("backwards drag gave %+v ok=%v", r, ok)
	}
}

func TestController_ClickWithoutDragLeavesNoSelection(t *testing.T) {
	c := newTestController()
	c.PointerDown(50, 50)
	c.PointerUp()
	if _, ok := c.Selection(); ok {
		t.Fatal("click without drag should not create a selection")
	}
}

func TestController_ClickInsideSelectionClearsIt(t *testing.T) {
	c := newTestController()
	drag(c, 10, 10, 90, 90)
	if _, ok := c.Selection(); !ok {
		t.Fatal("setup: no selection")
	}
	c.PointerDown(50, 50)
	c.PointerUp()
	if _, ok := c.Selection(); ok {
		t.Fatal("click inside without drag should clear the selection")
	}
}

func TestController_MoveTranslatesWithinBounds(t *testing.T) {
	c := newTestController()
	drag(c, 10, 10, 50, 50)
	c.PointerDown(30, 30)
	c.PointerMove(80, 40) // +50, +10
	c.PointerUp()
	r, ok := c.Selection()
	if !ok {
		t.Fatal("selection lost after move")
	}
	if r.Left != 60 || r.Top != 20 || r.Right != 100 || r.Bottom != 60 {
		t.Fatalf("moved selection %+v", r)
	}

	// Dragging far past the edge pins the rectangle at the border.
	c.PointerDown(80, 40)
	c.PointerMove(1000, 1000)
	c.PointerUp()
	r, _ = c.Selection()
	if r.Right != 200 || r.Bottom != 100 {
		t.Fatalf("move should clamp to image bounds, got %+v", r)
	}
	if r.Width() != 40 || r.Height() != 40 {
		t.Fatalf("move must not change size, got %+v", r)
	}
}

func TestController_CornerResizeKeepsOppositeEdges(t *testing.T) {
	c := newTestController()
	drag(c, 20, 20, 120, 80)
	c.PointerDown(20, 20) // NW handle
	c.PointerMove(40, 35)
	c.PointerUp()
	r, ok := c.Selection()
	if !ok {
		t.Fatal("selection lost after resize")
	}
	if r.Right != 120 || r.Bottom != 80 {
		t.Fatalf("corner resize moved non-adjacent edges: %+v", r)
	}
	if r.Left != 40 || r.Top != 35 {
		t.Fatalf("corner resize did not move adjacent edges: %+v", r)
	}
}

func TestController_EdgeResizeMovesSingleEdge(t *testing.T) {
	c := newTestController()
	drag(c, 20, 20, 120, 80)
	c.PointerDown(120, 50) // E midpoint handle
	c.PointerMove(150, 90) // vertical component must be ignored
	c.PointerUp()
	r, _ := c.Selection()
	if r.Left != 20 || r.Top != 20 || r.Bottom != 80 {
		t.Fatalf("edge resize moved other edges: %+v", r)
	}
	if r.Right != 150 {
		t.Fatalf("edge resize right = %v, want 150", r.Right)
	}
}

func TestController_ResizeRespectsMinSizeFloor(t *testing.T) {
	c := newTestController()
	drag(c, 20, 20, 120, 80)
	c.PointerDown(20, 20)     // NW handle
	c.PointerMove(1000, 1000) // try to cross the SE corner
	c.PointerUp()
	r, ok := c.Selection()
	if !ok {
		t.Fatal("resize collapsed the selection")
	}
	if r.Left > r.Right-MinSize || r.Top > r.Bottom-MinSize {
		t.Fatalf("min size floor violated: %+v", r)
	}
	if r.Right != 120 || r.Bottom != 80 {
		t.Fatalf("fixed edges moved during over-resize: %+v", r)
	}
}

func TestController_ClearThenNothingSelected(t *testing.T) {
	c := newTestController()
	drag(c, 10, 10, 50, 50)
	c.Clear()
	if _, ok := c.Selection(); ok {
		t.Fatal("selection survived Clear")
	}
}

func TestController_NewImageResetsSelection(t *testing.T) {
	c := newTestController()
	drag(c, 10, 10, 50, 50)
	c.SetImage(640, 480)
	c.SetViewport(200, 100)
	if _, ok := c.Selection(); ok {
		t.Fatal("selection survived image switch")
	}
}

func TestController_NoImageIgnoresPointer(t *testing.T) {
	c := NewController()
	c.SetViewport(200, 100)
	drag(c, 10, 10, 50, 50)
	if _, ok := c.Selection(); ok {
		t.Fatal("selection created without an image")
	}
}

func TestController_RegionAt(t *testing.T) {
	c := newTestController()
	drag(c, 20, 20, 120, 80)
	if h, _ := c.RegionAt(20, 20); h != HandleNW {
		t.Errorf("expected NW handle, got %s", h)
	}
	if h, inside := c.RegionAt(70, 50); h != HandleNone || !inside {
		t.Errorf("center should be inside, got handle=%s inside=%v", h, inside)
	}
	if h, inside := c.RegionAt(180, 95); h != HandleNone || inside {
		t.Errorf("outside point misclassified: handle=%s inside=%v", h, inside)
	}
}

// Any random drag sequence must leave the selection normalized and within
// image bounds.
func TestController_RandomDragsStayNormalizedAndBounded(t *testing.T) {
	c := newTestController()
	rng := rand.New(rand.NewSource(1))
	pt := func() (float64, float64) {
		// Deliberately include points outside the viewport.
		return rng.Float64()*300 - 50, rng.Float64()*200 - 50
	}
	for i := 0; i < 500; i++ {
		x, y := pt()
		c.PointerDown(x, y)
		for j := 0; j < rng.Intn(5); j++ {
			x, y = pt()
			c.PointerMove(x, y)
		}
		c.PointerUp()
		r, ok := c.Selection()
		if !ok {
			continue
		}
		if r.Left >= r.Right || r.Top >= r.Bottom {
			t.Fatalf("iteration %d: unnormalized selection %+v", i, r)
		}
		if r.Left < 0 || r.Top < 0 || r.Right > 200 || r.Bottom > 100 {
			t.Fatalf("iteration %d: selection out of bounds %+v", i, r)
		}
	}
}

func TestController_ImageSwitchRecomputesTransform(t *testing.T) {
	c := NewController()
	c.SetImage(100, 100)
	c.SetViewport(400, 400)

	// Switching to a larger image without a widget resize must not keep
	// the previous image's contain-fit scale.
	c.SetImage(400, 400)
	drag(c, 0, 0, 400, 400)

	r, ok := c.Selection()
	if !ok {
		t.Fatal("expected selection after drag")
	}
	if r.Width() < 399 || r.Height() < 399 {
		t.Fatalf("full-view drag selected only %.0fx%.0f of the 400x400 image", r.Width(), r.Height())
	}
}
