package gui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"imagecropper/internal/selection"
)

var (
	accentColor = color.NRGBA{G: 0xd4, B: 0xff, A: 0xff}
	shadeColor  = color.NRGBA{A: 0x66}
	gridColor   = color.NRGBA{G: 0xd4, B: 0xff, A: 0x80}
	handleEdge  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// handleSide is the on-screen size of a resize handle square in points.
const handleSide = float32(8)

// CropView renders the loaded image contain-fit and draws the selection
// overlay (dimmed surround, outline, thirds grid, eight handles). Pointer
// events are forwarded to the selection controller; the widget itself holds
// no geometry state.
type CropView struct {
	widget.BaseWidget

	ctrl   *selection.Controller
	img    image.Image
	cursor desktop.Cursor

	// OnChanged fires after a drag commits or the selection is cleared.
	OnChanged func()
}

var (
	_ fyne.Draggable     = (*CropView)(nil)
	_ desktop.Mouseable  = (*CropView)(nil)
	_ desktop.Hoverable  = (*CropView)(nil)
	_ desktop.Cursorable = (*CropView)(nil)
)

func NewCropView(ctrl *selection.Controller) *CropView {
	v := &CropView{ctrl: ctrl, cursor: desktop.CrosshairCursor}
	v.ExtendBaseWidget(v)
	return v
}

// SetImage installs a new image to display. The caller is responsible for
// resetting the controller with the image dimensions first.
func (v *CropView) SetImage(img image.Image) {
	v.img = img
	v.Refresh()
}

// ClearSelection drops the current selection and repaints.
func (v *CropView) ClearSelection() {
	v.ctrl.Clear()
	v.cursor = desktop.CrosshairCursor
	v.Refresh()
	if v.OnChanged != nil {
		v.OnChanged()
	}
}

func (v *CropView) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	v.ctrl.PointerDown(float64(e.Position.X), float64(e.Position.Y))
	v.Refresh()
}

func (v *CropView) MouseUp(e *desktop.MouseEvent) {
	if !v.ctrl.Dragging() {
		return
	}
	v.finishDrag()
}

func (v *CropView) Dragged(e *fyne.DragEvent) {
	v.ctrl.PointerMove(float64(e.Position.X), float64(e.Position.Y))
	v.Refresh()
}

func (v *CropView) DragEnd() {
	if !v.ctrl.Dragging() {
		return
	}
	v.finishDrag()
}

func (v *CropView) finishDrag() {
	v.ctrl.PointerUp()
	v.Refresh()
	if v.OnChanged != nil {
		v.OnChanged()
	}
}

func (v *CropView) MouseIn(e *desktop.MouseEvent) {
	v.updateCursor(e.Position)
}

func (v *CropView) MouseMoved(e *desktop.MouseEvent) {
	if v.ctrl.Dragging() {
		return
	}
	v.updateCursor(e.Position)
}

func (v *CropView) MouseOut() {}

func (v *CropView) Cursor() desktop.Cursor {
	return v.cursor
}

func (v *CropView) updateCursor(p fyne.Position) {
	h, inside := v.ctrl.RegionAt(float64(p.X), float64(p.Y))
	switch {
	case h != selection.HandleNone:
		v.cursor = handleCursor(h)
	case inside:
		v.cursor = desktop.PointerCursor
	default:
		v.cursor = desktop.CrosshairCursor
	}
}

// handleCursor maps a resize handle to the closest standard cursor shape.
func handleCursor(h selection.Handle) desktop.Cursor {
	switch h {
	case selection.HandleN, selection.HandleS:
		return desktop.VResizeCursor
	case selection.HandleE, selection.HandleW:
		return desktop.HResizeCursor
	default:
		// No diagonal resize cursor in the standard set.
		return desktop.PointerCursor
	}
}

func (v *CropView) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(v.img)
	img.FillMode = canvas.ImageFillContain

	r := &cropViewRenderer{view: v, image: img}

	for i := range r.shades {
		r.shades[i] = canvas.NewRectangle(shadeColor)
	}
	for i := range r.grid {
		r.grid[i] = canvas.NewLine(gridColor)
		r.grid[i].StrokeWidth = 1
	}
	r.outline = canvas.NewRectangle(color.Transparent)
	r.outline.StrokeColor = accentColor
	r.outline.StrokeWidth = 2
	for i := range r.handles {
		r.handles[i] = canvas.NewRectangle(accentColor)
		r.handles[i].StrokeColor = handleEdge
		r.handles[i].StrokeWidth = 1
	}

	r.objects = []fyne.CanvasObject{img}
	for _, s := range r.shades {
		r.objects = append(r.objects, s)
	}
	for _, g := range r.grid {
		r.objects = append(r.objects, g)
	}
	r.objects = append(r.objects, r.outline)
	for _, h := range r.handles {
		r.objects = append(r.objects, h)
	}
	return r
}

type cropViewRenderer struct {
	view    *CropView
	image   *canvas.Image
	shades  [4]*canvas.Rectangle
	grid    [4]*canvas.Line
	outline *canvas.Rectangle
	handles [8]*canvas.Rectangle
	objects []fyne.CanvasObject
}

func (r *cropViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

func (r *cropViewRenderer) Layout(size fyne.Size) {
	r.view.ctrl.SetViewport(float64(size.Width), float64(size.Height))
	r.image.Resize(size)
	r.image.Move(fyne.NewPos(0, 0))
	r.layoutOverlay(size)
}

// layoutOverlay positions the shade, grid, outline and handle objects over
// the current selection, or hides them when there is none.
func (r *cropViewRenderer) layoutOverlay(size fyne.Size) {
	sel, ok := r.view.ctrl.Selection()
	if !ok || r.view.img == nil {
		r.hideOverlay()
		return
	}

	t := r.view.ctrl.View()
	lx64, ty64 := t.ToView(sel.Left, sel.Top)
	rx64, by64 := t.ToView(sel.Right, sel.Bottom)
	lx, ty := float32(lx64), float32(ty64)
	rx, by := float32(rx64), float32(by64)
	w, h := size.Width, size.Height

	// Dim everything outside the selection: top, bottom, left, right bands.
	place := func(rect *canvas.Rectangle, x, y, dx, dy float32) {
		rect.Move(fyne.NewPos(x, y))
		rect.Resize(fyne.NewSize(max32(dx, 0), max32(dy, 0)))
		rect.Show()
	}
	place(r.shades[0], 0, 0, w, ty)
	place(r.shades[1], 0, by, w, h-by)
	place(r.shades[2], 0, ty, lx, by-ty)
	place(r.shades[3], rx, ty, w-rx, by-ty)

	// Rule-of-thirds guides.
	for i, frac := range []float32{1.0 / 3, 2.0 / 3} {
		gx := lx + (rx-lx)*frac
		gy := ty + (by-ty)*frac
		r.grid[i].Position1 = fyne.NewPos(gx, ty)
		r.grid[i].Position2 = fyne.NewPos(gx, by)
		r.grid[i].Show()
		r.grid[i+2].Position1 = fyne.NewPos(lx, gy)
		r.grid[i+2].Position2 = fyne.NewPos(rx, gy)
		r.grid[i+2].Show()
	}

	r.outline.Move(fyne.NewPos(lx, ty))
	r.outline.Resize(fyne.NewSize(rx-lx, by-ty))
	r.outline.Show()

	half := handleSide / 2
	for i, hp := range sel.Handles() {
		hx64, hy64 := t.ToView(hp.X, hp.Y)
		r.handles[i].Move(fyne.NewPos(float32(hx64)-half, float32(hy64)-half))
		r.handles[i].Resize(fyne.NewSize(handleSide, handleSide))
		r.handles[i].Show()
	}
}

func (r *cropViewRenderer) hideOverlay() {
	for _, s := range r.shades {
		s.Hide()
	}
	for _, g := range r.grid {
		g.Hide()
	}
	r.outline.Hide()
	for _, h := range r.handles {
		h.Hide()
	}
}

func (r *cropViewRenderer) Refresh() {
	if size := r.view.Size(); size.Width > 0 && size.Height > 0 {
		r.view.ctrl.SetViewport(float64(size.Width), float64(size.Height))
	}
	if r.image.Image != r.view.img {
		r.image.Image = r.view.img
		r.image.Refresh()
	}
	r.layoutOverlay(r.view.Size())
	canvas.Refresh(r.view)
}

func (r *cropViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *cropViewRenderer) Destroy() {}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
