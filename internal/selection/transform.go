package selection

// Transform maps source-image pixel coordinates to view (canvas) coordinates.
// The zero value is unusable; obtain one from Fit.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Fit computes the contain-fit transform for an image of imgW x imgH pixels
// displayed centered inside a view of viewW x viewH points.
func Fit(imgW, imgH, viewW, viewH float64) Transform {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return Transform{Scale: 1}
	}
	scale := viewW / imgW
	if s := viewH / imgH; s < scale {
		scale = s
	}
	return Transform{
		Scale:   scale,
		OffsetX: (viewW - imgW*scale) / 2,
		OffsetY: (viewH - imgH*scale) / 2,
	}
}

// ToImage converts view coordinates to image coordinates.
func (t Transform) ToImage(x, y float64) (float64, float64) {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	return (x - t.OffsetX) / scale, (y - t.OffsetY) / scale
}

// ToView converts image coordinates to view coordinates.
func (t Transform) ToView(x, y float64) (float64, float64) {
	return x*t.Scale + t.OffsetX, y*t.Scale + t.OffsetY
}
