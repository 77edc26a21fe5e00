package pipeline

import (
	"fmt"
	"image"
	"image/draw"
)

// subImager is implemented by all stdlib raster types; SubImage shares pixel
// memory with the source.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Crop extracts the given source-pixel rectangle from img. The rectangle is
// intersected with the image bounds; an empty result is an error.
func Crop(img image.Image, r image.Rectangle) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("no image to crop")
	}
	b := img.Bounds()
	r = r.Add(b.Min).Intersect(b)
	if r.Empty() {
		return nil, fmt.Errorf("selection %v lies outside the image", r)
	}

	if si, ok := img.(subImager); ok {
		return si.SubImage(r), nil
	}

	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out, nil
}
