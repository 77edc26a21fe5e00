package pipeline

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"imagecropper/internal/logger"
)

// ImageData represents a decoded image with its metadata.
type ImageData struct {
	Image  image.Image
	Width  int
	Height int
	Format string
	Path   string
}

// Loader decodes image files from disk. Format support comes from the
// registered stdlib and x/image codecs (jpeg, png, gif, bmp, tiff, webp).
type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{logger: log}
}

// Load opens and decodes the image at path.
func (l *Loader) Load(path string) (*ImageData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", path, err)
	}

	bounds := img.Bounds()
	data := &ImageData{
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
		Path:   path,
	}

	l.logger.Info("Loader", "image loaded", map[string]interface{}{
		"path":   path,
		"width":  data.Width,
		"height": data.Height,
		"format": format,
	})

	return data, nil
}
