package pipeline

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"imagecropper/internal/logger"
)

// jpegQuality matches the quality used for all jpeg output.
const jpegQuality = 95

// Saver encodes crops to disk in the format implied by the file extension.
type Saver struct {
	logger logger.Logger
}

func NewSaver(log logger.Logger) *Saver {
	return &Saver{logger: log}
}

// OutputExt maps a source extension to the extension used for saved crops.
// Formats without an encoder (gif, webp) fall back to png.
func OutputExt(srcExt string) string {
	if encodable(srcExt) {
		return srcExt
	}
	return ".png"
}

func encodable(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".bmp", ".tiff", ".tif":
		return true
	}
	return false
}

// Save writes the image to path, creating the parent folder as needed. The
// file must not already exist; collision avoidance is the caller's job and
// an existing file is never replaced silently.
func (s *Saver) Save(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return s.write(f, path, img)
}

// Overwrite replaces the file at path with the image. Used only by the
// explicit overwrite-original mode. The crop is encoded to a temporary file
// in the same directory and renamed over the target, so the original is
// untouched when encoding fails.
func (s *Saver) Overwrite(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !encodable(ext) {
		return fmt.Errorf("cannot overwrite %q: no encoder for %q", path, ext)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to overwrite %q: %w", path, err)
	}
	err = encode(tmp, img, ext)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		s.logger.Error("Saver", err, map[string]interface{}{"path": path})
		return err
	}

	s.logSaved(path, img)
	return nil
}

func (s *Saver) write(f *os.File, path string, img image.Image) error {
	err := encode(f, img, filepath.Ext(path))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// Save created this file with O_EXCL, so removing the truncated
		// result cannot touch anything pre-existing.
		os.Remove(path)
		s.logger.Error("Saver", err, map[string]interface{}{"path": path})
		return err
	}

	s.logSaved(path, img)
	return nil
}

func (s *Saver) logSaved(path string, img image.Image) {
	b := img.Bounds()
	s.logger.Info("Saver", "image saved", map[string]interface{}{
		"path":   path,
		"width":  b.Dx(),
		"height": b.Dy(),
	})
}

func encode(w io.Writer, img image.Image, ext string) error {
	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tiff", ".tif":
		return tiff.Encode(w, img, nil)
	case ".png":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("no encoder for %q", ext)
	}
}
