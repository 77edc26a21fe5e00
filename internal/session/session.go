package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// supportedExts is the fixed allow-list of raster formats the application
// opens and navigates over.
var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// IsSupported reports whether the path has a supported raster extension.
func IsSupported(path string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(path))]
}

// SupportedExtensions returns the allow-list in display order, for file
// dialog filters.
func SupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tiff", ".tif", ".webp"}
}

// Session tracks the currently open image, its sorted sibling images for
// next/previous navigation, and the per-image crop counters for the lifetime
// of the process.
type Session struct {
	current  string
	siblings []string
	index    int
	counters map[string]int
}

func New() *Session {
	return &Session{index: -1, counters: make(map[string]int)}
}

// Open makes path the current image and rescans its folder for sibling
// images. Crop counters survive image switches.
func (s *Session) Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("cannot open %q: %w", abs, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not an image", abs)
	}
	if !IsSupported(abs) {
		return fmt.Errorf("unsupported file type %q", filepath.Ext(abs))
	}

	folder := filepath.Dir(abs)
	entries, err := os.ReadDir(folder)
	if err != nil {
		return fmt.Errorf("cannot scan folder %q: %w", folder, err)
	}

	siblings := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsSupported(e.Name()) {
			continue
		}
		siblings = append(siblings, filepath.Join(folder, e.Name()))
	}

	index := -1
	for i, p := range siblings {
		if p == abs {
			index = i
			break
		}
	}
	if index < 0 {
		siblings = append(siblings, abs)
		index = len(siblings) - 1
	}

	s.current = abs
	s.siblings = siblings
	s.index = index
	return nil
}

// Current returns the path of the open image, empty when none is open.
func (s *Session) Current() string { return s.current }

// Position returns the 1-based position of the current image and the total
// number of images in its folder.
func (s *Session) Position() (index, total int) {
	if s.index < 0 {
		return 0, 0
	}
	return s.index + 1, len(s.siblings)
}

// Next returns the path of the following sibling image. Past the end of the
// list there is no next image and ok is false; the session is unchanged
// either way, callers advance by calling Open with the returned path.
func (s *Session) Next() (path string, ok bool) {
	if s.index < 0 || s.index+1 >= len(s.siblings) {
		return "", false
	}
	return s.siblings[s.index+1], true
}

// Prev returns the path of the preceding sibling image, with the same
// contract as Next.
func (s *Session) Prev() (path string, ok bool) {
	if s.index <= 0 {
		return "", false
	}
	return s.siblings[s.index-1], true
}

// CropCount returns the number of crops saved from the given image in this
// session.
func (s *Session) CropCount(path string) int { return s.counters[path] }

// SetCropCount records the last crop number used for the image. Counters are
// monotonic; attempts to lower a counter are ignored.
func (s *Session) SetCropCount(path string, n int) {
	if n > s.counters[path] {
		s.counters[path] = n
	}
}
