package session

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// newTestFolder creates a folder with a mix of image and non-image files and
// returns the folder plus the image paths in sorted order.
func newTestFolder(t *testing.T) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	a := touch(t, dir, "a.jpg")
	b := touch(t, dir, "b.png")
	d := touch(t, dir, "d.webp")
	touch(t, dir, "c.txt")
	touch(t, dir, "notes.md")
	return dir, []string{a, b, d}
}

func TestOpen_ScansAndFiltersSiblings(t *testing.T) {
	_, imgs := newTestFolder(t)
	s := New()
	if err := s.Open(imgs[1]); err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Current() != imgs[1] {
		t.Errorf("current = %q", s.Current())
	}
	idx, total := s.Position()
	if idx != 2 || total != 3 {
		t.Errorf("position = %d/%d, want 2/3", idx, total)
	}
}

func TestOpen_RejectsUnsupportedAndMissing(t *testing.T) {
	dir, _ := newTestFolder(t)
	s := New()
	if err := s.Open(filepath.Join(dir, "c.txt")); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if err := s.Open(filepath.Join(dir, "ghost.png")); err == nil {
		t.Error("expected error for missing file")
	}
	if err := s.Open(dir); err == nil {
		t.Error("expected error for directory")
	}
	if s.Current() != "" {
		t.Errorf("failed opens must not change state, current = %q", s.Current())
	}
}

func TestNavigation_NoWrap(t *testing.T) {
	_, imgs := newTestFolder(t)
	s := New()
	if err := s.Open(imgs[0]); err != nil {
		t.Fatal(err)
	}

	if _, ok := s.Prev(); ok {
		t.Error("prev at first image should be a no-op")
	}

	next, ok := s.Next()
	if !ok || next != imgs[1] {
		t.Fatalf("next = %q ok=%v", next, ok)
	}
	if err := s.Open(next); err != nil {
		t.Fatal(err)
	}
	next, ok = s.Next()
	if !ok || next != imgs[2] {
		t.Fatalf("next = %q ok=%v", next, ok)
	}
	if err := s.Open(next); err != nil {
		t.Fatal(err)
	}

	if _, ok := s.Next(); ok {
		t.Error("next at last image should be a no-op")
	}
	if s.Current() != imgs[2] {
		t.Errorf("no-op navigation changed current image to %q", s.Current())
	}
}

func TestNavigation_RequiresOpenImage(t *testing.T) {
	s := New()
	if _, ok := s.Next(); ok {
		t.Error("next without open image")
	}
	if _, ok := s.Prev(); ok {
		t.Error("prev without open image")
	}
}

func TestCropCounters_MonotonicPerImage(t *testing.T) {
	_, imgs := newTestFolder(t)
	s := New()
	if err := s.Open(imgs[0]); err != nil {
		t.Fatal(err)
	}

	if n := s.CropCount(imgs[0]); n != 0 {
		t.Fatalf("fresh counter = %d", n)
	}
	s.SetCropCount(imgs[0], 1)
	s.SetCropCount(imgs[0], 2)
	s.SetCropCount(imgs[0], 1) // lowering is ignored
	if n := s.CropCount(imgs[0]); n != 2 {
		t.Errorf("counter = %d, want 2", n)
	}

	// Counters are per image and survive navigation.
	if err := s.Open(imgs[1]); err != nil {
		t.Fatal(err)
	}
	if n := s.CropCount(imgs[1]); n != 0 {
		t.Errorf("counter leaked across images: %d", n)
	}
	if n := s.CropCount(imgs[0]); n != 2 {
		t.Errorf("counter lost after switching images: %d", n)
	}
}

func TestIsSupported(t *testing.T) {
	for _, p := range []string{"a.jpg", "B.JPEG", "x.png", "y.tif", "z.webp"} {
		if !IsSupported(p) {
			t.Errorf("%q should be supported", p)
		}
	}
	for _, p := range []string{"a.txt", "b", "c.svg", "d.jpg.bak"} {
		if IsSupported(p) {
			t.Errorf("%q should not be supported", p)
		}
	}
}
