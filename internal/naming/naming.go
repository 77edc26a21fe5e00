// Package naming generates output filenames for saved crops from a
// user-configurable pattern with {base}, {n} and {ext} placeholders.
package naming

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// defaultPattern is the fallback applied when a pattern cannot produce
// unique names because it lacks the {n} placeholder.
const defaultPattern = "{base}_cr{n}"

// Expand substitutes the placeholders in pattern and appends the extension.
// base is the source filename without extension, n the crop number and ext
// the output extension including the leading dot.
func Expand(pattern, base string, n int, ext string) string {
	if !strings.Contains(pattern, "{n}") {
		pattern = defaultPattern
	}
	stem := strings.NewReplacer(
		"{base}", base,
		"{n}", strconv.Itoa(n),
		"{ext}", ext,
	).Replace(pattern)
	// The extension is always appended, even when {ext} also appears in the
	// pattern, so the result always carries an encodable suffix.
	return stem + ext
}

// NextFree returns the first generated filename that does not collide with
// an existing file in dir, starting the counter at start+1. The returned
// counter is the number actually used, so callers can record it and never
// reuse it within the session.
func NextFree(dir, pattern, base, ext string, start int) (name string, n int) {
	n = start
	for {
		n++
		name = Expand(pattern, base, n, ext)
		if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
			return name, n
		}
	}
}

// SplitBase returns the filename of path without its extension, and the
// extension in lower case.
func SplitBase(path string) (base, ext string) {
	name := filepath.Base(path)
	ext = strings.ToLower(filepath.Ext(name))
	return strings.TrimSuffix(name, filepath.Ext(name)), ext
}
