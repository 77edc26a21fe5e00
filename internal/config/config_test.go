package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if s.FolderMode != FolderModeSubfolder || s.Subfolder != DefaultSubfolder || s.Pattern != DefaultPattern {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestLoad_CorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("folder_mode = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err == nil {
		t.Fatal("expected decode error for corrupt file")
	}
	if s.Pattern != DefaultPattern {
		t.Fatalf("corrupt file should yield defaults, got %+v", s)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.toml")
	s := Default()
	s.FolderMode = FolderModeCustom
	s.CustomFolder = "/tmp/out"
	s.Pattern = "{base}-{n}"
	s.Overwrite = true
	s.LastFile = "/photos/a.jpg"
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *s {
		t.Fatalf("round trip mismatch: saved %+v loaded %+v", s, got)
	}
}

func TestValidate_RepairsBadValues(t *testing.T) {
	s := &Settings{FolderMode: "elsewhere", Subfolder: "  ", Pattern: "{base}_crop"}
	_ = s.Validate()
	if s.FolderMode != FolderModeSubfolder {
		t.Errorf("unknown folder mode not repaired: %q", s.FolderMode)
	}
	if s.Subfolder != DefaultSubfolder {
		t.Errorf("blank subfolder not repaired: %q", s.Subfolder)
	}
	if s.Pattern != DefaultPattern {
		t.Errorf("pattern without {n} not repaired: %q", s.Pattern)
	}
}

func TestOutputFolder(t *testing.T) {
	src := filepath.Join("photos", "a.jpg")

	s := Default()
	if got, want := s.OutputFolder(src), filepath.Join("photos", DefaultSubfolder); got != want {
		t.Errorf("subfolder mode: got %q want %q", got, want)
	}

	s.FolderMode = FolderModeSame
	if got := s.OutputFolder(src); got != "photos" {
		t.Errorf("same mode: got %q", got)
	}

	s.FolderMode = FolderModeCustom
	s.CustomFolder = filepath.Join("out", "crops")
	if got := s.OutputFolder(src); got != filepath.Join("out", "crops") {
		t.Errorf("custom mode: got %q", got)
	}

	s.CustomFolder = "   "
	if got := s.OutputFolder(src); got != "photos" {
		t.Errorf("blank custom folder should fall back to source folder, got %q", got)
	}
}
