package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// FolderMode selects where saved crops are written.
type FolderMode string

const (
	// FolderModeSubfolder writes into a named subfolder beside the source image.
	FolderModeSubfolder FolderMode = "subfolder"
	// FolderModeSame writes next to the source image.
	FolderModeSame FolderMode = "same"
	// FolderModeCustom writes into a user-chosen folder.
	FolderModeCustom FolderMode = "custom"
)

const (
	DefaultSubfolder = "cropped"
	DefaultPattern   = "{base}_cr{n}"
)

// Settings holds the persisted application configuration. It is loaded once
// at startup and written back when the settings dialog is accepted or the
// last-opened file changes.
type Settings struct {
	FolderMode   FolderMode `toml:"folder_mode"`
	Subfolder    string     `toml:"subfolder"`
	CustomFolder string     `toml:"custom_folder"`
	Pattern      string     `toml:"pattern"`
	Overwrite    bool       `toml:"overwrite"`
	LastFile     string     `toml:"last_file"`
}

// Default returns Settings populated with built-in defaults.
func Default() *Settings {
	return &Settings{
		FolderMode: FolderModeSubfolder,
		Subfolder:  DefaultSubfolder,
		Pattern:    DefaultPattern,
	}
}

// Validate repairs out-of-range values in place so callers always operate on
// a usable configuration.
func (s *Settings) Validate() error {
	switch s.FolderMode {
	case FolderModeSubfolder, FolderModeSame, FolderModeCustom:
	default:
		s.FolderMode = FolderModeSubfolder
	}
	if strings.TrimSpace(s.Subfolder) == "" {
		s.Subfolder = DefaultSubfolder
	}
	// A pattern without {n} would generate colliding names forever.
	if !strings.Contains(s.Pattern, "{n}") {
		s.Pattern = DefaultPattern
	}
	return nil
}

// DefaultPath returns the settings file location under the user config
// directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "imagecropper", "settings.toml")
}

// Load reads settings from the given TOML file. A missing or unreadable file
// yields defaults without error; a malformed file yields defaults with the
// decode error so callers may log it and continue.
func Load(path string) (*Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return Default(), err
	}
	_ = s.Validate()
	return s, nil
}

// Save writes the settings to the given path in TOML format, creating parent
// directories as needed.
func (s *Settings) Save(path string) error {
	_ = s.Validate()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}

// OutputFolder resolves the folder crops of srcPath should be written to.
// An empty custom folder falls back to the source folder.
func (s *Settings) OutputFolder(srcPath string) string {
	srcFolder := filepath.Dir(srcPath)
	switch s.FolderMode {
	case FolderModeSame:
		return srcFolder
	case FolderModeCustom:
		custom := strings.TrimSpace(s.CustomFolder)
		if custom == "" {
			return srcFolder
		}
		return custom
	default:
		sub := strings.TrimSpace(s.Subfolder)
		if sub == "" {
			sub = DefaultSubfolder
		}
		return filepath.Join(srcFolder, sub)
	}
}
