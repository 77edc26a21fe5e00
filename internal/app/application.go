package app

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"imagecropper/internal/config"
	"imagecropper/internal/gui"
	"imagecropper/internal/logger"
	"imagecropper/internal/pipeline"
	"imagecropper/internal/selection"
	"imagecropper/internal/session"
)

const (
	AppName      = "Image Cropper"
	AppID        = "com.imagetools.imagecropper"
	WindowWidth  = 1000
	WindowHeight = 700
)

// Application wires the session, selection controller, pipeline and GUI
// together and owns the Fyne window.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	cfg     *config.Settings
	cfgPath string

	session *session.Session
	loader  *pipeline.Loader
	saver   *pipeline.Saver
	ctrl    *selection.Controller

	view   *gui.CropView
	info   *widget.Label
	status *gui.StatusBar

	current *pipeline.ImageData
}

func New(cfg *config.Settings, cfgPath string, log logger.Logger) *Application {
	fyneApp := fyneapp.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	a := &Application{
		fyneApp: fyneApp,
		window:  window,
		logger:  log,
		cfg:     cfg,
		cfgPath: cfgPath,
		session: session.New(),
		loader:  pipeline.NewLoader(log),
		saver:   pipeline.NewSaver(log),
		ctrl:    selection.NewController(),
	}

	a.view = gui.NewCropView(a.ctrl)
	a.view.OnChanged = a.updateInfo
	a.info = widget.NewLabel("Open an image to begin (Ctrl+O)")
	a.status = gui.NewStatusBar()

	content := container.NewBorder(
		container.NewVBox(a.buildToolbar(), a.info),
		a.status.Object(),
		nil, nil,
		a.view,
	)
	window.SetContent(content)

	a.setupMenus()
	a.setupShortcuts()

	return a
}

func (a *Application) buildToolbar() fyne.CanvasObject {
	open := widget.NewButtonWithIcon("Open…", theme.FolderOpenIcon(), a.handleOpenDialog)
	save := widget.NewButtonWithIcon("Save Crop", theme.DocumentSaveIcon(), a.handleSaveCrop)
	save.Importance = widget.HighImportance
	clear := widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), a.handleClearSelection)
	prev := widget.NewButtonWithIcon("Prev", theme.NavigateBackIcon(), a.handlePrevImage)
	next := widget.NewButtonWithIcon("Next", theme.NavigateNextIcon(), a.handleNextImage)
	settings := widget.NewButtonWithIcon("Settings", theme.SettingsIcon(), a.handleSettings)
	help := widget.NewButtonWithIcon("Help", theme.HelpIcon(), a.handleHelp)

	return container.NewHBox(open, widget.NewSeparator(), save, clear,
		widget.NewSeparator(), prev, next, widget.NewSeparator(), settings, help)
}

// Run shows the window and blocks until the application exits. An explicit
// startPath wins over the remembered last file.
func (a *Application) Run(startPath string) {
	path := startPath
	if path == "" && a.cfg.LastFile != "" {
		if _, err := os.Stat(a.cfg.LastFile); err == nil {
			path = a.cfg.LastFile
		}
	}
	if path != "" {
		a.openPath(path)
	}
	a.window.ShowAndRun()
}

// updateInfo refreshes the info line: file name, folder position, pixel
// dimensions, selection size and crops saved so far.
func (a *Application) updateInfo() {
	if a.current == nil {
		a.info.SetText("Open an image to begin (Ctrl+O)")
		return
	}
	idx, total := a.session.Position()
	text := fmt.Sprintf("%s  [%d/%d]  %dx%d px",
		filepath.Base(a.current.Path), idx, total, a.current.Width, a.current.Height)
	if sel, ok := a.ctrl.Selection(); ok {
		r := sel.ImageRect()
		text += fmt.Sprintf("  |  selection %dx%d", r.Dx(), r.Dy())
	}
	if n := a.session.CropCount(a.current.Path); n > 0 {
		text += fmt.Sprintf("  |  crops saved: %d", n)
	}
	a.info.SetText(text)
}
