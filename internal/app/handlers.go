package app

import (
	"fmt"
	"image"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"imagecropper/internal/config"
	"imagecropper/internal/gui"
	"imagecropper/internal/naming"
	"imagecropper/internal/pipeline"
	"imagecropper/internal/session"
)

func (a *Application) handleOpenDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		a.openPath(path)
	}, a.window)
	fd.SetFilter(storage.NewExtensionFileFilter(session.SupportedExtensions()))
	fd.Show()
}

// openPath loads and displays the image at path. On any failure the
// previously displayed image and session stay untouched.
func (a *Application) openPath(path string) {
	if !session.IsSupported(path) {
		dialog.ShowError(fmt.Errorf("unsupported file type: %s", filepath.Base(path)), a.window)
		return
	}
	data, err := a.loader.Load(path)
	if err != nil {
		a.logger.Error("App", err, map[string]interface{}{"path": path})
		dialog.ShowError(fmt.Errorf("could not open %s: %w", filepath.Base(path), err), a.window)
		return
	}
	if err := a.session.Open(path); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.current = data
	a.ctrl.SetImage(data.Width, data.Height)
	a.view.SetImage(data.Image)

	a.cfg.LastFile = a.session.Current()
	if err := a.cfg.Save(a.cfgPath); err != nil {
		a.logger.Warning("App", "failed to persist settings", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.updateInfo()
	a.status.Set("Drag on the image to select a region")
}

func (a *Application) handleSaveCrop() {
	if a.current == nil {
		a.status.Flash("No image loaded")
		return
	}
	sel, ok := a.ctrl.Selection()
	if !ok {
		a.status.Flash("Draw a selection first")
		return
	}

	crop, err := pipeline.Crop(a.current.Image, sel.ImageRect())
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	if a.cfg.Overwrite {
		a.overwriteOriginal(crop)
		return
	}

	srcPath := a.current.Path
	base, srcExt := naming.SplitBase(srcPath)
	outDir := a.cfg.OutputFolder(srcPath)
	name, n := naming.NextFree(outDir, a.cfg.Pattern, base, pipeline.OutputExt(srcExt),
		a.session.CropCount(srcPath))

	if err := a.saver.Save(filepath.Join(outDir, name), crop); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.session.SetCropCount(srcPath, n)
	a.updateInfo()
	a.status.Flash("Saved " + name)
}

// overwriteOriginal replaces the source file with the crop, then reloads it.
// Reloading resets the selection and the displayed dimensions.
func (a *Application) overwriteOriginal(crop image.Image) {
	path := a.current.Path
	if err := a.saver.Overwrite(path, crop); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.openPath(path)
	a.status.Flash("Overwrote " + filepath.Base(path))
}

func (a *Application) handleClearSelection() {
	a.view.ClearSelection()
}

func (a *Application) handleNextImage() {
	if path, ok := a.session.Next(); ok {
		a.openPath(path)
	}
}

func (a *Application) handlePrevImage() {
	if path, ok := a.session.Prev(); ok {
		a.openPath(path)
	}
}

func (a *Application) handleSettings() {
	gui.ShowSettingsDialog(a.window, *a.cfg, func(updated config.Settings) {
		*a.cfg = updated
		if err := a.cfg.Save(a.cfgPath); err != nil {
			a.logger.Warning("App", "failed to persist settings", map[string]interface{}{
				"error": err.Error(),
			})
		}
		a.logger.Info("App", "settings updated", map[string]interface{}{
			"folder_mode": string(updated.FolderMode),
			"pattern":     updated.Pattern,
			"overwrite":   updated.Overwrite,
		})
	})
}

func (a *Application) handleHelp() {
	gui.ShowHelpDialog(a.window)
}
