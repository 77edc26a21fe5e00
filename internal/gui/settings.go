package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"imagecropper/internal/config"
	"imagecropper/internal/naming"
)

const (
	modeLabelSubfolder = "Subfolder next to the image"
	modeLabelSame      = "Same folder as the image"
	modeLabelCustom    = "Custom folder"
)

func modeLabel(m config.FolderMode) string {
	switch m {
	case config.FolderModeSame:
		return modeLabelSame
	case config.FolderModeCustom:
		return modeLabelCustom
	default:
		return modeLabelSubfolder
	}
}

func labelMode(s string) config.FolderMode {
	switch s {
	case modeLabelSame:
		return config.FolderModeSame
	case modeLabelCustom:
		return config.FolderModeCustom
	default:
		return config.FolderModeSubfolder
	}
}

// inputStates reports which output-folder and naming inputs are editable
// for the given overwrite flag and folder mode. Overwrite mode saves over
// the source file, so folder and pattern settings are ignored and greyed
// out while it is enabled.
func inputStates(overwrite bool, mode config.FolderMode) (subfolder, custom, pattern bool) {
	if overwrite {
		return false, false, false
	}
	return mode == config.FolderModeSubfolder, mode == config.FolderModeCustom, true
}

// ShowSettingsDialog edits a copy of the settings; onSave receives the
// validated result only when the user confirms.
func ShowSettingsDialog(win fyne.Window, current config.Settings, onSave func(config.Settings)) {
	subfolderEntry := widget.NewEntry()
	subfolderEntry.SetText(current.Subfolder)

	customEntry := widget.NewEntry()
	customEntry.SetText(current.CustomFolder)
	customEntry.SetPlaceHolder("Choose a folder…")

	browseButton := widget.NewButton("Browse…", nil)

	modeRadio := widget.NewRadioGroup(
		[]string{modeLabelSubfolder, modeLabelSame, modeLabelCustom}, nil)
	modeRadio.SetSelected(modeLabel(current.FolderMode))

	patternEntry := widget.NewEntry()

	overwriteCheck := widget.NewCheck("Overwrite the original image instead of creating a copy", nil)
	overwriteCheck.SetChecked(current.Overwrite)

	syncInputs := func() {
		sub, custom, pattern := inputStates(overwriteCheck.Checked, labelMode(modeRadio.Selected))
		setEnabled(subfolderEntry, sub)
		setEnabled(customEntry, custom)
		setEnabled(patternEntry, pattern)
		if custom {
			browseButton.Enable()
		} else {
			browseButton.Disable()
		}
		if overwriteCheck.Checked {
			modeRadio.Disable()
		} else {
			modeRadio.Enable()
		}
	}
	modeRadio.OnChanged = func(string) { syncInputs() }
	syncInputs()

	browseButton.OnTapped = func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			customEntry.SetText(uri.Path())
		}, win)
	}

	preview := widget.NewLabel("")
	patternEntry.Validator = func(s string) error {
		if !strings.Contains(s, "{n}") {
			return fmt.Errorf("pattern must contain {n}")
		}
		return nil
	}
	patternEntry.OnChanged = func(s string) {
		preview.SetText("Example: " + naming.Expand(s, "photo", 1, ".jpg"))
	}
	patternEntry.SetText(current.Pattern)

	overwriteCheck.OnChanged = func(on bool) {
		syncInputs()
		if !on {
			return
		}
		dialog.ShowConfirm("Overwrite original?",
			"Saving a crop will permanently replace the source file.\nThere is no undo. Are you sure?",
			func(ok bool) {
				if !ok {
					overwriteCheck.SetChecked(false)
				}
			}, win)
	}

	resetButton := widget.NewButton("Reset to defaults", func() {
		d := config.Default()
		modeRadio.SetSelected(modeLabel(d.FolderMode))
		subfolderEntry.SetText(d.Subfolder)
		customEntry.SetText(d.CustomFolder)
		patternEntry.SetText(d.Pattern)
		overwriteCheck.SetChecked(d.Overwrite)
	})

	content := container.NewVBox(
		widget.NewLabelWithStyle("Where crops are saved", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		modeRadio,
		container.NewBorder(nil, nil, widget.NewLabel("Subfolder name:"), nil, subfolderEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Custom folder:"), browseButton, customEntry),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("File naming", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Pattern:"), nil, patternEntry),
		preview,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Danger zone", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		overwriteCheck,
		widget.NewSeparator(),
		resetButton,
	)

	d := dialog.NewCustomConfirm("Settings", "Save", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		result := config.Settings{
			FolderMode:   labelMode(modeRadio.Selected),
			Subfolder:    strings.TrimSpace(subfolderEntry.Text),
			CustomFolder: strings.TrimSpace(customEntry.Text),
			Pattern:      strings.TrimSpace(patternEntry.Text),
			Overwrite:    overwriteCheck.Checked,
			LastFile:     current.LastFile,
		}
		result.Validate()
		onSave(result)
	}, win)
	d.Resize(fyne.NewSize(480, 460))
	d.Show()
}

func setEnabled(e *widget.Entry, on bool) {
	if on {
		e.Enable()
	} else {
		e.Disable()
	}
}
