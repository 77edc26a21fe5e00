package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", func() {
			a.handleOpenDialog()
		}),
		fyne.NewMenuItem("Save Crop", func() {
			a.handleSaveCrop()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", func() {
			a.handleSettings()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.fyneApp.Quit()
		}),
	)

	navigateMenu := fyne.NewMenu("Navigate",
		fyne.NewMenuItem("Previous Image", func() {
			a.handlePrevImage()
		}),
		fyne.NewMenuItem("Next Image", func() {
			a.handleNextImage()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Help...", func() {
			a.handleHelp()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, navigateMenu, helpMenu))
}

func (a *Application) setupShortcuts() {
	a.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyO,
		Modifier: fyne.KeyModifierControl,
	}, func(fyne.Shortcut) {
		a.handleOpenDialog()
	})

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			a.handleClearSelection()
		case fyne.KeyReturn, fyne.KeyEnter, fyne.KeySpace:
			a.handleSaveCrop()
		case fyne.KeyLeft:
			a.handlePrevImage()
		case fyne.KeyRight:
			a.handleNextImage()
		}
	})
}
