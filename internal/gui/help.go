package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

type helpSection struct {
	title string
	body  string
}

var helpSections = []helpSection{
	{
		title: "Selecting a region",
		body: "Click and drag on the image to draw a rectangle.\n" +
			"Drag inside the rectangle to move it.\n" +
			"Drag a corner or edge handle to resize it.\n" +
			"Click inside without dragging, or press Esc, to clear it.",
	},
	{
		title: "Saving crops",
		body: "Press Enter or Space, or use the Save Crop button.\n" +
			"Crops are saved next to the image using the naming pattern\n" +
			"from Settings; existing files are never overwritten.",
	},
	{
		title: "Browsing a folder",
		body: "The Left and Right arrow keys step through the other\n" +
			"images in the same folder, in name order.",
	},
	{
		title: "Keyboard shortcuts",
		body: "Ctrl+O\topen an image\n" +
			"Enter / Space\tsave the current crop\n" +
			"Left / Right\tprevious / next image\n" +
			"Esc\tclear the selection",
	},
}

func ShowHelpDialog(win fyne.Window) {
	items := make([]fyne.CanvasObject, 0, len(helpSections)*2)
	for _, s := range helpSections {
		items = append(items,
			widget.NewLabelWithStyle(s.title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabel(s.body),
		)
	}

	scroll := container.NewVScroll(container.NewVBox(items...))
	scroll.SetMinSize(fyne.NewSize(420, 380))

	dialog.ShowCustom("Help", "Close", scroll, win)
}
