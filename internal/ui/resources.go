package ui

import (
	"os"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "nvenc-encoder.png"
)

// LoadLogoResource loads the application icon from the working directory.
// A missing icon is not an error for callers; they fall back to the theme icon.
func LoadLogoResource() (fyne.Resource, error) {
	if _, err := os.Stat(AppIcon); err != nil {
		return nil, err
	}
	return fyne.LoadResourceFromPath(AppIcon)
}
