package board

import (
	"errors"
	"fmt"
)

// ErrUnknownCard is returned when a card id has no rendered program.
var ErrUnknownCard = errors.New("unknown card")

// Downloader resolves a card to its program file and navigates there.
type Downloader struct {
	renderer  *Renderer
	navigator Navigator
}

// NewDownloader returns a Downloader backed by the renderer's card mapping.
func NewDownloader(renderer *Renderer, navigator Navigator) *Downloader {
	return &Downloader{renderer: renderer, navigator: navigator}
}

// Download navigates to the file of the program behind id and returns that
// path.
func (d *Downloader) Download(id CardID) (string, error) {
	p, ok := d.renderer.Program(id)
	if !ok {
		return "", fmt.Errorf("download card %d: %w", id, ErrUnknownCard)
	}
	return p.File, Trigger(d.navigator, p.File)
}

// Trigger navigates to path exactly as given.
func Trigger(nav Navigator, path string) error {
	return nav.Navigate(path)
}
