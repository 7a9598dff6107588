// Package board renders programs as cards, filters them by name and starts
// downloads.
//
// The three pieces share a Container: Renderer fills it once at startup,
// Filter flips card visibility on every change of a SearchBox, and
// Downloader maps a card back to its program through the Renderer and hands
// the file path to a Navigator unchanged.
//
// Nothing here is safe for concurrent use. Callers drive all three from a
// single goroutine (the bubbletea update loop in depot).
package board
