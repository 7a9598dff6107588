// Package ui provides the terminal interface for depot.
//
// # Architecture Overview
//
// The package implements a Bubble Tea program around a board.Board. The
// catalog is rendered into the board once, in New, and never again. The
// search box is a bubbles textinput; every key it receives is followed by a
// synchronous board.Filter pass that reads the box's current text, so the
// grid always reflects exactly what has been typed.
//
// # Package Structure
//
//   - app.go: Model, key dispatch, filter and download wiring, Run
//   - cards.go: card and grid rendering
//   - detail.go: detail pane with markdown descriptions (glamour)
//   - header.go: title bar, footer and empty-state text
//   - help.go: help overlay
//   - keys.go: key bindings
//   - theme.go: color palettes and lipgloss styles
//
// # Screen Layout
//
//	┌ depot  Downloads                         3 programs ┐
//	  Search: tot
//	  ╭──────────────────────────────╮
//	  │ ◈ total_installer.png        │
//	  │ Total Installer              │
//	  │ Complete installer from ...  │
//	  │ [ Download ]                 │
//	  ╰──────────────────────────────╯
//	  ── detail pane ──
//	  Opening assets/downloads/total_installer.exe
//
// Cards flow left to right and wrap to the terminal width. The grid scrolls
// in a viewport to keep the selected card on screen. The detail pane is
// dropped when the terminal is too short or the user hides it.
//
// # Downloads
//
// Enter resolves the selected card to its program through the renderer and
// passes the file path, unmodified, to the configured board.Navigator. The
// outcome is shown in the footer and logged. Nothing is retried.
package ui
