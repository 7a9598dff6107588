package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/depot/internal/board"
)

const downloadLabel = "[ Download ]"

// columnsFor returns how many cards fit side by side in width.
func columnsFor(width int) int {
	cols := (width + cardGap) / (cardOuterWidth + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// renderCard draws one card: icon reference, title, description and the
// download button.
func renderCard(card *board.Card, selected bool, styles Styles) string {
	frame := styles.Card
	button := styles.Button
	if selected {
		frame = styles.CardSelected
		button = styles.ButtonSelected
	}

	lines := []string{
		styles.FaintText.Render("◈ " + iconLabel(card.Icon, cardTextWidth-2)),
		styles.CardTitle.Render(truncate(card.Title, cardTextWidth)),
		styles.MutedText.Render(truncate(firstLine(card.Description), cardTextWidth)),
		button.Render(downloadLabel),
	}
	return frame.Render(strings.Join(lines, "\n"))
}

// renderGrid lays the visible cards out in rows. It returns the grid and the
// height of one row so callers can scroll to the selection.
func renderGrid(cards []*board.Card, selected, width int, styles Styles) (string, int) {
	if len(cards) == 0 {
		return "", 0
	}
	cols := columnsFor(width)
	gap := strings.Repeat(" ", cardGap)

	var rows []string
	rowHeight := 0
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		parts := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, gap)
			}
			parts = append(parts, renderCard(cards[i], i == selected, styles))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		if h := lipgloss.Height(row); h > rowHeight {
			rowHeight = h
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...), rowHeight
}
