package ui

// Card grid geometry.
const (
	// cardOuterWidth is the rendered width of a card including its border.
	cardOuterWidth = 32

	// cardStyleWidth is the lipgloss width of a card: outer width minus the border.
	cardStyleWidth = cardOuterWidth - 2

	// cardTextWidth is the room left for text after horizontal padding.
	cardTextWidth = cardStyleWidth - 2

	// cardGap is the number of blank columns between cards in a row.
	cardGap = 1
)

// Screen regions.
const (
	// chromeHeight covers the header, search and footer lines.
	chromeHeight = 3

	// detailHeight is the height of the detail pane including its separator.
	detailHeight = 9

	// minGridHeight keeps at least one card row on screen before the detail
	// pane is dropped.
	minGridHeight = 6
)
