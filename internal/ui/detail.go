package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// newMarkdownRenderer builds the description renderer for a pane width.
// A nil result means descriptions are shown as plain text.
func newMarkdownRenderer(style string, width int) *glamour.TermRenderer {
	if width < 20 {
		return nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return nil
	}
	return renderer
}

// renderDetail renders the pane below the grid for the selected program.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	pane := styles.Detail.Width(m.width)
	bodyHeight := detailHeight - 1

	card := m.selectedCard()
	if card == nil {
		return pane.Render(padLines(styles.MutedText.Render(" No program selected"), bodyHeight))
	}
	program, ok := m.renderer.Program(card.ID)
	if !ok {
		return pane.Render(padLines("", bodyHeight))
	}

	pathWidth := (m.width - len(program.Name) - 16) / 2
	header := " " + styles.CardTitle.Render(program.Name) +
		"  " + styles.FaintText.Render("icon ") + styles.MutedText.Render(truncateMiddle(program.Icon, pathWidth)) +
		"  " + styles.FaintText.Render("file ") + styles.AccentText.Render(truncateMiddle(program.File, pathWidth))

	body := header + "\n" + m.describe(program.Description)
	return pane.Render(padLines(clipLines(body, bodyHeight), bodyHeight))
}

// describe renders a description as markdown, falling back to plain text.
func (m Model) describe(text string) string {
	if strings.TrimSpace(text) == "" {
		return m.theme.Styles().FaintText.Render(" No description")
	}
	if m.markdown != nil {
		if out, err := m.markdown.Render(text); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return " " + m.theme.Styles().Text.Render(text)
}

func clipLines(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

func padLines(text string, n int) string {
	count := strings.Count(text, "\n") + 1
	if count >= n {
		return text
	}
	return text + strings.Repeat("\n", n-count)
}
