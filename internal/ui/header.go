package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title bar with the visible/total count.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	count := fmt.Sprintf("%d of %d programs", len(m.visible), m.board.Len())
	if m.search.Value() == "" {
		count = fmt.Sprintf("%d programs", m.board.Len())
	}

	left := styles.Logo.Render("depot") + "  " + styles.Text.Render("Downloads")
	right := styles.MutedText.Render(count)
	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderFooter shows the last download result, or key hints when there is none.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.status.text != "" {
		text := styles.SuccessText.Render(m.status.text)
		if m.status.failed {
			text = styles.DangerText.Render(m.status.text)
		}
		return styles.Footer.Width(m.width).Render(text)
	}

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		hints = append(hints, styles.AccentText.Render(h.Key)+" "+h.Desc)
	}
	return styles.Footer.Width(m.width).Render(strings.Join(hints, "  "))
}

// renderEmpty fills the grid area when no card matches.
func (m Model) renderEmpty() string {
	styles := m.theme.Styles()
	if m.board.Len() == 0 {
		return styles.MutedText.Render(" The catalog is empty")
	}
	return styles.MutedText.Render(fmt.Sprintf(" No programs match %q", m.search.Value()))
}
