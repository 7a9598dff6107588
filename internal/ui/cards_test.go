package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/depot/internal/board"
)

func TestColumnsFor(t *testing.T) {
	cases := []struct {
		width int
		want  int
	}{
		{0, 1},
		{10, 1},
		{cardOuterWidth, 1},
		{2*cardOuterWidth + cardGap - 1, 1},
		{2*cardOuterWidth + cardGap, 2},
		{120, 3},
	}
	for _, tc := range cases {
		if got := columnsFor(tc.width); got != tc.want {
			t.Fatalf("columnsFor(%d) = %d, want %d", tc.width, got, tc.want)
		}
	}
}

func TestRenderCard_Content(t *testing.T) {
	card := &board.Card{
		Title:       "Total Installer",
		Description: "Complete installer from strombackfamily.com\nsecond line",
		Icon:        "assets/images/total_installer.png",
	}
	out := renderCard(card, false, GetTheme("Slate").Styles())

	for _, want := range []string{"total_installer.png", "Total Installer", downloadLabel} {
		if !strings.Contains(out, want) {
			t.Fatalf("card missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "second line") {
		t.Fatalf("card shows more than the first description line:\n%s", out)
	}
	if got := lipgloss.Width(out); got != cardOuterWidth {
		t.Fatalf("card width = %d, want %d", got, cardOuterWidth)
	}
}

func TestRenderCard_MissingIcon(t *testing.T) {
	out := renderCard(&board.Card{Title: "Auto Clicker"}, true, GetTheme("").Styles())
	if !strings.Contains(out, "no icon") {
		t.Fatalf("card missing icon placeholder:\n%s", out)
	}
}

func TestRenderGrid_Rows(t *testing.T) {
	cards := []*board.Card{{Title: "a"}, {Title: "b"}, {Title: "c"}}
	styles := GetTheme("Nightfox").Styles()

	out, rowHeight := renderGrid(cards, 0, 2*cardOuterWidth+cardGap, styles)
	if rowHeight == 0 {
		t.Fatalf("rowHeight = 0")
	}
	if got := lipgloss.Height(out); got != 2*rowHeight {
		t.Fatalf("grid height = %d, want %d (two rows)", got, 2*rowHeight)
	}

	if out, h := renderGrid(nil, 0, 80, styles); out != "" || h != 0 {
		t.Fatalf("renderGrid(nil) = %q, %d; want empty", out, h)
	}
}
