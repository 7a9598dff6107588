package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/depot/internal/catalog"
)

type textBox string

func (t *textBox) Value() string { return string(*t) }

type recordingNavigator struct {
	paths []string
	err   error
}

func (r *recordingNavigator) Navigate(path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

func samplePrograms() []catalog.Program {
	return []catalog.Program{
		{Name: "Total Installer", Description: "Complete installer", Icon: "assets/images/total_installer.png", File: "assets/downloads/total_installer.exe"},
		{Name: "Xi Browser", Description: "Tabbed browser", Icon: "assets/images/xi_browser.png", File: "assets/downloads/xi_browser.exe"},
		{Name: "Password GEN", Description: "Generates passwords", File: "assets/downloads/password_gen.exe"},
	}
}

func titles(cards []*Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Title)
	}
	return out
}

func TestRender_OneCardPerProgramInOrder(t *testing.T) {
	var b Board
	r := NewRenderer(&b)
	programs := samplePrograms()

	cards := r.Render(programs)
	if b.Len() != len(programs) {
		t.Fatalf("Len() = %d, want %d", b.Len(), len(programs))
	}
	if len(cards) != len(programs) {
		t.Fatalf("Render returned %d cards, want %d", len(cards), len(programs))
	}
	want := []string{"Total Installer", "Xi Browser", "Password GEN"}
	if diff := cmp.Diff(want, titles(b.Cards())); diff != "" {
		t.Fatalf("card order mismatch (-want +got):\n%s", diff)
	}
	for i, card := range b.Cards() {
		if card.Key != strings.ToLower(programs[i].Name) {
			t.Fatalf("card %d Key = %q, want %q", i, card.Key, strings.ToLower(programs[i].Name))
		}
		if !card.Visible {
			t.Fatalf("card %d not visible after render", i)
		}
		got, ok := r.Program(card.ID)
		if !ok || got != programs[i] {
			t.Fatalf("Program(%d) = %#v, %v; want %#v", card.ID, got, ok, programs[i])
		}
	}
}

func TestRender_TotalInstallerKey(t *testing.T) {
	var b Board
	NewRenderer(&b).Render(catalog.Default())
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
	if got := b.Cards()[0].Key; got != "total installer" {
		t.Fatalf("Key = %q, want %q", got, "total installer")
	}
}

func TestRender_TwiceDuplicatesCards(t *testing.T) {
	var b Board
	r := NewRenderer(&b)
	r.Render(samplePrograms())
	r.Render(samplePrograms())
	if b.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", b.Len())
	}
	seen := make(map[CardID]bool)
	for _, card := range b.Cards() {
		if seen[card.ID] {
			t.Fatalf("duplicate card id %d", card.ID)
		}
		seen[card.ID] = true
	}
}

func TestFilter_SubstringOnLowercaseName(t *testing.T) {
	cases := []struct {
		name   string
		filter string
		want   []string
	}{
		{"empty shows all", "", []string{"Total Installer", "Xi Browser", "Password GEN"}},
		{"lowercase", "total", []string{"Total Installer"}},
		{"mixed case input", "XI b", []string{"Xi Browser"}},
		{"uppercase name", "gen", []string{"Password GEN"}},
		{"shared substring", "s", []string{"Total Installer", "Xi Browser", "Password GEN"}},
		{"no match", "xyz", nil},
		{"description ignored", "tabbed", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b Board
			NewRenderer(&b).Render(samplePrograms())
			box := textBox(tc.filter)
			f := NewFilter(&box, &b)

			shown := f.Apply()
			got := titles(Visible(&b))
			if len(got) == 0 {
				got = nil
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("visible mismatch (-want +got):\n%s", diff)
			}
			if shown != len(tc.want) {
				t.Fatalf("Apply() = %d, want %d", shown, len(tc.want))
			}
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	var b Board
	NewRenderer(&b).Render(samplePrograms())
	box := textBox("er")
	f := NewFilter(&box, &b)

	f.Apply()
	first := titles(Visible(&b))
	f.Apply()
	second := titles(Visible(&b))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second Apply changed visibility (-first +second):\n%s", diff)
	}
}

func TestFilter_ReadsLiveInput(t *testing.T) {
	var b Board
	NewRenderer(&b).Render(catalog.Default())
	box := textBox("total")
	f := NewFilter(&box, &b)

	f.Apply()
	if !b.Cards()[0].Visible {
		t.Fatalf("card hidden for filter %q", box)
	}

	box = "xyz"
	f.Apply()
	if b.Cards()[0].Visible {
		t.Fatalf("card visible for filter %q", box)
	}

	box = ""
	f.Apply()
	if !b.Cards()[0].Visible {
		t.Fatalf("card hidden for empty filter")
	}
}

func TestDownload_NavigatesToExactPath(t *testing.T) {
	var b Board
	r := NewRenderer(&b)
	r.Render(catalog.Default())
	nav := &recordingNavigator{}

	path, err := NewDownloader(r, nav).Download(b.Cards()[0].ID)
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	want := "assets/downloads/total_installer.exe"
	if path != want {
		t.Fatalf("Download path = %q, want %q", path, want)
	}
	if diff := cmp.Diff([]string{want}, nav.paths); diff != "" {
		t.Fatalf("navigated paths mismatch (-want +got):\n%s", diff)
	}
}

func TestDownload_UnknownCard(t *testing.T) {
	var b Board
	r := NewRenderer(&b)
	nav := &recordingNavigator{}

	_, err := NewDownloader(r, nav).Download(42)
	if !errors.Is(err, ErrUnknownCard) {
		t.Fatalf("Download error = %v, want ErrUnknownCard", err)
	}
	if len(nav.paths) != 0 {
		t.Fatalf("navigator called for unknown card: %v", nav.paths)
	}
}

func TestDownload_NavigatorErrorReturned(t *testing.T) {
	var b Board
	r := NewRenderer(&b)
	r.Render(catalog.Default())
	boom := errors.New("no handler")
	nav := &recordingNavigator{err: boom}

	_, err := NewDownloader(r, nav).Download(b.Cards()[0].ID)
	if !errors.Is(err, boom) {
		t.Fatalf("Download error = %v, want %v", err, boom)
	}
	if len(nav.paths) != 1 {
		t.Fatalf("navigator called %d times, want 1", len(nav.paths))
	}
}

func TestTrigger_RepeatNavigatesAgain(t *testing.T) {
	nav := &recordingNavigator{}
	path := "assets/downloads/total_installer.exe"
	for i := 0; i < 2; i++ {
		if err := Trigger(nav, path); err != nil {
			t.Fatalf("Trigger returned error: %v", err)
		}
	}
	if diff := cmp.Diff([]string{path, path}, nav.paths); diff != "" {
		t.Fatalf("navigated paths mismatch (-want +got):\n%s", diff)
	}
}
