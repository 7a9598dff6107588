package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/depot/internal/board"
	"github.com/five82/depot/internal/catalog"
	"github.com/five82/depot/internal/opener"
	"github.com/five82/depot/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Programs   []catalog.Program
	Navigator  board.Navigator
	Logger     *zap.Logger
	ThemeName  string
	HideDetail bool
	PrefsPath  string
}

// statusLine is the outcome of the last download.
type statusLine struct {
	text   string
	failed bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	logger    *zap.Logger
	prefsPath string
	keys      keyMap

	// Catalog
	board      *board.Board
	renderer   *board.Renderer
	downloader *board.Downloader

	// UI state
	theme      Theme
	search     textinput.Model
	grid       viewport.Model
	markdown   *glamour.TermRenderer
	width      int
	height     int
	ready      bool
	showHelp   bool
	hideDetail bool

	// Selection over visible cards
	visible  []*board.Card
	selected int

	status statusLine
}

// New creates the model and renders the catalog into its board.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	nav := opts.Navigator
	if nav == nil {
		nav = opener.New()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "program name"
	search.Focus()

	b := &board.Board{}
	renderer := board.NewRenderer(b)
	renderer.Render(opts.Programs)

	m := Model{
		ctx:        ctx,
		logger:     logger,
		prefsPath:  prefsPath,
		keys:       DefaultKeyMap(),
		board:      b,
		renderer:   renderer,
		downloader: board.NewDownloader(renderer, nav),
		theme:      GetTheme(themeName),
		search:     search,
		hideDetail: opts.HideDetail,
	}
	m.applyFilter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-len(m.search.Prompt)-2, 0)
		if !m.ready {
			m.grid = viewport.New(msg.Width, m.gridHeight())
		}
		m.ready = true
		m.markdown = newMarkdownRenderer(m.theme.Markdown, msg.Width)
		m.refreshGrid()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input. Keys without a binding go to the
// search box and re-run the filter.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.ToggleDetail):
		m.hideDetail = !m.hideDetail
		m.savePrefs()
		m.refreshGrid()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-columnsFor(m.width))
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(columnsFor(m.width))
		return m, nil

	case key.Matches(msg, m.keys.Download):
		m.download()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.search.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter runs the filter against the live search text and rebuilds the
// selection over the cards that remain visible.
func (m *Model) applyFilter() {
	board.NewFilter(m.search, m.board).Apply()
	m.visible = board.Visible(m.board)
	m.selected = clamp(m.selected, 0, len(m.visible)-1)
	m.refreshGrid()
}

func (m *Model) moveSelection(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.selected = clamp(m.selected+delta, 0, len(m.visible)-1)
	m.refreshGrid()
}

func (m Model) selectedCard() *board.Card {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return nil
	}
	return m.visible[m.selected]
}

// download navigates to the selected program's file.
func (m *Model) download() {
	card := m.selectedCard()
	if card == nil {
		m.status = statusLine{text: "No program selected", failed: true}
		return
	}

	path, err := m.downloader.Download(card.ID)
	if err != nil {
		m.logger.Warn("download failed",
			zap.String("program", card.Title),
			zap.String("file", path),
			zap.Error(err))
		m.status = statusLine{text: fmt.Sprintf("Download failed: %v", err), failed: true}
		return
	}
	m.logger.Info("download started",
		zap.String("program", card.Title),
		zap.String("file", path))
	m.status = statusLine{text: "Opening " + path}
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.ready {
		m.markdown = newMarkdownRenderer(m.theme.Markdown, m.width)
	}
	m.logger.Debug("theme changed", zap.String("theme", m.theme.Name))
	m.savePrefs()
	m.refreshGrid()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, HideDetail: m.hideDetail}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// showDetail reports whether the detail pane fits and is enabled.
func (m Model) showDetail() bool {
	return !m.hideDetail && m.height-chromeHeight-detailHeight >= minGridHeight
}

func (m Model) gridHeight() int {
	h := m.height - chromeHeight
	if m.showDetail() {
		h -= detailHeight
	}
	if h < 1 {
		return 1
	}
	return h
}

// refreshGrid re-renders the card grid and keeps the selection on screen.
func (m *Model) refreshGrid() {
	if !m.ready {
		return
	}
	m.grid.Width = m.width
	m.grid.Height = m.gridHeight()

	if len(m.visible) == 0 {
		m.grid.SetContent(m.renderEmpty())
		m.grid.SetYOffset(0)
		return
	}

	content, rowHeight := renderGrid(m.visible, m.selected, m.width, m.theme.Styles())
	m.grid.SetContent(content)

	row := m.selected / columnsFor(m.width)
	top := row * rowHeight
	bottom := top + rowHeight
	switch {
	case top < m.grid.YOffset:
		m.grid.SetYOffset(top)
	case bottom > m.grid.YOffset+m.grid.Height:
		m.grid.SetYOffset(bottom - m.grid.Height)
	}
}

// renderMain renders header, search box, grid, detail pane and footer.
func (m Model) renderMain() string {
	parts := []string{
		m.renderHeader(),
		m.search.View(),
		lipgloss.NewStyle().Height(m.grid.Height).MaxHeight(m.grid.Height).Render(m.grid.View()),
	}
	if m.showDetail() {
		parts = append(parts, m.renderDetail())
	}
	parts = append(parts, m.renderFooter())
	return strings.Join(parts, "\n")
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
