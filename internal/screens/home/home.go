package home

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/history"
	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/format"
	"github.com/abhisek/triviaz/internal/ui/layout"
)

// MaxPlayerName caps the length of an edited player name.
const MaxPlayerName = 24

// Config carries the dependencies of the home screen.
type Config struct {
	Repo    store.EventRepo
	Printer *format.Printer
	Player  string

	// NewQuiz builds a quiz screen for the named player. When nil, PLAY
	// is disabled.
	NewQuiz func(player string) screen.Screen

	// SourceLabel describes where questions come from, e.g. "opentdb".
	SourceLabel string
}

// Stats is the player dashboard shown above the menu.
type Stats struct {
	Games int
	Best  *store.SessionSummaryRecord
	Last  *store.SessionSummaryRecord
}

type statsLoadedMsg struct {
	Stats Stats
	Err   error
}

const (
	itemPlay = iota
	itemPlayer
	itemHistory
	itemQuit
)

// HomeScreen is the main menu.
type HomeScreen struct {
	cfg     Config
	player  string
	menu    components.Menu
	stats   Stats
	loaded  bool
	errMsg  string
	editing bool
	input   components.TextInput
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cfg Config) *HomeScreen {
	if cfg.Printer == nil {
		cfg.Printer = format.Default()
	}
	h := &HomeScreen{cfg: cfg, player: cfg.Player}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	return []components.MenuItem{
		itemPlay: {Label: "PLAY", Disabled: h.cfg.NewQuiz == nil, Action: func() tea.Cmd {
			next := h.cfg.NewQuiz(h.player)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		itemPlayer: {Label: "PLAYER: " + h.player, Action: func() tea.Cmd {
			h.editing = true
			h.input = components.NewTextInput("your name", h.player, MaxPlayerName)
			return nil
		}},
		itemHistory: {Label: "HISTORY", Disabled: h.cfg.Repo == nil, Action: func() tea.Cmd {
			next := history.New(h.cfg.Repo, h.cfg.Printer)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		itemQuit: {Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume reloads the dashboard after a game or the history screen.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.cfg.Repo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{})
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		best, err := repo.BestSession(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		stats := Stats{Games: len(sessions), Best: best}
		if len(sessions) > 0 {
			stats.Last = &sessions[0]
		}
		return statsLoadedMsg{Stats: stats}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		h.loaded = true
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.stats = msg.Stats
		return h, nil

	case tea.KeyPressMsg:
		if h.editing {
			return h.updateEditing(msg)
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateEditing(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if name := h.input.Value(); name != "" {
			h.SetPlayer(name)
		}
		h.editing = false
		return h, nil
	case "esc":
		h.editing = false
		return h, nil
	}
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

// SetPlayer changes the name used for new games.
func (h *HomeScreen) SetPlayer(name string) {
	h.player = name
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	h.menu.Selected = selected
}

// Player returns the name used for new games.
func (h *HomeScreen) Player() string {
	return h.player
}

// Editing reports whether the player name field has focus.
func (h *HomeScreen) Editing() bool {
	return h.editing
}

// Status returns the header status line.
func (h *HomeScreen) Status() string {
	if h.stats.Best == nil {
		return h.player
	}
	return h.player + "  ★ best " + h.cfg.Printer.Number(h.stats.Best.Score)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
