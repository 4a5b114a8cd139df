package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/home"
	"github.com/abhisek/triviaz/internal/screens/quiz"
	"github.com/abhisek/triviaz/internal/screens/welcome"
	"github.com/abhisek/triviaz/internal/source"
	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/ui/format"
	"github.com/abhisek/triviaz/internal/ui/layout"
)

// Options configures the interactive app.
type Options struct {
	EventRepo store.EventRepo
	Source    source.Source
	Query     source.Query
	Player    string
	Printer   *format.Printer

	// SkipSplash starts on the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the splash or home screen.
func newAppModel(opts Options) AppModel {
	if opts.Printer == nil {
		opts.Printer = format.Default()
	}

	newQuiz := func(player string) screen.Screen {
		return quiz.New(quiz.Config{
			Source:  opts.Source,
			Query:   opts.Query,
			Repo:    opts.EventRepo,
			Player:  player,
			Printer: opts.Printer,
		})
	}

	var sourceLabel string
	if opts.Source != nil {
		sourceLabel = opts.Source.Name()
	}

	homeScreen := home.New(home.Config{
		Repo:        opts.EventRepo,
		Printer:     opts.Printer,
		Player:      opts.Player,
		NewQuiz:     newQuiz,
		SourceLabel: sourceLabel,
	})

	var initial screen.Screen = homeScreen
	if !opts.SkipSplash {
		initial = welcome.New(func() screen.Screen { return homeScreen })
	}

	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if frame := m.render(); frame != "" {
		v.SetContent(frame)
	}
	return v
}

// render composes the header, active screen and footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if len(footerHints) == 0 {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
