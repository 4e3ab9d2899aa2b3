// Package tui implements the terminal presentation of the game.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubeguess"
	"github.com/SeamusWaldron/cubeguess/internal/render"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	questionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// sideBySideWidth is the terminal width needed to draw both cube views on
// one line.
const sideBySideWidth = 80

// Model is the bubbletea model for a game session.
type Model struct {
	session *cubeguess.Session
	sched   *loopScheduler
	screen  *screen
	log     zerolog.Logger

	width    int
	height   int
	err      error
	quitting bool
}

// New creates a model. The session's scheduler is replaced so that round
// transitions run on the event loop.
func New(log zerolog.Logger, opts ...cubeguess.Option) *Model {
	sched := newLoopScheduler()
	scr := newScreen()
	opts = append(opts, cubeguess.WithScheduler(sched), cubeguess.WithLogger(log))
	return &Model{
		session: cubeguess.NewSession(scr, opts...),
		sched:   sched,
		screen:  scr,
		log:     log,
	}
}

// Session returns the underlying game session.
func (m *Model) Session() *cubeguess.Session {
	return m.session
}

func (m *Model) Init() tea.Cmd {
	if err := m.session.Start(); err != nil {
		m.err = err
	}
	return m.flush()
}

// flush schedules ticks for continuations queued during the last update.
func (m *Model) flush() tea.Cmd {
	return tea.Batch(m.sched.cmds()...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		m.log.Debug().Str("key", key).Msg("key press")

		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.session.Close()
			return m, tea.Quit

		case "n":
			m.setErr(m.session.Reset())

		case " ", "enter":
			// Skip the rest of the feedback pause
			if m.screen.feedback != nil {
				m.setErr(m.session.Next())
			}

		case "1", "2", "3", "4", "5", "6":
			if c, ok := m.screen.choice(int(key[0] - '0')); ok {
				m.answer(c)
			}

		default:
			if c, err := cubeguess.ParseColor(key); err == nil && len(key) == 1 && m.screen.offered(c) {
				m.answer(c)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case continueMsg:
		m.sched.fire(msg.id)
	}

	return m, m.flush()
}

func (m *Model) answer(c cubeguess.Color) {
	_, err := m.session.Answer(c)
	if errors.Is(err, cubeguess.ErrAwaitingNextRound) {
		// Input is disabled until the next round starts
		return
	}
	m.setErr(err)
}

func (m *Model) setErr(err error) {
	m.err = err
	if err != nil {
		m.log.Error().Err(err).Msg("session")
	}
}

func (m *Model) View() string {
	if m.quitting {
		cur, best := m.session.Score()
		return fmt.Sprintf("Goodbye! Final streak %d, best %d\n", cur, best)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Color Guesser"))
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("Streak: %d   Best: %d", m.screen.current, m.screen.best)))
	b.WriteString("\n\n")

	oblique := render.Oblique(m.screen.scene)
	net := render.Net(m.screen.scene)
	if m.width >= sideBySideWidth {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, oblique, "      ", net))
	} else {
		b.WriteString(oblique)
		b.WriteString("\n")
		b.WriteString(net)
	}
	b.WriteString("\n")

	if m.screen.question.Valid() {
		b.WriteString(questionStyle.Render(fmt.Sprintf("What color is the %s face?", m.screen.question.Title())))
		b.WriteString("\n\n")
	}

	if fb := m.screen.feedback; fb != nil {
		if fb.correct {
			b.WriteString(correctStyle.Render("✓ Correct!"))
		} else {
			b.WriteString(errorStyle.Render(fmt.Sprintf("✗ Wrong! It's %s", fb.color.Title())))
		}
	} else {
		b.WriteString(render.Choices(m.screen.choices))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "Keys: 1-4 or color initial=answer  n=new game  q=quit"
	if m.screen.feedback != nil {
		help = "SPACE=next round  n=new game  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

// Run plays a session in the terminal until the player quits.
// A terminal that cannot be initialized is reported as ErrPresentation.
func Run(log zerolog.Logger, opts ...cubeguess.Option) error {
	m := New(log, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: %w", cubeguess.ErrPresentation, err)
	}
	return nil
}
