// Package tui renders the live phrase feed in the terminal. The bubbletea
// model doubles as the feed controller's display surface: the controller
// pushes the current phrase and the faded history into shared state, and the
// view repaints from it.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/backwardspy/randnd/internal/application/feed"
	"github.com/backwardspy/randnd/internal/ports"
)

// refreshMsg signals that the surface changed and the view must repaint.
type refreshMsg struct{}

// tickMsg fires the periodic auto-regenerate.
type tickMsg time.Time

type historyItem struct {
	phrase  string
	opacity float64
}

// surfaceState is the ports.Surface implementation shared between the feed
// controller (which mutates it from fetch goroutines) and the view (which
// reads it on repaint).
type surfaceState struct {
	mu      sync.Mutex
	program *tea.Program
	current string
	items   []historyItem
}

func (s *surfaceState) SetCurrent(phrase string) {
	s.mu.Lock()
	s.current = phrase
	s.mu.Unlock()
	s.notify()
}

func (s *surfaceState) ClearHistory() {
	s.mu.Lock()
	s.items = s.items[:0]
	s.mu.Unlock()
	s.notify()
}

func (s *surfaceState) AppendHistory(phrase string, opacity float64) {
	s.mu.Lock()
	s.items = append(s.items, historyItem{phrase: phrase, opacity: opacity})
	s.mu.Unlock()
	s.notify()
}

func (s *surfaceState) attach(p *tea.Program) {
	s.mu.Lock()
	s.program = p
	s.mu.Unlock()
}

// notify wakes the program outside the lock; Send blocks until the event
// loop picks the message up, so it must not run under s.mu or the
// controller's render lock in the caller's goroutine.
func (s *surfaceState) notify() {
	s.mu.Lock()
	p := s.program
	s.mu.Unlock()
	if p != nil {
		go p.Send(refreshMsg{})
	}
}

func (s *surfaceState) snapshot() (string, []historyItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]historyItem, len(s.items))
	copy(items, s.items)
	return s.current, items
}

var _ ports.Surface = (*surfaceState)(nil)

// Model is the bubbletea model for the watch view.
type Model struct {
	controller *feed.Controller
	surface    *surfaceState
	ctx        context.Context

	categories []string
	category   string
	interval   time.Duration

	catInput textinput.Model
	entering bool

	width    int
	height   int
	quitting bool
}

// NewModel builds the watch model around an existing controller.
func NewModel(ctx context.Context, controller *feed.Controller, categories []string, category string, interval time.Duration) Model {
	ci := textinput.New()
	ci.Placeholder = "category..."
	ci.CharLimit = 60

	return Model{
		controller: controller,
		surface:    &surfaceState{},
		ctx:        ctx,
		categories: categories,
		category:   category,
		interval:   interval,
		catInput:   ci,
		width:      80,
		height:     24,
	}
}

// Run wires the surface to the controller and blocks until the user quits.
func (m Model) Run() error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.surface.attach(p)
	m.controller.SetSurface(m.surface)
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	// Fetch immediately so the view is not empty until the first tick.
	m.controller.RequestPhrase(m.ctx, m.category)
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		return m, nil

	case tickMsg:
		m.controller.RequestPhrase(m.ctx, m.category)
		return m, m.tick()

	case tea.KeyMsg:
		if m.entering {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "r", "enter", " ":
		m.controller.RequestPhrase(m.ctx, m.category)

	case "/":
		m.entering = true
		m.catInput.SetValue("")
		m.catInput.Focus()
		return m, textinput.Blink

	default:
		// number keys select a configured category and regenerate
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(m.categories) {
				m.category = m.categories[idx]
				m.controller.RequestPhrase(m.ctx, m.category)
			}
		}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.entering = false
		m.catInput.Blur()
		return m, nil
	case "enter":
		if value := strings.TrimSpace(m.catInput.Value()); value != "" {
			m.category = value
			m.controller.RequestPhrase(m.ctx, m.category)
		}
		m.entering = false
		m.catInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.catInput, cmd = m.catInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("randnd"))
	b.WriteString(" ")
	b.WriteString(categoryTag.Render(m.category))
	b.WriteString("\n\n")

	current, items := m.surface.snapshot()
	if current == "" {
		b.WriteString(emptyStyle.Render("waiting for the first phrase..."))
		b.WriteString("\n")
	} else {
		b.WriteString(currentStyle.Render(current))
		b.WriteString("\n\n")
		for _, item := range items {
			b.WriteString(fadeStyle(item.opacity).Render(item.phrase))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.entering {
		b.WriteString(inputStyle.Render("category: " + m.catInput.View()))
	} else {
		b.WriteString(statusBarStyle.Render(m.categoryBar()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("r regenerate · 1-9 category · / custom · q quit"))
	}
	return b.String()
}

func (m Model) categoryBar() string {
	parts := make([]string, 0, len(m.categories))
	for i, cat := range m.categories {
		parts = append(parts, fmt.Sprintf("%d:%s", i+1, cat))
	}
	return strings.Join(parts, "  ")
}
