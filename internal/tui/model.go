package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"travelassist/internal/domain"
)

// AssistantPort is the TUI-facing subset of the assistant service.
type AssistantPort interface {
	Answer(ctx context.Context, query string) domain.Answer
	Rebuild(ctx context.Context) error
}

// answerMsg delivers a completed answer to the model.
type answerMsg domain.Answer

// rebuiltMsg delivers the outcome of a corpus rebuild.
type rebuiltMsg struct{ err error }

// Model is the Bubble Tea model for the travel assistant.
type Model struct {
	service  AssistantPort
	input    textinput.Model
	viewport viewport.Model
	answer   domain.Answer
	status   string
	busy     bool
	ready    bool
}

// New creates a new TUI model instance.
func New(service AssistantPort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about destinations, weather, or flights"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{service: service, input: ti, viewport: vp, status: "Ready. Type a question and press Enter. Ctrl+R reloads the brochures."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := answerBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + qh + 1 // header + status + query box + spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderAnswer())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" && !m.busy {
				m.busy = true
				m.status = "Fetching details..."
				svc := m.service
				return m, func() tea.Msg {
					return answerMsg(svc.Answer(context.Background(), q))
				}
			}
		case "ctrl+r":
			if !m.busy {
				m.busy = true
				m.status = "Reloading brochures..."
				svc := m.service
				return m, func() tea.Msg {
					return rebuiltMsg{err: svc.Rebuild(context.Background())}
				}
			}
		}
	case answerMsg:
		m.busy = false
		m.answer = domain.Answer(msg)
		m.status = fmt.Sprintf("Answered %q", m.answer.Query)
		m.viewport.SetContent(m.renderAnswer())
		return m, nil
	case rebuiltMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Reload failed: " + msg.err.Error()
		} else {
			m.status = "Brochures reloaded."
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the current answer.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Travel Assistant")
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	answer := answerBoxStyle.Render(m.viewport.View())
	return header + "\n" + answer + "\n" + input + "\n" + status
}

func (m Model) renderAnswer() string {
	if m.answer.Query == "" {
		return "No answer yet. Ask about the brochures, the weather in a city, or flights from one place to another."
	}
	title := queryLabelStyle.Render(m.answer.Query)
	return title + "\n\n" + m.answer.Text
}

var (
	answerBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
