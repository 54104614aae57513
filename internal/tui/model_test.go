package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelassist/internal/domain"
)

type stubAssistant struct {
	answer     domain.Answer
	rebuildErr error
}

func (s *stubAssistant) Answer(_ context.Context, query string) domain.Answer {
	a := s.answer
	a.Query = query
	return a
}

func (s *stubAssistant) Rebuild(_ context.Context) error { return s.rebuildErr }

func TestEnterDispatchesQuery(t *testing.T) {
	m := New(&stubAssistant{answer: domain.Answer{Text: "sunny"}})
	m.input.SetValue("weather in Paris")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)
	require.NotNil(t, cmd)
	assert.True(t, model.busy)

	msg := cmd()
	ans, ok := msg.(answerMsg)
	require.True(t, ok)
	assert.Equal(t, "weather in Paris", ans.Query)
	assert.Equal(t, "sunny", ans.Text)

	updated, _ = model.Update(msg)
	model = updated.(Model)
	assert.False(t, model.busy)
	assert.Contains(t, model.status, "weather in Paris")
}

func TestAnswerLabeledWithQuery(t *testing.T) {
	m := New(&stubAssistant{})
	m.answer = domain.Answer{Query: "flights from NYC to London", Text: "BA112"}
	view := m.renderAnswer()
	assert.Contains(t, view, "flights from NYC to London")
	assert.Contains(t, view, "BA112")
}

func TestEmptyInputIgnored(t *testing.T) {
	m := New(&stubAssistant{})
	m.input.SetValue("   ")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, updated.(Model).busy)
}

func TestCtrlCQuits(t *testing.T) {
	m := New(&stubAssistant{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
