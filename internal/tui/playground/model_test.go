package playground

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/strext/core/log"
	"github.com/msto63/strext/internal/pipeline"
)

func newTestModel(t *testing.T, initial string) Model {
	t.Helper()
	m, err := New(Config{
		Registry: pipeline.NewRegistry(pipeline.Options{Logger: log.Discard()}),
		Logger:   log.Discard(),
		Initial:  initial,
	})
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func resultFor(t *testing.T, results []Result, op string) Result {
	t.Helper()
	for _, r := range results {
		if r.Op == op {
			return r
		}
	}
	t.Fatalf("no result for %s", op)
	return Result{}
}

func TestEvaluator(t *testing.T) {
	reg := pipeline.NewRegistry(pipeline.Options{Logger: log.Discard()})
	e, err := NewEvaluator(reg, nil)
	require.NoError(t, err)
	assert.Equal(t, len(reg.Names()), e.Len())

	results := e.Evaluate(context.Background(), "crème brûlée")
	assert.Equal(t, "CB", resultFor(t, results, "get-initials").Output)
	assert.Equal(t, "creme brulee", resultFor(t, results, "remove-diacritics").Output)
	assert.Equal(t, "crème", resultFor(t, results, "take-first-characters").Output)
	for _, r := range results {
		assert.NoError(t, r.Err, r.Op)
	}
}

func TestTypingRecomputes(t *testing.T) {
	m := newTestModel(t, "")
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ada lovelace")})

	assert.Equal(t, "ada lovelace", m.Input())
	assert.Equal(t, "AL", resultFor(t, m.Results(), "get-initials").Output)
	assert.Equal(t, "Ada Lovelace", resultFor(t, m.Results(), "to-title-case").Output)
	assert.Contains(t, m.View(), "get-initials")
}

func TestEnterChainsAndUndo(t *testing.T) {
	m := newTestModel(t, "grace hopper")

	for m.Selected().Op != "to-title-case" {
		before := m.Selected().Op
		m = send(m, tea.KeyMsg{Type: tea.KeyDown})
		require.NotEqual(t, before, m.Selected().Op, "to-title-case not reachable")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Grace Hopper", m.Input())

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "grace hopper", m.Input())

	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.NotEqual(t, "to-title-case", m.Selected().Op)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, "")
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestViewBeforeResize(t *testing.T) {
	m, err := New(Config{Logger: log.Discard()})
	require.NoError(t, err)
	assert.Equal(t, "Loading playground...", m.View())
}
