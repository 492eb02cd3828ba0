//go:build unit

package prompt

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompt(input string) (*realPrompt, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &realPrompt{
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
		selector: func([]Choice) (Choice, error) {
			return Choice{}, ErrNoSelection
		},
	}, out
}

func TestRealPrompt_PromptForBaseFolder(t *testing.T) {
	tests := []struct {
		name        string
		defaultPath string
		input       string
		expected    string
	}{
		{name: "empty input uses default", defaultPath: "~/Work", input: "\n", expected: "~/Work"},
		{name: "whitespace input uses default", defaultPath: "~/Work", input: "   \n", expected: "~/Work"},
		{name: "custom path", defaultPath: "~/Work", input: "  ~/Projects  \n", expected: "~/Projects"},
		{name: "empty default uses hardcoded default", defaultPath: "", input: "\n", expected: "~/Code"},
		{name: "input without newline", defaultPath: "~/Work", input: "~/src", expected: "~/src"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompt(tt.input)

			result, err := p.PromptForBaseFolder(tt.defaultPath)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Contains(t, out.String(), "[default: ")
		})
	}
}

func TestRealPrompt_Confirm(t *testing.T) {
	tests := []struct {
		name        string
		defaultYes  bool
		input       string
		expected    bool
		expectError bool
	}{
		{name: "empty uses default yes", defaultYes: true, input: "\n", expected: true},
		{name: "empty uses default no", defaultYes: false, input: "\n", expected: false},
		{name: "y", input: "y\n", expected: true},
		{name: "YES uppercase", input: "YES\n", expected: true},
		{name: "n", defaultYes: true, input: "n\n", expected: false},
		{name: "no", defaultYes: true, input: "no\n", expected: false},
		{name: "invalid", input: "maybe\n", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompt(tt.input)

			result, err := p.Confirm("Delete project?", tt.defaultYes)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidConfirmationInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Contains(t, out.String(), "Delete project?")
		})
	}
}

func TestRealPrompt_Confirm_EOF(t *testing.T) {
	p, _ := newTestPrompt("")

	_, err := p.Confirm("Continue?", true)
	assert.Error(t, err)
}

func TestRealPrompt_SelectProject(t *testing.T) {
	p, _ := newTestPrompt("")

	_, err := p.SelectProject(nil)
	assert.ErrorIs(t, err, ErrNoChoices)

	only := Choice{Name: "app", Path: "/work/app"}
	got, err := p.SelectProject([]Choice{only})
	require.NoError(t, err)
	assert.Equal(t, only, got)

	_, err = p.SelectProject([]Choice{only, {Name: "lib", Path: "/work/lib"}})
	assert.ErrorIs(t, err, ErrNoSelection)
}

func press(t *testing.T, m selectModel, msgs ...tea.KeyMsg) selectModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(selectModel)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var testChoices = []Choice{
	{Name: "api", Path: "/work/api", Status: "clean"},
	{Name: "web", Path: "/work/web", Status: "modified"},
	{Name: "worker", Path: "/work/worker"},
}

func TestSelectModel_Navigation(t *testing.T) {
	m := initialSelectModel(testChoices)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.cursor)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(selectModel)
	require.NotNil(t, cmd)
	require.NotNil(t, m.selected)
	assert.Equal(t, "web", m.selected.Name)
}

func TestSelectModel_Filter(t *testing.T) {
	m := initialSelectModel(testChoices)

	m = press(t, m, runes("w"), runes("o"))
	assert.Equal(t, "wo", m.filter)
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "worker", m.filtered[0].Name)
	assert.Contains(t, m.View(), "Filter: wo")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "w", m.filter)
	assert.Len(t, m.filtered, 2)

	m = press(t, m, runes("zz"))
	assert.Empty(t, m.filtered)
	assert.Contains(t, m.View(), "(no match)")

	// Enter with nothing to select keeps the program running.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.selected)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.filter)
	assert.Len(t, m.filtered, 3)
	assert.False(t, m.quitting)
}

func TestSelectModel_Quit(t *testing.T) {
	m := press(t, initialSelectModel(testChoices), tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.quitting)
	assert.Nil(t, m.selected)
	assert.Empty(t, m.View())

	m = press(t, initialSelectModel(testChoices), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.quitting)
}

func TestSelectModel_View(t *testing.T) {
	view := initialSelectModel(testChoices).View()

	assert.Contains(t, view, "> api [clean]  /work/api")
	assert.Contains(t, view, "  web [modified]  /work/web")
	assert.Contains(t, view, "  worker  /work/worker")
	assert.Contains(t, view, "Esc to cancel")
}
