package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newTestSession() SessionModel {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	return NewSessionModel(nil, NewJournal(nil, nil, "guest"), cfg)
}

func TestSessionGameAndBack(t *testing.T) {
	m := newTestSession()

	m, cmd := sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("view = %v after select, expected game", m.view)
	}
	if !m.game.embedded {
		t.Error("session games must be embedded")
	}
	if isQuit(cmd) {
		t.Error("starting a game must not quit the session")
	}

	m, cmd = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("view = %v after esc, expected menu", m.view)
	}
	if isQuit(cmd) || m.quitting {
		t.Error("leaving a game must return to the menu")
	}
}

func TestSessionHistoryAndBack(t *testing.T) {
	m := newTestSession()

	m, cmd := sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewHistory || isQuit(cmd) {
		t.Fatalf("view = %v after tab, expected history", m.view)
	}

	m, cmd = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu || isQuit(cmd) {
		t.Errorf("view = %v after esc, expected menu", m.view)
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession()

	m, cmd := sessionStep(t, m, runeKey("q"))
	if !m.quitting || !isQuit(cmd) {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := newTestSession()

	m, _ = sessionStep(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.game.config.ScreenW != 120 || m.game.config.ScreenH != 50 {
		t.Errorf("game config = %dx%d, expected 120x50", m.game.config.ScreenW, m.game.config.ScreenH)
	}
}
