package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andy/reconnect/internal/model"
	"github.com/andy/reconnect/internal/testutil"
)

func press(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTUI_FilterAppliesToModel(t *testing.T) {
	book := model.New(testutil.TypicalAddressBook(), nil)
	var ui tea.Model = New(book)

	ui = press(t, ui, runes("/"), runes("meier"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := book.FilteredClients(); len(got) != 2 {
		t.Fatalf("expected 2 filtered clients, got %v", got)
	}

	// esc outside the prompt clears the filter
	press(t, ui, tea.KeyMsg{Type: tea.KeyEsc})
	if got := book.FilteredClients(); len(got) != 4 {
		t.Fatalf("expected all clients after clearing, got %d", len(got))
	}
}

func TestTUI_TabsAndKeysWhileFiltering(t *testing.T) {
	book := model.New(testutil.TypicalAddressBook(), nil)
	var ui tea.Model = New(book)

	ui = press(t, ui, runes("d"))
	if ui.(Model).currentScreen != ScreenDeals {
		t.Fatalf("expected deals screen")
	}

	// letters typed into the filter must not switch tabs
	ui = press(t, ui, runes("/"), runes("pending"), tea.KeyMsg{Type: tea.KeyEnter})
	if ui.(Model).currentScreen != ScreenDeals {
		t.Fatalf("typing in the filter switched screens")
	}
	if got := book.FilteredDeals(); len(got) != 1 || got[0] != testutil.MapleCourtDeal {
		t.Fatalf("unexpected deals: %v", got)
	}

	ui = press(t, ui, tea.KeyMsg{Type: tea.KeyTab})
	if ui.(Model).currentScreen != ScreenEvents {
		t.Fatalf("tab should move to events")
	}
}

func TestTUI_View(t *testing.T) {
	book := model.New(testutil.TypicalAddressBook(), nil)
	ui := press(t, New(book), tea.WindowSizeMsg{Width: 120, Height: 40}, runes("p"))

	view := ui.View()
	for _, want := range []string{"Sunny Villa", "S$1,250k", "1,400 sq ft", "3 properties shown"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
