package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// entry is one rendered element of a list: a headline and detail lines.
type entry struct {
	title   string
	details []string
}

// ListScreen shows one filtered view of the address book. The data is read
// from the model on every render, so it never goes stale.
type ListScreen struct {
	title   string
	noun    string
	entries func() []entry
	// applyFilter installs a keyword filter on the model; nil keywords show all.
	applyFilter func(keywords []string)

	cursor    int
	filter    string
	filtering bool
	input     textinput.Model
}

func newListScreen(title, noun string, entries func() []entry, applyFilter func([]string)) *ListScreen {
	input := textinput.New()
	input.Placeholder = "keywords, separated by spaces"
	input.Prompt = "/ "
	input.CharLimit = 100
	input.Width = 40
	return &ListScreen{
		title:       title,
		noun:        noun,
		entries:     entries,
		applyFilter: applyFilter,
		input:       input,
	}
}

// IsCapturingInput returns true while the filter prompt is open
func (s *ListScreen) IsCapturingInput() bool {
	return s.filtering
}

func (s *ListScreen) Init() tea.Cmd { return nil }

func (s *ListScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.filtering {
		return s.updateFilter(keyMsg)
	}

	n := len(s.entries())
	switch {
	case key.Matches(keyMsg, DefaultKeyMap.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, DefaultKeyMap.Down):
		if s.cursor < n-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, DefaultKeyMap.Top):
		s.cursor = 0
	case key.Matches(keyMsg, DefaultKeyMap.End):
		s.cursor = max(0, n-1)
	case key.Matches(keyMsg, DefaultKeyMap.Filter):
		s.filtering = true
		s.input.SetValue(s.filter)
		s.input.CursorEnd()
		return s, s.input.Focus()
	case key.Matches(keyMsg, DefaultKeyMap.Back):
		s.setFilter("")
	}
	return s, nil
}

func (s *ListScreen) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, DefaultKeyMap.Apply):
		s.filtering = false
		s.input.Blur()
		s.setFilter(s.input.Value())
		return s, nil
	case msg.Type == tea.KeyEsc:
		s.filtering = false
		s.input.Blur()
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ListScreen) setFilter(raw string) {
	s.filter = strings.TrimSpace(raw)
	if s.filter == "" {
		s.applyFilter(nil)
	} else {
		s.applyFilter(strings.Fields(s.filter))
	}
	s.cursor = 0
}

// clampCursor keeps the cursor inside the list after outside changes.
func (s *ListScreen) clampCursor(n int) {
	if s.cursor >= n {
		s.cursor = max(0, n-1)
	}
}

func (s *ListScreen) View() string {
	entries := s.entries()
	s.clampCursor(len(entries))

	var b strings.Builder
	b.WriteString(titleStyle.Render(s.title))
	if s.filter != "" {
		b.WriteString(filterStyle.Render(fmt.Sprintf("  matching %q", s.filter)))
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d %s shown", len(entries), s.noun)))
	b.WriteString("\n\n")

	if s.filtering {
		b.WriteString(s.input.View())
		b.WriteString("\n\n")
	}

	if len(entries) == 0 {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("  No %s to show.", s.noun)))
		b.WriteString("\n")
	}
	for i, e := range entries {
		indicator := "  "
		line := fmt.Sprintf("%d. %s", i+1, e.title)
		if i == s.cursor {
			indicator = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(indicator + line + "\n")
		for _, d := range e.details {
			b.WriteString(detailStyle.Render("     "+d) + "\n")
		}
	}

	b.WriteString("\n")
	if s.filtering {
		b.WriteString(helpStyle.Render("  enter: apply  esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("  j/k: navigate  /: filter  esc: clear filter"))
	}
	return b.String()
}
