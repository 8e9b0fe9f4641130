// Package tui is a read-only terminal browser for the address book.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/reconnect/internal/model"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenClients Screen = iota
	ScreenProperties
	ScreenDeals
	ScreenEvents
	screenCount
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenClients:
		return "Clients"
	case ScreenProperties:
		return "Properties"
	case ScreenDeals:
		return "Deals"
	case ScreenEvents:
		return "Events"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	book          *model.Model
	currentScreen Screen
	screens       [screenCount]*ListScreen
	width         int
	height        int
}

// New creates a new root model
func New(m *model.Model) Model {
	return Model{
		book:          m,
		currentScreen: ScreenClients,
		screens: [screenCount]*ListScreen{
			ScreenClients:    newClientsScreen(m),
			ScreenProperties: newPropertiesScreen(m),
			ScreenDeals:      newDealsScreen(m),
			ScreenEvents:     newEventsScreen(m),
		},
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) active() *ListScreen {
	return m.screens[m.currentScreen]
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Skip global navigation when the filter prompt is open
		if !m.active().IsCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return m, tea.Quit
			case key.Matches(msg, DefaultKeyMap.Clients):
				m.currentScreen = ScreenClients
				return m, nil
			case key.Matches(msg, DefaultKeyMap.Properties):
				m.currentScreen = ScreenProperties
				return m, nil
			case key.Matches(msg, DefaultKeyMap.Deals):
				m.currentScreen = ScreenDeals
				return m, nil
			case key.Matches(msg, DefaultKeyMap.Events):
				m.currentScreen = ScreenEvents
				return m, nil
			case key.Matches(msg, DefaultKeyMap.NextTab):
				m.currentScreen = (m.currentScreen + 1) % screenCount
				return m, nil
			case key.Matches(msg, DefaultKeyMap.PrevTab):
				m.currentScreen = (m.currentScreen + screenCount - 1) % screenCount
				return m, nil
			}
		}
	}

	_, cmd := m.active().Update(msg)
	return m, cmd
}

func (m Model) tabs() string {
	var tabs []string
	for s := Screen(0); s < screenCount; s++ {
		style := inactiveTabStyle
		if s == m.currentScreen {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(s.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Render("REconnect") + "  " + m.tabs()
	footer := footerStyle.Render("[C]lients  [P]roperties  [D]eals  [E]vents  tab: next  [Q]uit")

	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(strings.Repeat("─", max(10, innerWidth-12)))

	body := fmt.Sprintf("%s\n%s\n\n%s\n\n%s\n%s", header, divider, m.active().View(), divider, footer)

	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(m *model.Model) error {
	p := tea.NewProgram(New(m), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
