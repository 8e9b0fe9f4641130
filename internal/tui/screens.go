package tui

import (
	"fmt"

	"github.com/andy/reconnect/internal/display"
	"github.com/andy/reconnect/internal/model"
)

func newClientsScreen(m *model.Model) *ListScreen {
	return newListScreen("Clients", "clients",
		func() []entry {
			var out []entry
			for _, c := range m.FilteredClients() {
				out = append(out, entry{
					title:   c.Name.String(),
					details: []string{fmt.Sprintf("Phone: %s  |  Email: %s  |  Address: %s", c.Phone, c.Email, c.Address)},
				})
			}
			return out
		},
		func(keywords []string) {
			if keywords == nil {
				m.UpdateFilteredClientList(nil)
				return
			}
			m.UpdateFilteredClientList(model.ClientNameMatches(keywords))
		})
}

func newPropertiesScreen(m *model.Model) *ListScreen {
	return newListScreen("Properties", "properties",
		func() []entry {
			var out []entry
			for _, p := range m.FilteredProperties() {
				details := []string{
					fmt.Sprintf("%s  |  %s  |  Owner: %s", display.Price(p.Price), display.Size(p.Size), p.Owner),
					p.Address.String(),
				}
				if !p.Description.IsZero() {
					details = append(details, p.Description.String())
				}
				out = append(out, entry{title: p.Name.String(), details: details})
			}
			return out
		},
		func(keywords []string) {
			if keywords == nil {
				m.UpdateFilteredPropertyList(nil)
				return
			}
			m.UpdateFilteredPropertyList(model.PropertyMatches(keywords))
		})
}

func newDealsScreen(m *model.Model) *ListScreen {
	return newListScreen("Deals", "deals",
		func() []entry {
			var out []entry
			for _, d := range m.FilteredDeals() {
				out = append(out, entry{
					title: fmt.Sprintf("%s  [%s]", d.Property, d.Status),
					details: []string{
						fmt.Sprintf("Buyer: %s  |  Seller: %s  |  %s", d.Buyer, d.Seller, display.Price(d.Price)),
					},
				})
			}
			return out
		},
		func(keywords []string) {
			if keywords == nil {
				m.UpdateFilteredDealList(nil)
				return
			}
			m.UpdateFilteredDealList(model.DealMatches(keywords))
		})
}

func newEventsScreen(m *model.Model) *ListScreen {
	return newListScreen("Events", "events",
		func() []entry {
			var out []entry
			for _, e := range m.FilteredEvents() {
				details := []string{fmt.Sprintf("%s with %s", e.Property, e.Client)}
				if !e.Note.IsZero() {
					details = append(details, display.Truncate(e.Note.String(), 80))
				}
				out = append(out, entry{
					title:   fmt.Sprintf("%s  %s", e.DateTime, e.Heading),
					details: details,
				})
			}
			return out
		},
		func(keywords []string) {
			if keywords == nil {
				m.UpdateFilteredEventList(nil)
				return
			}
			m.UpdateFilteredEventList(model.EventMatches(keywords))
		})
}
