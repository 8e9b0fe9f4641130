package model

import "github.com/andy/reconnect/internal/domain"

func (m *Model) HasClient(c domain.Client) bool {
	return m.book.HasClient(c)
}

// AddClient adds c and resets the client filter so the new entry is visible.
func (m *Model) AddClient(c domain.Client) error {
	if err := m.book.AddClient(c); err != nil {
		return err
	}
	m.UpdateFilteredClientList(nil)
	return nil
}

func (m *Model) DeleteClient(c domain.Client) error {
	return m.book.RemoveClient(c)
}

func (m *Model) SetClient(target, edited domain.Client) error {
	return m.book.SetClient(target, edited)
}

// FilteredClients returns the client entries matching the active filter.
func (m *Model) FilteredClients() []domain.Client {
	return filter(m.book.Clients(), m.clientFilter)
}

// UpdateFilteredClientList replaces the active client filter. nil shows everything.
func (m *Model) UpdateFilteredClientList(p Predicate[domain.Client]) {
	m.clientFilter = orShowAll(p)
}

func (m *Model) HasProperty(p domain.Property) bool {
	return m.book.HasProperty(p)
}

// AddProperty adds p and resets the property filter so the new entry is visible.
func (m *Model) AddProperty(p domain.Property) error {
	if err := m.book.AddProperty(p); err != nil {
		return err
	}
	m.UpdateFilteredPropertyList(nil)
	return nil
}

func (m *Model) DeleteProperty(p domain.Property) error {
	return m.book.RemoveProperty(p)
}

func (m *Model) SetProperty(target, edited domain.Property) error {
	return m.book.SetProperty(target, edited)
}

// FilteredProperties returns the property entries matching the active filter.
func (m *Model) FilteredProperties() []domain.Property {
	return filter(m.book.Properties(), m.propertyFilter)
}

// UpdateFilteredPropertyList replaces the active property filter. nil shows everything.
func (m *Model) UpdateFilteredPropertyList(p Predicate[domain.Property]) {
	m.propertyFilter = orShowAll(p)
}

func (m *Model) HasDeal(d domain.Deal) bool {
	return m.book.HasDeal(d)
}

// AddDeal adds d and resets the deal filter so the new entry is visible.
func (m *Model) AddDeal(d domain.Deal) error {
	if err := m.book.AddDeal(d); err != nil {
		return err
	}
	m.UpdateFilteredDealList(nil)
	return nil
}

func (m *Model) DeleteDeal(d domain.Deal) error {
	return m.book.RemoveDeal(d)
}

func (m *Model) SetDeal(target, edited domain.Deal) error {
	return m.book.SetDeal(target, edited)
}

// FilteredDeals returns the deal entries matching the active filter.
func (m *Model) FilteredDeals() []domain.Deal {
	return filter(m.book.Deals(), m.dealFilter)
}

// UpdateFilteredDealList replaces the active deal filter. nil shows everything.
func (m *Model) UpdateFilteredDealList(p Predicate[domain.Deal]) {
	m.dealFilter = orShowAll(p)
}

func (m *Model) HasEvent(e domain.Event) bool {
	return m.book.HasEvent(e)
}

// AddEvent adds e and resets the event filter so the new entry is visible.
func (m *Model) AddEvent(e domain.Event) error {
	if err := m.book.AddEvent(e); err != nil {
		return err
	}
	m.UpdateFilteredEventList(nil)
	return nil
}

func (m *Model) DeleteEvent(e domain.Event) error {
	return m.book.RemoveEvent(e)
}

func (m *Model) SetEvent(target, edited domain.Event) error {
	return m.book.SetEvent(target, edited)
}

// FilteredEvents returns the event entries matching the active filter.
func (m *Model) FilteredEvents() []domain.Event {
	return filter(m.book.Events(), m.eventFilter)
}

// UpdateFilteredEventList replaces the active event filter. nil shows everything.
func (m *Model) UpdateFilteredEventList(p Predicate[domain.Event]) {
	m.eventFilter = orShowAll(p)
}
