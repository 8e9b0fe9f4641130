package repository

import (
	"slices"

	"github.com/andy/reconnect/internal/domain"
)

// AddressBook is the in-memory source of truth for all four entity types.
// Every entity is owned by exactly one of its lists.
type AddressBook struct {
	clients    *UniqueList[domain.Client]
	properties *UniqueList[domain.Property]
	deals      *UniqueList[domain.Deal]
	events     *UniqueList[domain.Event]
}

// New creates an empty address book
func New() *AddressBook {
	return &AddressBook{
		clients:    NewUniqueList("client", domain.Client.Key),
		properties: NewUniqueList("property", domain.Property.Key),
		deals:      NewUniqueList("deal", domain.Deal.Key),
		events:     NewUniqueList("event", domain.Event.Key),
	}
}

// ResetData replaces the whole contents with a copy of other's.
func (ab *AddressBook) ResetData(other *AddressBook) error {
	fresh := New()
	if err := fresh.clients.ReplaceAll(other.Clients()); err != nil {
		return err
	}
	if err := fresh.properties.ReplaceAll(other.Properties()); err != nil {
		return err
	}
	if err := fresh.deals.ReplaceAll(other.Deals()); err != nil {
		return err
	}
	if err := fresh.events.ReplaceAll(other.Events()); err != nil {
		return err
	}
	*ab = *fresh
	return nil
}

// Equal reports whether both books hold equal entities in the same order.
func (ab *AddressBook) Equal(other *AddressBook) bool {
	return slices.Equal(ab.Clients(), other.Clients()) &&
		slices.Equal(ab.Properties(), other.Properties()) &&
		slices.Equal(ab.Deals(), other.Deals()) &&
		slices.Equal(ab.Events(), other.Events())
}

// HasClient returns true if an entity with the same identity as c exists.
func (ab *AddressBook) HasClient(c domain.Client) bool {
	return ab.clients.Contains(c)
}

// AddClient adds c; its identity must not already exist.
func (ab *AddressBook) AddClient(c domain.Client) error {
	return ab.clients.Add(c)
}

// SetClient replaces target with edited.
func (ab *AddressBook) SetClient(target, edited domain.Client) error {
	return ab.clients.Replace(target, edited)
}

// RemoveClient removes c, which must be stored exactly.
func (ab *AddressBook) RemoveClient(c domain.Client) error {
	return ab.clients.Remove(c)
}

// Clients returns the clients in insertion order.
func (ab *AddressBook) Clients() []domain.Client {
	return ab.clients.Items()
}

// HasProperty returns true if an entity with the same identity as p exists.
func (ab *AddressBook) HasProperty(p domain.Property) bool {
	return ab.properties.Contains(p)
}

// AddProperty adds p; its identity must not already exist.
func (ab *AddressBook) AddProperty(p domain.Property) error {
	return ab.properties.Add(p)
}

// SetProperty replaces target with edited.
func (ab *AddressBook) SetProperty(target, edited domain.Property) error {
	return ab.properties.Replace(target, edited)
}

// RemoveProperty removes p, which must be stored exactly.
func (ab *AddressBook) RemoveProperty(p domain.Property) error {
	return ab.properties.Remove(p)
}

// Properties returns the properties in insertion order.
func (ab *AddressBook) Properties() []domain.Property {
	return ab.properties.Items()
}

func (ab *AddressBook) HasDeal(d domain.Deal) bool {
	return ab.deals.Contains(d)
}

func (ab *AddressBook) AddDeal(d domain.Deal) error {
	return ab.deals.Add(d)
}

func (ab *AddressBook) SetDeal(target, edited domain.Deal) error {
	return ab.deals.Replace(target, edited)
}

func (ab *AddressBook) RemoveDeal(d domain.Deal) error {
	return ab.deals.Remove(d)
}

// Deals returns the deals in insertion order.
func (ab *AddressBook) Deals() []domain.Deal {
	return ab.deals.Items()
}

func (ab *AddressBook) HasEvent(e domain.Event) bool {
	return ab.events.Contains(e)
}

func (ab *AddressBook) AddEvent(e domain.Event) error {
	return ab.events.Add(e)
}

func (ab *AddressBook) SetEvent(target, edited domain.Event) error {
	return ab.events.Replace(target, edited)
}

func (ab *AddressBook) RemoveEvent(e domain.Event) error {
	return ab.events.Remove(e)
}

// Events returns the events in insertion order.
func (ab *AddressBook) Events() []domain.Event {
	return ab.events.Items()
}
