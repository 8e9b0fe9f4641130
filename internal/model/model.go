// Package model exposes the address book to the command and presentation
// layers: filtered views per entity type plus the mutation surface.
package model

import (
	"github.com/andy/reconnect/internal/domain"
	"github.com/andy/reconnect/internal/logger"
	"github.com/andy/reconnect/internal/repository"
)

// Predicate selects which entities a filtered view shows.
type Predicate[T any] func(T) bool

// ShowAll is the predicate of an unfiltered view.
func ShowAll[T any](T) bool { return true }

// Model wraps an AddressBook with one active filter per entity type.
// Filtered views are computed on every call and never go stale.
type Model struct {
	book *repository.AddressBook
	log  *logger.Logger

	clientFilter   Predicate[domain.Client]
	propertyFilter Predicate[domain.Property]
	dealFilter     Predicate[domain.Deal]
	eventFilter    Predicate[domain.Event]
}

// New creates a model over book. A nil book starts empty; a nil logger discards output.
func New(book *repository.AddressBook, log *logger.Logger) *Model {
	if book == nil {
		book = repository.New()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Model{
		book:           book,
		log:            log,
		clientFilter:   ShowAll[domain.Client],
		propertyFilter: ShowAll[domain.Property],
		dealFilter:     ShowAll[domain.Deal],
		eventFilter:    ShowAll[domain.Event],
	}
}

// AddressBook returns the backing book, e.g. for persistence.
func (m *Model) AddressBook() *repository.AddressBook { return m.book }

func (m *Model) Logger() *logger.Logger { return m.log }

// ResetAddressBook replaces all data and clears every filter.
func (m *Model) ResetAddressBook(book *repository.AddressBook) error {
	if err := m.book.ResetData(book); err != nil {
		return err
	}
	m.UpdateFilteredClientList(nil)
	m.UpdateFilteredPropertyList(nil)
	m.UpdateFilteredDealList(nil)
	m.UpdateFilteredEventList(nil)
	return nil
}

func filter[T any](items []T, keep Predicate[T]) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func orShowAll[T any](p Predicate[T]) Predicate[T] {
	if p == nil {
		return ShowAll[T]
	}
	return p
}
