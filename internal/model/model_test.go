package model_test

import (
	"slices"
	"testing"

	"github.com/andy/reconnect/internal/domain"
	"github.com/andy/reconnect/internal/model"
	"github.com/andy/reconnect/internal/repository"
	"github.com/andy/reconnect/internal/testutil"
)

func TestModel_FilteredViewsTrackChanges(t *testing.T) {
	m := model.New(testutil.TypicalAddressBook(), nil)

	m.UpdateFilteredClientList(model.ClientNameMatches([]string{"meier"}))
	got := m.FilteredClients()
	if !slices.Equal(got, []domain.Client{testutil.Benson, testutil.Daniel}) {
		t.Fatalf("unexpected filtered clients: %v", got)
	}

	if err := m.DeleteClient(testutil.Daniel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.FilteredClients(); len(got) != 1 || got[0] != testutil.Benson {
		t.Fatalf("filtered view should reflect the deletion, got %v", got)
	}

	m.UpdateFilteredClientList(nil)
	if len(m.FilteredClients()) != 3 {
		t.Fatalf("nil predicate should show all clients")
	}
}

func TestModel_AddResetsFilter(t *testing.T) {
	m := model.New(testutil.TypicalAddressBook(), nil)
	m.UpdateFilteredPropertyList(model.PropertyMatches([]string{"orchid"}))
	if len(m.FilteredProperties()) != 1 {
		t.Fatalf("expected one matching property")
	}

	extra := testutil.Property("Pine Loft", "3 Pine Road", 750, 0, "", "Daniel Meier")
	if err := m.AddProperty(extra); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.FilteredProperties(); len(got) != 4 || got[3] != extra {
		t.Fatalf("expected all properties after add, got %v", got)
	}
}

func TestModel_Predicates(t *testing.T) {
	m := model.New(testutil.TypicalAddressBook(), nil)

	m.UpdateFilteredDealList(model.DealMatches([]string{"pending"}))
	if got := m.FilteredDeals(); len(got) != 1 || got[0] != testutil.MapleCourtDeal {
		t.Fatalf("unexpected deals: %v", got)
	}

	m.UpdateFilteredEventList(model.EventMatches([]string{"VIEWING"}))
	if got := m.FilteredEvents(); len(got) != 1 || got[0] != testutil.SunnyVillaViewing {
		t.Fatalf("unexpected events: %v", got)
	}

	m.UpdateFilteredClientList(model.ClientNameMatches([]string{"Meie"}))
	if len(m.FilteredClients()) != 0 {
		t.Fatalf("partial words should not match")
	}
}

func TestModel_ResetAddressBook(t *testing.T) {
	m := model.New(nil, nil)
	m.UpdateFilteredEventList(func(domain.Event) bool { return false })

	if err := m.ResetAddressBook(testutil.TypicalAddressBook()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.FilteredEvents()) != 2 {
		t.Fatalf("reset should clear filters")
	}
	if !m.AddressBook().Equal(testutil.TypicalAddressBook()) {
		t.Fatalf("expected typical data after reset")
	}

	if err := m.ResetAddressBook(repository.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.FilteredClients()) != 0 {
		t.Fatalf("expected empty book")
	}
}
