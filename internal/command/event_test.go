package command_test

import (
	"errors"
	"testing"

	"github.com/andy/reconnect/internal/command"
	"github.com/andy/reconnect/internal/domain"
	"github.com/andy/reconnect/internal/repository"
	"github.com/andy/reconnect/internal/testutil"
)

func TestAddEvent(t *testing.T) {
	m := newModel()
	at, _ := domain.ParseDateTime("2025-04-01 10:00")
	add := command.AddEvent{Heading: domain.HeadingSigning, DateTime: at, PropertyIndex: 2, ClientIndex: 3}
	if _, err := add.Execute(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := testutil.Event(domain.HeadingSigning, "2025-04-01 10:00", "Maple Court", "Carl Kurz", "")
	if !m.HasEvent(want) {
		t.Fatalf("event not added")
	}
	if _, err := add.Execute(m); !errors.Is(err, repository.ErrDuplicateEntity) {
		t.Fatalf("expected duplicate, got %v", err)
	}
}

func TestEditEvent(t *testing.T) {
	t.Run("clear note", func(t *testing.T) {
		m := newModel()
		edit := command.EditEvent{Index: 1, Descriptor: command.EditEventDescriptor{
			Note: command.Clear[domain.Note](),
		}}
		if _, err := edit.Execute(m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !m.FilteredEvents()[0].Note.IsZero() {
			t.Fatalf("note should be cleared")
		}
	})

	t.Run("clearing an absent note changes nothing", func(t *testing.T) {
		m := newModel()
		edit := command.EditEvent{Index: 2, Descriptor: command.EditEventDescriptor{
			Note: command.Clear[domain.Note](),
		}}
		if _, err := edit.Execute(m); !errors.Is(err, command.ErrNoChanges) {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("move to another client", func(t *testing.T) {
		m := newModel()
		edit := command.EditEvent{Index: 1, Descriptor: command.EditEventDescriptor{
			Client: command.Set(command.Index(4)),
		}}
		if _, err := edit.Execute(m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := m.FilteredEvents()[0].Client; got != testutil.Daniel.Name {
			t.Fatalf("client = %v", got)
		}
	})

	t.Run("bad event index", func(t *testing.T) {
		m := newModel()
		edit := command.EditEvent{Index: 3, Descriptor: command.EditEventDescriptor{
			Heading: command.Set(domain.HeadingOthers),
		}}
		if _, err := edit.Execute(m); !errors.Is(err, command.ErrInvalidIndex) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestFindEvents(t *testing.T) {
	m := newModel()
	res, err := command.FindEvents{Keywords: []string{"meeting"}}.Execute(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Feedback != "1 event listed!" {
		t.Errorf("feedback = %q", res.Feedback)
	}
	if _, err := (command.ListEvents{}).Execute(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.FilteredEvents()) != 2 {
		t.Fatalf("list should show every event")
	}
}
