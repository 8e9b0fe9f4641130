package command_test

import (
	"errors"
	"testing"

	"github.com/andy/reconnect/internal/command"
	"github.com/andy/reconnect/internal/domain"
	"github.com/andy/reconnect/internal/repository"
	"github.com/andy/reconnect/internal/testutil"
)

func TestAddClient(t *testing.T) {
	m := newModel()
	newcomer := testutil.Client("Elle Meyer", "9482224", "werner@example.com", "michegan ave")

	res, err := command.AddClient{Client: newcomer}.Execute(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Feedback == "" {
		t.Errorf("expected feedback")
	}
	if !m.HasClient(newcomer) {
		t.Fatalf("client was not added")
	}

	dup := testutil.Client("ALICE PAULINE", "11111111", "", "")
	if _, err := (command.AddClient{Client: dup}).Execute(m); !errors.Is(err, repository.ErrDuplicateEntity) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestEditClient(t *testing.T) {
	phone, _ := domain.NewPhone("91234567")

	t.Run("clears optional field", func(t *testing.T) {
		m := newModel()
		edit := command.EditClient{Index: 1, Descriptor: command.EditClientDescriptor{
			Phone: command.Set(phone),
			Email: command.Clear[domain.Email](),
		}}
		if _, err := edit.Execute(m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := m.FilteredClients()[0]
		if got.Phone != phone || !got.Email.IsZero() || got.Name != testutil.Alice.Name {
			t.Fatalf("unexpected client: %v", got)
		}
	})

	t.Run("no fields", func(t *testing.T) {
		m := newModel()
		_, err := command.EditClient{Index: 1}.Execute(m)
		if !errors.Is(err, command.ErrNoFieldsEdited) {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("same values", func(t *testing.T) {
		m := newModel()
		edit := command.EditClient{Index: 1, Descriptor: command.EditClientDescriptor{
			Phone: command.Set(testutil.Alice.Phone),
		}}
		if _, err := edit.Execute(m); !errors.Is(err, command.ErrNoChanges) {
			t.Fatalf("got %v", err)
		}
		assertUnchanged(t, m)
	})

	t.Run("rename onto another client", func(t *testing.T) {
		m := newModel()
		edit := command.EditClient{Index: 1, Descriptor: command.EditClientDescriptor{
			Name: command.Set(mustName(t, "benson meier")),
		}}
		if _, err := edit.Execute(m); !errors.Is(err, repository.ErrDuplicateEntity) {
			t.Fatalf("got %v", err)
		}
		assertUnchanged(t, m)
	})

	t.Run("case-only rename of itself", func(t *testing.T) {
		m := newModel()
		edit := command.EditClient{Index: 1, Descriptor: command.EditClientDescriptor{
			Name: command.Set(mustName(t, "alice pauline")),
		}}
		if _, err := edit.Execute(m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := m.FilteredClients()[0].Name.String(); got != "alice pauline" {
			t.Fatalf("name = %q", got)
		}
		// client renames leave references alone
		if m.FilteredProperties()[0].Owner != testutil.Alice.Name {
			t.Fatalf("owner should still hold the old name")
		}
	})

	t.Run("clearing the name fails", func(t *testing.T) {
		m := newModel()
		edit := command.EditClient{Index: 1, Descriptor: command.EditClientDescriptor{
			Name: command.Clear[domain.ClientName](),
		}}
		if _, err := edit.Execute(m); err == nil {
			t.Fatalf("expected an error")
		}
		assertUnchanged(t, m)
	})
}

func TestDeleteClient_UsesFilteredIndex(t *testing.T) {
	m := newModel()
	res, err := command.FindClients{Keywords: []string{"Meier"}}.Execute(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Feedback != "2 clients listed!" {
		t.Errorf("feedback = %q", res.Feedback)
	}

	if _, err := (command.DeleteClient{Index: 2}).Execute(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.HasClient(testutil.Daniel) {
		t.Fatalf("Daniel should have been deleted")
	}
	if !m.HasClient(testutil.Benson) || !m.HasClient(testutil.Carl) {
		t.Fatalf("other clients must remain")
	}

	if _, err := (command.ListClients{}).Execute(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.FilteredClients()) != 3 {
		t.Fatalf("list should show every client")
	}
}
