package command_test

import (
	"errors"
	"testing"

	"github.com/andy/reconnect/internal/command"
	"github.com/andy/reconnect/internal/domain"
	"github.com/andy/reconnect/internal/model"
	"github.com/andy/reconnect/internal/testutil"
)

func newModel() *model.Model {
	return model.New(testutil.TypicalAddressBook(), nil)
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in      string
		want    command.Index
		wantErr bool
	}{
		{"1", 1, false},
		{" 12 ", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"two", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := command.ParseIndex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseIndex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseIndex(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestField_Apply(t *testing.T) {
	if got := command.Keep[string]().Apply("a"); got != "a" {
		t.Errorf("Keep: got %q", got)
	}
	if got := command.Clear[string]().Apply("a"); got != "" {
		t.Errorf("Clear: got %q", got)
	}
	if got := command.Set("b").Apply("a"); got != "b" {
		t.Errorf("Set: got %q", got)
	}
	if command.Keep[int]().Edited() {
		t.Errorf("zero field should not count as edited")
	}
	if !command.Clear[int]().Edited() || !command.Clear[int]().IsClear() {
		t.Errorf("Clear should count as edited")
	}
}

func TestClearAll(t *testing.T) {
	m := newModel()
	if _, err := (command.ClearAll{}).Execute(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.FilteredClients())+len(m.FilteredProperties())+len(m.FilteredDeals())+len(m.FilteredEvents()) != 0 {
		t.Fatalf("expected an empty book")
	}
}

func assertUnchanged(t *testing.T, m *model.Model) {
	t.Helper()
	if !m.AddressBook().Equal(testutil.TypicalAddressBook()) {
		t.Fatalf("address book was modified")
	}
}

func mustName(t *testing.T, s string) domain.ClientName {
	t.Helper()
	n, err := domain.NewClientName(s)
	if err != nil {
		t.Fatalf("bad name %q: %v", s, err)
	}
	return n
}

func TestCommands_IndexErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  command.Command
		want error
	}{
		{"delete client", command.DeleteClient{Index: 5}, command.ErrInvalidIndex},
		{"delete property", command.DeleteProperty{Index: 4}, command.ErrInvalidIndex},
		{"delete deal", command.DeleteDeal{Index: 3}, command.ErrInvalidIndex},
		{"delete event", command.DeleteEvent{Index: 0}, command.ErrInvalidIndex},
		{"add deal property", command.AddDeal{PropertyIndex: 9, BuyerIndex: 1, SellerIndex: 2, Price: testutil.Price(500)},
			command.ErrInvalidPropertyReference},
		{"add deal buyer", command.AddDeal{PropertyIndex: 1, BuyerIndex: 9, SellerIndex: 2, Price: testutil.Price(500)},
			command.ErrInvalidClientReference},
		{"add event client", command.AddEvent{Heading: domain.HeadingOthers, PropertyIndex: 1, ClientIndex: 7},
			command.ErrInvalidClientReference},
		{"edit event empty", command.EditEvent{Index: 1}, command.ErrNoFieldsEdited},
		{"update deal empty", command.UpdateDeal{Index: 1}, command.ErrNoFieldsEdited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel()
			_, err := tt.cmd.Execute(m)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			assertUnchanged(t, m)
		})
	}
}
