package domain

import "testing"

func mustClient(t *testing.T, name, phone, email string) Client {
	t.Helper()
	n, err := NewClientName(name)
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	p, err := NewPhone(phone)
	if err != nil {
		t.Fatalf("phone: %v", err)
	}
	var e Email
	if email != "" {
		if e, err = NewEmail(email); err != nil {
			t.Fatalf("email: %v", err)
		}
	}
	c, err := NewClient(n, p, e, Address{})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return c
}

func TestClientSameVersusEqual(t *testing.T) {
	alice := mustClient(t, "Alice Pauline", "94351253", "alice@example.com")

	// same name, other attributes different
	edited := mustClient(t, "Alice Pauline", "81234567", "")
	if !alice.Same(edited) {
		t.Fatalf("expected same identity")
	}
	if alice == edited {
		t.Fatalf("expected structural inequality")
	}

	// name differs in case and trailing whitespace
	if !alice.Same(mustClient(t, "alice pauline ", "94351253", "alice@example.com")) {
		t.Fatalf("expected identity to ignore case and trailing spaces")
	}

	if alice.Same(mustClient(t, "Bob Choo", "94351253", "alice@example.com")) {
		t.Fatalf("different names should not be the same client")
	}

	if alice != mustClient(t, "Alice Pauline", "94351253", "alice@example.com") {
		t.Fatalf("expected equal clients")
	}
}

func TestNewClientRequiresFields(t *testing.T) {
	if _, err := NewClient(ClientName{}, Phone{}, Email{}, Address{}); err == nil {
		t.Fatalf("expected error for missing name")
	}
}

func TestDealRequiresDistinctParties(t *testing.T) {
	prop, _ := NewPropertyName("Sunny Villa")
	buyer, _ := NewClientName("Alice")
	price, _ := NewPrice(1200)

	if _, err := NewDeal(prop, buyer, buyer, price, DealStatusOpen); err == nil {
		t.Fatalf("expected error when buyer and seller are the same")
	}

	seller, _ := NewClientName("Bob")
	d, err := NewDeal(prop, buyer, seller, price, DealStatusOpen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	otherCase, _ := NewPropertyName("SUNNY VILLA")
	d2, _ := NewDeal(otherCase, buyer, seller, price, DealStatusClosed)
	if !d.Same(d2) {
		t.Fatalf("deals on the same property between the same parties should share identity")
	}
}

func TestEventIdentity(t *testing.T) {
	prop, _ := NewPropertyName("Sunny Villa")
	client, _ := NewClientName("Alice")
	at, _ := ParseDateTime("2025-03-14 09:30")
	note, _ := NewNote("Bring keys")

	e1, err := NewEvent(HeadingViewing, at, prop, client, note)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e2, _ := NewEvent(HeadingViewing, at, prop, client, Note{})
	if !e1.Same(e2) || e1 == e2 {
		t.Fatalf("note should not affect identity but should affect equality")
	}
	e3, _ := NewEvent(HeadingMeeting, at, prop, client, note)
	if e1.Same(e3) {
		t.Fatalf("different headings should be different events")
	}
}
