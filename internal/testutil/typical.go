// Package testutil builds typical entities for tests. Every helper panics
// on invalid input, so fixtures can be declared as package variables.
package testutil

import (
	"fmt"

	"github.com/andy/reconnect/internal/domain"
	"github.com/andy/reconnect/internal/repository"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("testutil: %v", err))
	}
	return v
}

// ClientName builds a validated client name.
func ClientName(s string) domain.ClientName { return must(domain.NewClientName(s)) }

// PropertyName builds a validated property name.
func PropertyName(s string) domain.PropertyName { return must(domain.NewPropertyName(s)) }

// Price builds a validated price.
func Price(v int64) domain.Price { return must(domain.NewPrice(v)) }

// Client builds a client. Empty email or address means absent.
func Client(name, phone, email, address string) domain.Client {
	var e domain.Email
	if email != "" {
		e = must(domain.NewEmail(email))
	}
	var a domain.Address
	if address != "" {
		a = must(domain.NewAddress(address))
	}
	return must(domain.NewClient(ClientName(name), must(domain.NewPhone(phone)), e, a))
}

// Property builds a property. Size 0 and empty description mean absent.
func Property(name, address string, price, size int64, description, owner string) domain.Property {
	var sz domain.Size
	if size != 0 {
		sz = must(domain.NewSize(size))
	}
	return must(domain.NewProperty(
		PropertyName(name),
		must(domain.NewAddress(address)),
		Price(price),
		sz,
		must(domain.NewDescription(description)),
		ClientName(owner),
	))
}

// Deal builds a deal.
func Deal(property, buyer, seller string, price int64, status domain.DealStatus) domain.Deal {
	return must(domain.NewDeal(PropertyName(property), ClientName(buyer), ClientName(seller), Price(price), status))
}

// Event builds an event.
func Event(heading domain.Heading, at, property, client, note string) domain.Event {
	return must(domain.NewEvent(
		heading,
		must(domain.ParseDateTime(at)),
		PropertyName(property),
		ClientName(client),
		must(domain.NewNote(note)),
	))
}

var (
	Alice  = Client("Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6, #08-111")
	Benson = Client("Benson Meier", "98765432", "johnd@example.com", "")
	Carl   = Client("Carl Kurz", "95352563", "", "wall street")
	Daniel = Client("Daniel Meier", "87652533", "cornelia@example.com", "10th street")

	SunnyVilla = Property("Sunny Villa", "12 Sunset Way", 1250, 1400, "Corner unit", "Alice Pauline")
	MapleCourt = Property("Maple Court", "234 Maple Street", 2000, 0, "", "Benson Meier")
	OrchidRes  = Property("Orchid Residences", "8 Orchard Road", 980, 850, "Near MRT", "Carl Kurz")

	SunnyVillaDeal = Deal("Sunny Villa", "Benson Meier", "Alice Pauline", 1200, domain.DealStatusOpen)
	MapleCourtDeal = Deal("Maple Court", "Carl Kurz", "Benson Meier", 1950, domain.DealStatusPending)

	SunnyVillaViewing = Event(domain.HeadingViewing, "2025-03-14 09:30", "Sunny Villa", "Benson Meier", "Bring keys")
	MapleCourtMeeting = Event(domain.HeadingMeeting, "2025-03-20 14:00", "Maple Court", "Carl Kurz", "")
)

// TypicalAddressBook returns a fresh book holding all typical entities.
func TypicalAddressBook() *repository.AddressBook {
	ab := repository.New()
	for _, c := range []domain.Client{Alice, Benson, Carl, Daniel} {
		must(struct{}{}, ab.AddClient(c))
	}
	for _, p := range []domain.Property{SunnyVilla, MapleCourt, OrchidRes} {
		must(struct{}{}, ab.AddProperty(p))
	}
	for _, d := range []domain.Deal{SunnyVillaDeal, MapleCourtDeal} {
		must(struct{}{}, ab.AddDeal(d))
	}
	for _, e := range []domain.Event{SunnyVillaViewing, MapleCourtMeeting} {
		must(struct{}{}, ab.AddEvent(e))
	}
	return ab
}
