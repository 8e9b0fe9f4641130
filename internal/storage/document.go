// Package storage converts the address book to and from a flat document
// and persists that document.
package storage

import (
	"errors"
	"fmt"

	"github.com/andy/reconnect/internal/domain"
	"github.com/andy/reconnect/internal/repository"
)

// Document is the persisted form of an address book. Lists keep the
// order of the book.
type Document struct {
	Clients    []ClientRecord   `json:"clients" yaml:"clients"`
	Properties []PropertyRecord `json:"properties" yaml:"properties"`
	Deals      []DealRecord     `json:"deals" yaml:"deals"`
	Events     []EventRecord    `json:"events" yaml:"events"`
}

type ClientRecord struct {
	Name    string `json:"name" yaml:"name"`
	Phone   string `json:"phone" yaml:"phone"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
}

type PropertyRecord struct {
	Name        string `json:"name" yaml:"name"`
	Address     string `json:"address" yaml:"address"`
	Price       int64  `json:"price" yaml:"price"`
	Size        int64  `json:"size,omitempty" yaml:"size,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Owner       string `json:"owner" yaml:"owner"`
}

type DealRecord struct {
	Property string `json:"property" yaml:"property"`
	Buyer    string `json:"buyer" yaml:"buyer"`
	Seller   string `json:"seller" yaml:"seller"`
	Price    int64  `json:"price" yaml:"price"`
	Status   string `json:"status" yaml:"status"`
}

type EventRecord struct {
	Heading  string `json:"heading" yaml:"heading"`
	DateTime string `json:"datetime" yaml:"datetime"`
	Property string `json:"property" yaml:"property"`
	Client   string `json:"client" yaml:"client"`
	Note     string `json:"note,omitempty" yaml:"note,omitempty"`
}

// IllegalValueError reports stored data that cannot be turned back into
// a valid address book.
type IllegalValueError struct {
	Message string
}

func (e *IllegalValueError) Error() string { return e.Message }

func missingField(typeName, field string) error {
	return &IllegalValueError{Message: fmt.Sprintf("%s's %s field is missing!", typeName, field)}
}

// illegal turns a constructor error into an IllegalValueError carrying the
// constraint message.
func illegal(err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return &IllegalValueError{Message: verr.Message}
	}
	return &IllegalValueError{Message: err.Error()}
}

// ToDocument flattens ab.
func ToDocument(ab *repository.AddressBook) Document {
	var doc Document
	for _, c := range ab.Clients() {
		doc.Clients = append(doc.Clients, ClientRecord{
			Name:    c.Name.String(),
			Phone:   c.Phone.String(),
			Email:   optional(c.Email.IsZero(), c.Email.String()),
			Address: optional(c.Address.IsZero(), c.Address.String()),
		})
	}
	for _, p := range ab.Properties() {
		doc.Properties = append(doc.Properties, PropertyRecord{
			Name:        p.Name.String(),
			Address:     p.Address.String(),
			Price:       p.Price.Value(),
			Size:        p.Size.Value(),
			Description: optional(p.Description.IsZero(), p.Description.String()),
			Owner:       p.Owner.String(),
		})
	}
	for _, d := range ab.Deals() {
		doc.Deals = append(doc.Deals, DealRecord{
			Property: d.Property.String(),
			Buyer:    d.Buyer.String(),
			Seller:   d.Seller.String(),
			Price:    d.Price.Value(),
			Status:   d.Status.String(),
		})
	}
	for _, e := range ab.Events() {
		doc.Events = append(doc.Events, EventRecord{
			Heading:  e.Heading.String(),
			DateTime: e.DateTime.String(),
			Property: e.Property.String(),
			Client:   e.Client.String(),
			Note:     optional(e.Note.IsZero(), e.Note.String()),
		})
	}
	return doc
}

func optional(absent bool, s string) string {
	if absent {
		return ""
	}
	return s
}

// ToAddressBook rebuilds an address book, validating every field. Records
// are inserted in document order and the first problem aborts the load.
func (doc Document) ToAddressBook() (*repository.AddressBook, error) {
	ab := repository.New()
	for _, r := range doc.Clients {
		c, err := r.toClient()
		if err != nil {
			return nil, err
		}
		if err := ab.AddClient(c); err != nil {
			return nil, &IllegalValueError{Message: "Client list contains duplicate client(s)."}
		}
	}
	for _, r := range doc.Properties {
		p, err := r.toProperty()
		if err != nil {
			return nil, err
		}
		if err := ab.AddProperty(p); err != nil {
			return nil, &IllegalValueError{Message: "Property list contains duplicate properties."}
		}
	}
	for _, r := range doc.Deals {
		d, err := r.toDeal()
		if err != nil {
			return nil, err
		}
		if err := ab.AddDeal(d); err != nil {
			return nil, &IllegalValueError{Message: "Deal list contains duplicate deal(s)."}
		}
	}
	for _, r := range doc.Events {
		e, err := r.toEvent()
		if err != nil {
			return nil, err
		}
		if err := ab.AddEvent(e); err != nil {
			return nil, &IllegalValueError{Message: "Event list contains duplicate event(s)."}
		}
	}
	return ab, nil
}

func (r ClientRecord) toClient() (domain.Client, error) {
	if r.Name == "" {
		return domain.Client{}, missingField("Client", "name")
	}
	name, err := domain.NewClientName(r.Name)
	if err != nil {
		return domain.Client{}, illegal(err)
	}
	if r.Phone == "" {
		return domain.Client{}, missingField("Client", "phone")
	}
	phone, err := domain.NewPhone(r.Phone)
	if err != nil {
		return domain.Client{}, illegal(err)
	}
	var email domain.Email
	if r.Email != "" {
		if email, err = domain.NewEmail(r.Email); err != nil {
			return domain.Client{}, illegal(err)
		}
	}
	var address domain.Address
	if r.Address != "" {
		if address, err = domain.NewAddress(r.Address); err != nil {
			return domain.Client{}, illegal(err)
		}
	}
	c, err := domain.NewClient(name, phone, email, address)
	if err != nil {
		return domain.Client{}, illegal(err)
	}
	return c, nil
}

func (r PropertyRecord) toProperty() (domain.Property, error) {
	if r.Name == "" {
		return domain.Property{}, missingField("Property", "name")
	}
	name, err := domain.NewPropertyName(r.Name)
	if err != nil {
		return domain.Property{}, illegal(err)
	}
	if r.Address == "" {
		return domain.Property{}, missingField("Property", "address")
	}
	address, err := domain.NewAddress(r.Address)
	if err != nil {
		return domain.Property{}, illegal(err)
	}
	if r.Price == 0 {
		return domain.Property{}, missingField("Property", "price")
	}
	price, err := domain.NewPrice(r.Price)
	if err != nil {
		return domain.Property{}, illegal(err)
	}
	var size domain.Size
	if r.Size != 0 {
		if size, err = domain.NewSize(r.Size); err != nil {
			return domain.Property{}, illegal(err)
		}
	}
	description, err := domain.NewDescription(r.Description)
	if err != nil {
		return domain.Property{}, illegal(err)
	}
	if r.Owner == "" {
		return domain.Property{}, missingField("Property", "owner")
	}
	owner, err := domain.NewClientName(r.Owner)
	if err != nil {
		return domain.Property{}, illegal(err)
	}
	p, err := domain.NewProperty(name, address, price, size, description, owner)
	if err != nil {
		return domain.Property{}, illegal(err)
	}
	return p, nil
}

func (r DealRecord) toDeal() (domain.Deal, error) {
	if r.Property == "" {
		return domain.Deal{}, missingField("Deal", "property")
	}
	property, err := domain.NewPropertyName(r.Property)
	if err != nil {
		return domain.Deal{}, illegal(err)
	}
	if r.Buyer == "" {
		return domain.Deal{}, missingField("Deal", "buyer")
	}
	buyer, err := domain.NewClientName(r.Buyer)
	if err != nil {
		return domain.Deal{}, illegal(err)
	}
	if r.Seller == "" {
		return domain.Deal{}, missingField("Deal", "seller")
	}
	seller, err := domain.NewClientName(r.Seller)
	if err != nil {
		return domain.Deal{}, illegal(err)
	}
	if r.Price == 0 {
		return domain.Deal{}, missingField("Deal", "price")
	}
	price, err := domain.NewPrice(r.Price)
	if err != nil {
		return domain.Deal{}, illegal(err)
	}
	if r.Status == "" {
		return domain.Deal{}, missingField("Deal", "status")
	}
	status, err := domain.ParseDealStatus(r.Status)
	if err != nil {
		return domain.Deal{}, illegal(err)
	}
	d, err := domain.NewDeal(property, buyer, seller, price, status)
	if err != nil {
		return domain.Deal{}, illegal(err)
	}
	return d, nil
}

func (r EventRecord) toEvent() (domain.Event, error) {
	if r.Heading == "" {
		return domain.Event{}, missingField("Event", "heading")
	}
	heading, err := domain.ParseHeading(r.Heading)
	if err != nil {
		return domain.Event{}, illegal(err)
	}
	if r.DateTime == "" {
		return domain.Event{}, missingField("Event", "datetime")
	}
	at, err := domain.ParseDateTime(r.DateTime)
	if err != nil {
		return domain.Event{}, illegal(err)
	}
	if r.Property == "" {
		return domain.Event{}, missingField("Event", "property")
	}
	property, err := domain.NewPropertyName(r.Property)
	if err != nil {
		return domain.Event{}, illegal(err)
	}
	if r.Client == "" {
		return domain.Event{}, missingField("Event", "client")
	}
	client, err := domain.NewClientName(r.Client)
	if err != nil {
		return domain.Event{}, illegal(err)
	}
	note, err := domain.NewNote(r.Note)
	if err != nil {
		return domain.Event{}, illegal(err)
	}
	e, err := domain.NewEvent(heading, at, property, client, note)
	if err != nil {
		return domain.Event{}, illegal(err)
	}
	return e, nil
}
