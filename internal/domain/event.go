package domain

import (
	"errors"
	"fmt"
)

// Event is a scheduled appointment about a property with a client.
type Event struct {
	Heading  Heading
	DateTime DateTime
	Property PropertyName
	Client   ClientName
	Note     Note
}

// NewEvent creates an event from validated fields
func NewEvent(heading Heading, dateTime DateTime, property PropertyName, client ClientName, note Note) (Event, error) {
	e := Event{Heading: heading, DateTime: dateTime, Property: property, Client: client, Note: note}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Validate returns an error if a required field is missing
func (e Event) Validate() error {
	if e.Heading == "" {
		return errors.New("event heading is required")
	}
	if e.DateTime.IsZero() {
		return errors.New("event date-time is required")
	}
	if e.Property.IsZero() {
		return errors.New("event property is required")
	}
	if e.Client.IsZero() {
		return errors.New("event client is required")
	}
	return nil
}

// Key returns the identity used for duplicate detection.
func (e Event) Key() string {
	return string(e.Heading) + "\x00" + e.DateTime.String() + "\x00" + e.Property.Key() + "\x00" + e.Client.Key()
}

// Same reports whether both events have the same identity.
func (e Event) Same(other Event) bool { return e.Key() == other.Key() }

func (e Event) String() string {
	return fmt.Sprintf("%s on %s; Property: %s; Client: %s; Note: %s",
		e.Heading, e.DateTime, e.Property, e.Client, e.Note)
}
