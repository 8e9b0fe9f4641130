package command

import (
	"fmt"

	"github.com/andy/reconnect/internal/domain"
	"github.com/andy/reconnect/internal/model"
)

// AddEvent schedules an event about a shown property with a shown client.
type AddEvent struct {
	Heading       domain.Heading
	DateTime      domain.DateTime
	PropertyIndex Index
	ClientIndex   Index
	Note          domain.Note
}

func (c AddEvent) Execute(m *model.Model) (*Result, error) {
	property, err := resolve(m.FilteredProperties(), c.PropertyIndex, "event", ErrInvalidPropertyReference)
	if err != nil {
		return nil, err
	}
	client, err := resolve(m.FilteredClients(), c.ClientIndex, "event", ErrInvalidClientReference)
	if err != nil {
		return nil, err
	}
	event, err := domain.NewEvent(c.Heading, c.DateTime, property.Name, client.Name, c.Note)
	if err != nil {
		return nil, err
	}
	if err := m.AddEvent(event); err != nil {
		return nil, fmt.Errorf("failed to add event: %w", err)
	}
	return &Result{Feedback: fmt.Sprintf("New event added: %s", event)}, nil
}

// EditEventDescriptor holds the event fields to change. Note may be cleared.
type EditEventDescriptor struct {
	Heading  Field[domain.Heading]
	DateTime Field[domain.DateTime]
	Property Field[Index]
	Client   Field[Index]
	Note     Field[domain.Note]
}

func (d EditEventDescriptor) anyEdited() bool {
	return d.Heading.Edited() || d.DateTime.Edited() || d.Property.Edited() || d.Client.Edited() || d.Note.Edited()
}

// EditEvent edits the event shown at Index.
type EditEvent struct {
	Index      Index
	Descriptor EditEventDescriptor
}

func (c EditEvent) Execute(m *model.Model) (*Result, error) {
	d := c.Descriptor
	if !d.anyEdited() {
		return nil, ErrNoFieldsEdited
	}
	target, err := resolve(m.FilteredEvents(), c.Index, "event", ErrInvalidIndex)
	if err != nil {
		return nil, err
	}

	propertyName := target.Property
	if idx, ok := d.Property.Value(); ok {
		p, err := resolve(m.FilteredProperties(), idx, "event", ErrInvalidPropertyReference)
		if err != nil {
			return nil, err
		}
		propertyName = p.Name
	}
	clientName, err := clientNameAt(m, d.Client, target.Client, "event")
	if err != nil {
		return nil, err
	}

	edited, err := domain.NewEvent(
		d.Heading.Apply(target.Heading),
		d.DateTime.Apply(target.DateTime),
		propertyName,
		clientName,
		d.Note.Apply(target.Note),
	)
	if err != nil {
		return nil, err
	}
	if edited == target {
		return nil, fmt.Errorf("event: %w", ErrNoChanges)
	}
	if err := m.SetEvent(target, edited); err != nil {
		return nil, fmt.Errorf("failed to edit event: %w", err)
	}
	m.UpdateFilteredEventList(nil)
	return &Result{Feedback: fmt.Sprintf("Edited event: %s", edited)}, nil
}

type DeleteEvent struct {
	Index Index
}

func (c DeleteEvent) Execute(m *model.Model) (*Result, error) {
	target, err := resolve(m.FilteredEvents(), c.Index, "event", ErrInvalidIndex)
	if err != nil {
		return nil, err
	}
	if err := m.DeleteEvent(target); err != nil {
		return nil, fmt.Errorf("failed to delete event: %w", err)
	}
	return &Result{Feedback: fmt.Sprintf("Deleted event: %s", target)}, nil
}

type ListEvents struct{}

func (ListEvents) Execute(m *model.Model) (*Result, error) {
	m.UpdateFilteredEventList(nil)
	return &Result{Feedback: "Listed all events"}, nil
}

type FindEvents struct {
	Keywords []string
}

func (c FindEvents) Execute(m *model.Model) (*Result, error) {
	m.UpdateFilteredEventList(model.EventMatches(c.Keywords))
	return &Result{Feedback: listed(len(m.FilteredEvents()), "event", "events")}, nil
}
