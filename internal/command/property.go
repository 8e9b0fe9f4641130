package command

import (
	"fmt"
	"slices"

	"github.com/andy/reconnect/internal/domain"
	"github.com/andy/reconnect/internal/model"
)

// AddProperty adds a property owned by the client shown at OwnerIndex.
type AddProperty struct {
	Name        domain.PropertyName
	Address     domain.Address
	Price       domain.Price
	Size        domain.Size
	Description domain.Description
	OwnerIndex  Index
}

func (c AddProperty) Execute(m *model.Model) (*Result, error) {
	owner, err := resolve(m.FilteredClients(), c.OwnerIndex, "property", ErrInvalidOwnerReference)
	if err != nil {
		return nil, err
	}
	p, err := domain.NewProperty(c.Name, c.Address, c.Price, c.Size, c.Description, owner.Name)
	if err != nil {
		return nil, err
	}
	if err := m.AddProperty(p); err != nil {
		return nil, fmt.Errorf("failed to add property: %w", err)
	}
	return &Result{Feedback: fmt.Sprintf("New property added: %s", p)}, nil
}

// EditPropertyDescriptor holds the property fields to change. Size and
// Description may be cleared; Owner is an index into the shown clients.
type EditPropertyDescriptor struct {
	Name        Field[domain.PropertyName]
	Address     Field[domain.Address]
	Price       Field[domain.Price]
	Size        Field[domain.Size]
	Description Field[domain.Description]
	Owner       Field[Index]
}

func (d EditPropertyDescriptor) anyEdited() bool {
	return d.Name.Edited() || d.Address.Edited() || d.Price.Edited() ||
		d.Size.Edited() || d.Description.Edited() || d.Owner.Edited()
}

// EditProperty edits the property shown at Index. When the name changes,
// deals and events that were shown and referred to the old name are moved
// to the new one.
type EditProperty struct {
	Index      Index
	Descriptor EditPropertyDescriptor
}

func (c EditProperty) Execute(m *model.Model) (*Result, error) {
	d := c.Descriptor
	if !d.anyEdited() {
		return nil, ErrNoFieldsEdited
	}
	target, err := resolve(m.FilteredProperties(), c.Index, "property", ErrInvalidIndex)
	if err != nil {
		return nil, err
	}

	owner := target.Owner
	if idx, ok := d.Owner.Value(); ok {
		client, err := resolve(m.FilteredClients(), idx, "property", ErrInvalidOwnerReference)
		if err != nil {
			return nil, err
		}
		owner = client.Name
	}
	edited, err := domain.NewProperty(
		d.Name.Apply(target.Name),
		d.Address.Apply(target.Address),
		d.Price.Apply(target.Price),
		d.Size.Apply(target.Size),
		d.Description.Apply(target.Description),
		owner,
	)
	if err != nil {
		return nil, err
	}
	if edited == target {
		return nil, fmt.Errorf("property: %w", ErrNoChanges)
	}

	shownDeals := m.FilteredDeals()
	shownEvents := m.FilteredEvents()

	if err := m.SetProperty(target, edited); err != nil {
		return nil, fmt.Errorf("failed to edit property: %w", err)
	}
	m.UpdateFilteredPropertyList(nil)

	res := &Result{Feedback: fmt.Sprintf("Edited property: %s", edited)}
	if edited.Name != target.Name {
		res.Cascade = cascadeRename(m, target.Name, edited, shownDeals, shownEvents)
	}
	return res, nil
}

// cascadeRename points every deal and event in the snapshots that still
// refers to oldName at the renamed property. Each update goes through the
// regular command path; failures are logged and recorded, never returned.
func cascadeRename(m *model.Model, oldName domain.PropertyName, renamed domain.Property,
	deals []domain.Deal, events []domain.Event) []CascadeOutcome {
	var outcomes []CascadeOutcome
	record := func(o CascadeOutcome) {
		if o.Err != nil {
			m.Logger().Warn("cascade update failed",
				"kind", o.Kind, "reference", o.Reference, "property", renamed.Name.String(), "error", o.Err)
		}
		outcomes = append(outcomes, o)
	}

	propertyIdx := Index(slices.Index(m.FilteredProperties(), renamed) + 1)

	for _, deal := range deals {
		if deal.Property != oldName {
			continue
		}
		o := CascadeOutcome{Kind: "deal", Reference: deal.String()}
		if at := slices.Index(m.FilteredDeals(), deal); at < 0 {
			o.Err = fmt.Errorf("deal: %w", ErrInvalidIndex)
		} else {
			update := UpdateDeal{
				Index:      Index(at + 1),
				Descriptor: UpdateDealDescriptor{Property: Set(propertyIdx)},
			}
			_, o.Err = update.Execute(m)
		}
		record(o)
	}

	for _, event := range events {
		if event.Property != oldName {
			continue
		}
		o := CascadeOutcome{Kind: "event", Reference: event.String()}
		if at := slices.Index(m.FilteredEvents(), event); at < 0 {
			o.Err = fmt.Errorf("event: %w", ErrInvalidIndex)
		} else {
			edit := EditEvent{
				Index:      Index(at + 1),
				Descriptor: EditEventDescriptor{Property: Set(propertyIdx)},
			}
			_, o.Err = edit.Execute(m)
		}
		record(o)
	}

	if len(outcomes) > 0 {
		m.Logger().Debug("cascaded property rename",
			"from", oldName.String(), "to", renamed.Name.String(), "updates", len(outcomes))
	}
	return outcomes
}

// DeleteProperty removes the property shown at Index. Deals and events
// referring to it are kept.
type DeleteProperty struct {
	Index Index
}

func (c DeleteProperty) Execute(m *model.Model) (*Result, error) {
	target, err := resolve(m.FilteredProperties(), c.Index, "property", ErrInvalidIndex)
	if err != nil {
		return nil, err
	}
	if err := m.DeleteProperty(target); err != nil {
		return nil, fmt.Errorf("failed to delete property: %w", err)
	}
	return &Result{Feedback: fmt.Sprintf("Deleted property: %s", target)}, nil
}

type ListProperties struct{}

func (ListProperties) Execute(m *model.Model) (*Result, error) {
	m.UpdateFilteredPropertyList(nil)
	return &Result{Feedback: "Listed all properties"}, nil
}

// FindProperties shows properties whose name or owner contains a keyword.
type FindProperties struct {
	Keywords []string
}

func (c FindProperties) Execute(m *model.Model) (*Result, error) {
	m.UpdateFilteredPropertyList(model.PropertyMatches(c.Keywords))
	return &Result{Feedback: listed(len(m.FilteredProperties()), "property", "properties")}, nil
}
