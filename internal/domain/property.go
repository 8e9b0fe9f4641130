package domain

import (
	"errors"
	"fmt"
)

// Property is a listing managed by the agent. Owner holds the owning
// client's name by value and is not checked against the client list.
type Property struct {
	Name        PropertyName
	Address     Address
	Price       Price
	Size        Size
	Description Description
	Owner       ClientName
}

// NewProperty creates a property from validated fields
func NewProperty(name PropertyName, address Address, price Price, size Size, description Description, owner ClientName) (Property, error) {
	p := Property{
		Name:        name,
		Address:     address,
		Price:       price,
		Size:        size,
		Description: description,
		Owner:       owner,
	}
	if err := p.Validate(); err != nil {
		return Property{}, err
	}
	return p, nil
}

// Validate returns an error if a required field is missing
func (p Property) Validate() error {
	if p.Name.IsZero() {
		return errors.New("property name is required")
	}
	if p.Address.IsZero() {
		return errors.New("property address is required")
	}
	if p.Price.IsZero() {
		return errors.New("property price is required")
	}
	if p.Owner.IsZero() {
		return errors.New("property owner is required")
	}
	return nil
}

// Key returns the identity used for duplicate detection.
func (p Property) Key() string { return p.Name.Key() }

// Same reports whether both properties have the same identity.
func (p Property) Same(other Property) bool { return p.Key() == other.Key() }

func (p Property) String() string {
	return fmt.Sprintf("%s; Address: %s; Price: %s; Size: %s; Description: %s; Owner: %s",
		p.Name, p.Address, p.Price, p.Size, p.Description, p.Owner)
}
