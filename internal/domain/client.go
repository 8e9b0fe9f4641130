package domain

import (
	"errors"
	"fmt"
)

// Client is a person the agent works with, as buyer, seller or owner.
// Email and Address are optional.
type Client struct {
	Name    ClientName
	Phone   Phone
	Email   Email
	Address Address
}

// NewClient creates a client from validated fields
func NewClient(name ClientName, phone Phone, email Email, address Address) (Client, error) {
	c := Client{Name: name, Phone: phone, Email: email, Address: address}
	if err := c.Validate(); err != nil {
		return Client{}, err
	}
	return c, nil
}

// Validate returns an error if a required field is missing
func (c Client) Validate() error {
	if c.Name.IsZero() {
		return errors.New("client name is required")
	}
	if c.Phone.IsZero() {
		return errors.New("client phone is required")
	}
	return nil
}

// Key returns the identity used for duplicate detection.
func (c Client) Key() string { return c.Name.Key() }

// Same reports whether both clients have the same identity.
func (c Client) Same(other Client) bool { return c.Key() == other.Key() }

func (c Client) String() string {
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Address: %s", c.Name, c.Phone, c.Email, c.Address)
}
