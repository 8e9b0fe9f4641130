package domain

import (
	"errors"
	"fmt"
)

// Deal is a sale of a property between two clients. Property, Buyer and
// Seller are references by name.
type Deal struct {
	Property PropertyName
	Buyer    ClientName
	Seller   ClientName
	Price    Price
	Status   DealStatus
}

// NewDeal creates a deal from validated fields
func NewDeal(property PropertyName, buyer, seller ClientName, price Price, status DealStatus) (Deal, error) {
	d := Deal{Property: property, Buyer: buyer, Seller: seller, Price: price, Status: status}
	if err := d.Validate(); err != nil {
		return Deal{}, err
	}
	return d, nil
}

// Validate returns an error if the deal is invalid
func (d Deal) Validate() error {
	if d.Property.IsZero() {
		return errors.New("deal property is required")
	}
	if d.Buyer.IsZero() || d.Seller.IsZero() {
		return errors.New("deal buyer and seller are required")
	}
	if d.Buyer.Key() == d.Seller.Key() {
		return invalid("deal", "buyer and seller must be different clients")
	}
	if d.Price.IsZero() {
		return errors.New("deal price is required")
	}
	if d.Status == "" {
		return errors.New("deal status is required")
	}
	return nil
}

// Key returns the identity used for duplicate detection: the property
// together with both parties.
func (d Deal) Key() string {
	return d.Property.Key() + "\x00" + d.Buyer.Key() + "\x00" + d.Seller.Key()
}

// Same reports whether both deals have the same identity.
func (d Deal) Same(other Deal) bool { return d.Key() == other.Key() }

func (d Deal) String() string {
	return fmt.Sprintf("%s; Buyer: %s; Seller: %s; Price: %s; Status: %s",
		d.Property, d.Buyer, d.Seller, d.Price, d.Status)
}
