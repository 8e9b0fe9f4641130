package command

import (
	"fmt"

	"github.com/andy/reconnect/internal/domain"
	"github.com/andy/reconnect/internal/model"
)

// AddDeal records a deal for the shown property between two shown clients.
type AddDeal struct {
	PropertyIndex Index
	BuyerIndex    Index
	SellerIndex   Index
	Price         domain.Price
	Status        domain.DealStatus
}

func (c AddDeal) Execute(m *model.Model) (*Result, error) {
	property, err := resolve(m.FilteredProperties(), c.PropertyIndex, "deal", ErrInvalidPropertyReference)
	if err != nil {
		return nil, err
	}
	clients := m.FilteredClients()
	buyer, err := resolve(clients, c.BuyerIndex, "deal buyer", ErrInvalidClientReference)
	if err != nil {
		return nil, err
	}
	seller, err := resolve(clients, c.SellerIndex, "deal seller", ErrInvalidClientReference)
	if err != nil {
		return nil, err
	}

	status := c.Status
	if status == "" {
		status = domain.DealStatusOpen
	}
	deal, err := domain.NewDeal(property.Name, buyer.Name, seller.Name, c.Price, status)
	if err != nil {
		return nil, err
	}
	if err := m.AddDeal(deal); err != nil {
		return nil, fmt.Errorf("failed to add deal: %w", err)
	}
	return &Result{Feedback: fmt.Sprintf("New deal added: %s", deal)}, nil
}

// UpdateDealDescriptor holds the deal fields to change. Property, Buyer
// and Seller are indexes into the shown properties and clients.
type UpdateDealDescriptor struct {
	Property Field[Index]
	Buyer    Field[Index]
	Seller   Field[Index]
	Price    Field[domain.Price]
	Status   Field[domain.DealStatus]
}

func (d UpdateDealDescriptor) anyEdited() bool {
	return d.Property.Edited() || d.Buyer.Edited() || d.Seller.Edited() || d.Price.Edited() || d.Status.Edited()
}

// UpdateDeal edits the deal shown at Index.
type UpdateDeal struct {
	Index      Index
	Descriptor UpdateDealDescriptor
}

func (c UpdateDeal) Execute(m *model.Model) (*Result, error) {
	d := c.Descriptor
	if !d.anyEdited() {
		return nil, ErrNoFieldsEdited
	}
	target, err := resolve(m.FilteredDeals(), c.Index, "deal", ErrInvalidIndex)
	if err != nil {
		return nil, err
	}

	propertyName := target.Property
	if idx, ok := d.Property.Value(); ok {
		p, err := resolve(m.FilteredProperties(), idx, "deal", ErrInvalidPropertyReference)
		if err != nil {
			return nil, err
		}
		propertyName = p.Name
	}
	buyer, err := clientNameAt(m, d.Buyer, target.Buyer, "deal buyer")
	if err != nil {
		return nil, err
	}
	seller, err := clientNameAt(m, d.Seller, target.Seller, "deal seller")
	if err != nil {
		return nil, err
	}

	edited, err := domain.NewDeal(propertyName, buyer, seller, d.Price.Apply(target.Price), d.Status.Apply(target.Status))
	if err != nil {
		return nil, err
	}
	if edited == target {
		return nil, fmt.Errorf("deal: %w", ErrNoChanges)
	}
	if err := m.SetDeal(target, edited); err != nil {
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}
	m.UpdateFilteredDealList(nil)
	return &Result{Feedback: fmt.Sprintf("Updated deal: %s", edited)}, nil
}

// clientNameAt resolves an optional client index field, falling back to current.
func clientNameAt(m *model.Model, f Field[Index], current domain.ClientName, kind string) (domain.ClientName, error) {
	idx, ok := f.Value()
	if !ok {
		return current, nil
	}
	c, err := resolve(m.FilteredClients(), idx, kind, ErrInvalidClientReference)
	if err != nil {
		return domain.ClientName{}, err
	}
	return c.Name, nil
}

type DeleteDeal struct {
	Index Index
}

func (c DeleteDeal) Execute(m *model.Model) (*Result, error) {
	target, err := resolve(m.FilteredDeals(), c.Index, "deal", ErrInvalidIndex)
	if err != nil {
		return nil, err
	}
	if err := m.DeleteDeal(target); err != nil {
		return nil, fmt.Errorf("failed to delete deal: %w", err)
	}
	return &Result{Feedback: fmt.Sprintf("Deleted deal: %s", target)}, nil
}

type ListDeals struct{}

func (ListDeals) Execute(m *model.Model) (*Result, error) {
	m.UpdateFilteredDealList(nil)
	return &Result{Feedback: "Listed all deals"}, nil
}

type FindDeals struct {
	Keywords []string
}

func (c FindDeals) Execute(m *model.Model) (*Result, error) {
	m.UpdateFilteredDealList(model.DealMatches(c.Keywords))
	return &Result{Feedback: listed(len(m.FilteredDeals()), "deal", "deals")}, nil
}
