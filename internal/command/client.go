package command

import (
	"fmt"

	"github.com/andy/reconnect/internal/domain"
	"github.com/andy/reconnect/internal/model"
)

// AddClient adds a new client.
type AddClient struct {
	Client domain.Client
}

func (c AddClient) Execute(m *model.Model) (*Result, error) {
	if err := m.AddClient(c.Client); err != nil {
		return nil, fmt.Errorf("failed to add client: %w", err)
	}
	return &Result{Feedback: fmt.Sprintf("New client added: %s", c.Client)}, nil
}

// EditClientDescriptor holds the client fields to change. Email and
// Address may be cleared.
type EditClientDescriptor struct {
	Name    Field[domain.ClientName]
	Phone   Field[domain.Phone]
	Email   Field[domain.Email]
	Address Field[domain.Address]
}

func (d EditClientDescriptor) anyEdited() bool {
	return d.Name.Edited() || d.Phone.Edited() || d.Email.Edited() || d.Address.Edited()
}

// EditClient edits the client shown at Index. Renaming a client does not
// touch properties, deals or events that refer to the old name.
type EditClient struct {
	Index      Index
	Descriptor EditClientDescriptor
}

func (c EditClient) Execute(m *model.Model) (*Result, error) {
	d := c.Descriptor
	if !d.anyEdited() {
		return nil, ErrNoFieldsEdited
	}
	target, err := resolve(m.FilteredClients(), c.Index, "client", ErrInvalidIndex)
	if err != nil {
		return nil, err
	}

	edited, err := domain.NewClient(
		d.Name.Apply(target.Name),
		d.Phone.Apply(target.Phone),
		d.Email.Apply(target.Email),
		d.Address.Apply(target.Address),
	)
	if err != nil {
		return nil, err
	}
	if edited == target {
		return nil, fmt.Errorf("client: %w", ErrNoChanges)
	}
	if err := m.SetClient(target, edited); err != nil {
		return nil, fmt.Errorf("failed to edit client: %w", err)
	}
	m.UpdateFilteredClientList(nil)
	return &Result{Feedback: fmt.Sprintf("Edited client: %s", edited)}, nil
}

// DeleteClient removes the client shown at Index.
type DeleteClient struct {
	Index Index
}

func (c DeleteClient) Execute(m *model.Model) (*Result, error) {
	target, err := resolve(m.FilteredClients(), c.Index, "client", ErrInvalidIndex)
	if err != nil {
		return nil, err
	}
	if err := m.DeleteClient(target); err != nil {
		return nil, fmt.Errorf("failed to delete client: %w", err)
	}
	return &Result{Feedback: fmt.Sprintf("Deleted client: %s", target)}, nil
}

type ListClients struct{}

func (ListClients) Execute(m *model.Model) (*Result, error) {
	m.UpdateFilteredClientList(nil)
	return &Result{Feedback: "Listed all clients"}, nil
}

// FindClients shows clients whose name contains any keyword as a whole word.
type FindClients struct {
	Keywords []string
}

func (c FindClients) Execute(m *model.Model) (*Result, error) {
	m.UpdateFilteredClientList(model.ClientNameMatches(c.Keywords))
	return &Result{Feedback: listed(len(m.FilteredClients()), "client", "clients")}, nil
}

func listed(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s listed!", one)
	}
	return fmt.Sprintf("%d %s listed!", n, many)
}
