package command

import (
	"fmt"

	"github.com/andy/reconnect/internal/model"
	"github.com/andy/reconnect/internal/repository"
)

// ClearAll replaces the address book with an empty one.
type ClearAll struct{}

func (ClearAll) Execute(m *model.Model) (*Result, error) {
	if err := m.ResetAddressBook(repository.New()); err != nil {
		return nil, fmt.Errorf("failed to clear address book: %w", err)
	}
	return &Result{Feedback: "Address book has been cleared!"}, nil
}
