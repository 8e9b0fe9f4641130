// Package command implements the operations a user can run against the
// model. Commands are plain values holding their inputs; Execute validates
// them against the current model state and applies the change.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/andy/reconnect/internal/model"
)

var (
	ErrInvalidIndex             = errors.New("index is out of range of the displayed list")
	ErrInvalidOwnerReference    = errors.New("invalid owner index")
	ErrInvalidClientReference   = errors.New("invalid client index")
	ErrInvalidPropertyReference = errors.New("invalid property index")
	ErrNoChanges                = errors.New("no changes made")
	ErrNoFieldsEdited           = errors.New("at least one field to edit must be provided")
)

// Command is a single user operation.
type Command interface {
	Execute(m *model.Model) (*Result, error)
}

// Result is what a successful command reports back.
type Result struct {
	Feedback string
	// Cascade lists the dependent updates attempted after a rename.
	Cascade []CascadeOutcome
}

// CascadeOutcome is the result of updating one record that referenced a
// renamed entity. Err is nil when the update succeeded.
type CascadeOutcome struct {
	Kind      string
	Reference string
	Err       error
}

// Failed returns the outcomes whose update did not go through.
func (r *Result) Failed() []CascadeOutcome {
	var out []CascadeOutcome
	for _, o := range r.Cascade {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

// Index is a 1-based position in a displayed (filtered) list.
type Index int

// ParseIndex parses a positive integer index.
func ParseIndex(s string) (Index, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("index must be a positive integer: %q", s)
	}
	return Index(n), nil
}

// resolve returns the element shown at idx, or notFound wrapped with kind.
func resolve[T any](shown []T, idx Index, kind string, notFound error) (T, error) {
	var zero T
	if idx <= 0 || int(idx) > len(shown) {
		return zero, fmt.Errorf("%s: %w", kind, notFound)
	}
	return shown[idx-1], nil
}
