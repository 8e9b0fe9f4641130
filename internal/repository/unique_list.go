package repository

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrDuplicateEntity = errors.New("duplicate entity")
	ErrEntityNotFound  = errors.New("entity not found")
)

// UniqueList is an ordered list that never holds two elements with the
// same identity. Identity is decided by the identityOf function supplied
// per element type; removal and replacement look targets up by full
// equality instead.
type UniqueList[T comparable] struct {
	kind       string
	identityOf func(T) string
	items      []T
}

// NewUniqueList creates an empty list. kind names the element type in errors.
func NewUniqueList[T comparable](kind string, identityOf func(T) string) *UniqueList[T] {
	return &UniqueList[T]{kind: kind, identityOf: identityOf}
}

// Contains returns true if an element with the same identity as e is stored
func (l *UniqueList[T]) Contains(e T) bool {
	return l.indexOfIdentity(l.identityOf(e)) >= 0
}

// Add appends e. It fails if an element with the same identity exists.
func (l *UniqueList[T]) Add(e T) error {
	if l.Contains(e) {
		return l.duplicate()
	}
	l.items = append(l.items, e)
	return nil
}

// Replace swaps target for replacement at target's position.
// target must be stored exactly; replacement may keep target's identity
// but must not take the identity of any other element.
func (l *UniqueList[T]) Replace(target, replacement T) error {
	idx := l.IndexOf(target)
	if idx < 0 {
		return l.notFound()
	}

	key := l.identityOf(replacement)
	if key != l.identityOf(target) && l.indexOfIdentity(key) >= 0 {
		return l.duplicate()
	}

	l.items[idx] = replacement
	return nil
}

// Remove deletes the element equal to e
func (l *UniqueList[T]) Remove(e T) error {
	idx := l.IndexOf(e)
	if idx < 0 {
		return l.notFound()
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	return nil
}

// ReplaceAll replaces the contents with items. The list is left untouched
// if items contains two elements with the same identity.
func (l *UniqueList[T]) ReplaceAll(items []T) error {
	seen := make(map[string]struct{}, len(items))
	for _, e := range items {
		key := l.identityOf(e)
		if _, ok := seen[key]; ok {
			return l.duplicate()
		}
		seen[key] = struct{}{}
	}
	l.items = slices.Clone(items)
	return nil
}

// Items returns a copy of the current contents in insertion order.
func (l *UniqueList[T]) Items() []T {
	return slices.Clone(l.items)
}

// Len returns the number of stored elements
func (l *UniqueList[T]) Len() int {
	return len(l.items)
}

// IndexOf returns the position of the element equal to e, or -1.
func (l *UniqueList[T]) IndexOf(e T) int {
	return slices.Index(l.items, e)
}

func (l *UniqueList[T]) indexOfIdentity(key string) int {
	return slices.IndexFunc(l.items, func(x T) bool { return l.identityOf(x) == key })
}

func (l *UniqueList[T]) duplicate() error {
	return fmt.Errorf("%s: %w", l.kind, ErrDuplicateEntity)
}

func (l *UniqueList[T]) notFound() error {
	return fmt.Errorf("%s: %w", l.kind, ErrEntityNotFound)
}
