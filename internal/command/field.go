package command

type fieldState uint8

const (
	fieldKeep fieldState = iota
	fieldClear
	fieldSet
)

// Field is one entry of an edit descriptor. The zero value keeps the
// current value; Clear empties an optional field; Set replaces it.
type Field[T any] struct {
	state fieldState
	value T
}

func Keep[T any]() Field[T] { return Field[T]{} }

func Clear[T any]() Field[T] { return Field[T]{state: fieldClear} }

func Set[T any](v T) Field[T] { return Field[T]{state: fieldSet, value: v} }

// Edited reports whether the field was touched at all.
func (f Field[T]) Edited() bool { return f.state != fieldKeep }

func (f Field[T]) IsClear() bool { return f.state == fieldClear }

// Value returns the new value and whether one was set.
func (f Field[T]) Value() (T, bool) { return f.value, f.state == fieldSet }

// Apply overlays the field on current.
func (f Field[T]) Apply(current T) T {
	switch f.state {
	case fieldClear:
		var zero T
		return zero
	case fieldSet:
		return f.value
	default:
		return current
	}
}
