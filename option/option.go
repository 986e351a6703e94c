// Package option provides a nullable value wrapper: an Option either holds
// one value of type T or holds nothing.
package option

import "fmt"

// Option holds either a value of type T or nothing. The zero Option is
// None.
type Option[T any] struct {
	value T
	isSet bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, isSet: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for a nil pointer and Some of the pointed-to value
// otherwise.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}

	return Some(*ptr)
}

// IsSome reports whether a value is held.
func (o Option[T]) IsSome() bool {
	return o.isSet
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.isSet
}

// Get returns the held value and whether one is held.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// MustGet returns the held value and panics if there is none.
func (o Option[T]) MustGet() T {
	if !o.isSet {
		panic("option: no value held")
	}

	return o.value
}

// OrValue returns the held value, or fallback if the Option is empty.
func (o Option[T]) OrValue(fallback T) T {
	if o.isSet {
		return o.value
	}

	return fallback
}

// OrDefault returns the held value, or the zero value of T.
func (o Option[T]) OrDefault() T {
	var tZero T
	return o.OrValue(tZero)
}

// OrElse returns the held value, or the result of calling fallback. The
// fallback is only invoked when the Option is empty.
func (o Option[T]) OrElse(fallback func() T) T {
	if o.isSet {
		return o.value
	}

	return fallback()
}

// Ptr returns a pointer to the held value, or nil if none is held. The
// pointer stays valid until the Option is reset or overwritten.
func (o *Option[T]) Ptr() *T {
	if !o.isSet {
		return nil
	}

	return &o.value
}

// Set replaces the held value.
func (o *Option[T]) Set(value T) {
	o.value = value
	o.isSet = true
}

// Insert replaces the held value and returns a pointer to the held slot.
func (o *Option[T]) Insert(value T) *T {
	o.Set(value)
	return &o.value
}

// Reset drops the held value, leaving the Option empty. Idempotent.
func (o *Option[T]) Reset() {
	var tZero T
	o.value = tZero
	o.isSet = false
}

func (o Option[T]) String() string {
	if !o.isSet {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// Filter returns o unchanged if it holds a value accepted by pred, and
// None otherwise.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.isSet && pred(o.value) {
		return o
	}

	return None[T]()
}

// Equal reports whether two Options hold the same state and value.
func Equal[T comparable](a, b Option[T]) bool {
	if a.isSet != b.isSet {
		return false
	}

	return !a.isSet || a.value == b.value
}

// Map applies fn to the held value, producing an Option of the result.
// Mapping None yields None without invoking fn.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if value, ok := o.Get(); ok {
		return Some(fn(value))
	}

	return None[U]()
}

// AndThen chains a computation that itself may produce no value.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if value, ok := o.Get(); ok {
		return fn(value)
	}

	return None[U]()
}
