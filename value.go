// Package erase provides a type-erased value container: a Value stores one
// value of any type behind a uniform handle and recovers it later through
// exact runtime type identity.
package erase

// Value holds at most one value of an arbitrary, dynamically selected type,
// or nothing at all. The zero Value is empty and ready to use.
//
// A Value has single threaded value semantics: it exclusively owns its
// payload and performs no internal locking. Callers sharing one Value
// across goroutines must synchronize externally or hand each goroutine its
// own clone.
type Value struct {
	content holder
}

// Of stores a copy of value in a fresh Value. The stored type is the static
// instantiation type T. Passing a Value or *Value clones it instead of
// nesting a container inside a container.
func Of[T any](value T) Value {
	switch src := any(value).(type) {
	case Value:
		return src.Clone()

	case *Value:
		if src == nil {
			return Value{}
		}

		return src.Clone()
	}

	return Value{content: &typedHolder[T]{value: value}}
}

// OfAny stores a copy of value keyed by its dynamic type. This is the entry
// point to use when only an any is at hand; prefer Of when the type is
// statically known. A nil any yields an empty Value.
func OfAny(value any) Value {
	switch src := value.(type) {
	case nil:
		return Value{}

	case Value:
		return src.Clone()

	case *Value:
		if src == nil {
			return Value{}
		}

		return src.Clone()
	}

	return Value{content: newErasedHolder(value)}
}

// Store replaces the payload of v with a copy of value, using the same type
// selection rules as Of. The replacement is built first and swapped in
// afterwards, releasing the previous payload.
func Store[T any](v *Value, value T) {
	tmp := Of(value)
	v.Swap(&tmp)
}

// HasValue reports whether a value is currently held. A non-empty Value
// always reports a type other than VoidType, there is no held-but-empty
// state.
func (v *Value) HasValue() bool {
	return v.content != nil
}

// Type returns the runtime type of the held value, or VoidType if the
// Value is empty.
func (v *Value) Type() *TypeInfo {
	if v.content == nil {
		return VoidType
	}

	return v.content.typeInfo()
}

// Clone returns an independent deep copy of v. Cloning an empty Value
// yields an empty Value. The clone shares no storage with v: mutating one
// never shows through the other. A panic from a stored type's Clone method
// is propagated unmodified.
func (v *Value) Clone() Value {
	if v.content == nil {
		return Value{}
	}

	return Value{content: v.content.clone()}
}

// Take transfers the payload into the returned Value and leaves v empty.
// The payload itself is neither copied nor reconstructed. Never fails.
func (v *Value) Take() Value {
	taken := Value{content: v.content}
	v.content = nil

	return taken
}

// CopyFrom replaces the payload of v with an independent copy of other's
// payload. The copy is built before anything in v changes, so v keeps its
// original payload if cloning panics.
func (v *Value) CopyFrom(other *Value) {
	tmp := other.Clone()
	v.Swap(&tmp)
}

// MoveFrom transfers other's payload into v, releasing whatever v held.
// other is empty afterwards. Never fails.
func (v *Value) MoveFrom(other *Value) {
	if v == other {
		return
	}

	v.content = other.content
	other.content = nil
}

// Reset releases the held value and leaves v empty. Idempotent.
func (v *Value) Reset() {
	v.content = nil
}

// Swap exchanges the payloads of v and other. Only the holders move, the
// stored values themselves are never copied. Never fails.
func (v *Value) Swap(other *Value) {
	v.content, other.content = other.content, v.content
}

// Swap exchanges the payloads of a and b.
func Swap(a, b *Value) {
	a.Swap(b)
}
