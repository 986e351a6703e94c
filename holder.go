package erase

import (
	"reflect"

	"github.com/oliverbestmann/erase/internal/assert"
)

// holder is the capability set a Value requires of its payload: report the
// stored type and produce an independent copy. Exactly one holder is active
// per non-empty Value and it is exclusively owned by that Value.
type holder interface {
	typeInfo() *TypeInfo
	clone() holder
}

// cloner can be implemented by a stored type to customize how its value is
// copied when the owning Value is cloned or copy assigned. Types backed by
// shared memory, like slices, need this to keep clones independent.
type cloner[T any] interface {
	Clone() T
}

// typedHolder is the generic fast path, used whenever the stored type is
// known statically.
type typedHolder[T any] struct {
	value T
}

func (h *typedHolder[T]) typeInfo() *TypeInfo {
	return TypeFor[T]()
}

func (h *typedHolder[T]) clone() holder {
	if withClone, ok := any(h.value).(cloner[T]); ok {
		return &typedHolder[T]{value: withClone.Clone()}
	}

	return &typedHolder[T]{value: h.value}
}

// erasedHolder boxes a value whose type is only known dynamically. It is
// the reflect backed slow path behind OfAny.
type erasedHolder struct {
	info *TypeInfo

	// an addressable value of exactly info.Type, exclusively owned
	value reflect.Value
}

func newErasedHolder(value any) *erasedHolder {
	rv := reflect.ValueOf(value)

	// re-box the value into fresh storage this holder owns
	boxed := reflect.New(rv.Type()).Elem()
	boxed.Set(rv)

	return &erasedHolder{
		info:  typeInfoOf(rv.Type()),
		value: boxed,
	}
}

func (h *erasedHolder) typeInfo() *TypeInfo {
	return h.info
}

func (h *erasedHolder) clone() holder {
	boxed := reflect.New(h.info.Type).Elem()

	if method, ok := h.cloneMethod(); ok {
		boxed.Set(method.Call(nil)[0])
	} else {
		boxed.Set(h.value)
	}

	return &erasedHolder{info: h.info, value: boxed}
}

// cloneMethod looks up a Clone method with the shape of cloner[T] on the
// boxed value. Only the value method set is considered, matching what the
// interface assertion in typedHolder.clone sees.
func (h *erasedHolder) cloneMethod() (reflect.Value, bool) {
	method := h.value.MethodByName("Clone")
	if !method.IsValid() {
		return reflect.Value{}, false
	}

	ty := method.Type()
	if ty.NumIn() != 0 || ty.NumOut() != 1 || ty.Out(0) != h.info.Type {
		return reflect.Value{}, false
	}

	return method, true
}

// addr returns a pointer to the boxed value as a reflect.Value.
func (h *erasedHolder) addr() reflect.Value {
	assert.IsAddressable(h.value)
	assert.IsOfType(h.value, h.info.Type)

	return h.value.Addr()
}
