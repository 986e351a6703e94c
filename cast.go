package erase

// As returns a pointer to the value held by v if v currently holds a value
// of exactly type T, and nil otherwise. The identity check is exact, never
// a conversion: a Value holding an int yields nil when asked for a float64.
// As never fails, use it to probe a Value without committing to a type.
func As[T any](v *Value) *T {
	if v == nil || v.content == nil {
		return nil
	}

	if v.content.typeInfo() != TypeFor[T]() {
		return nil
	}

	switch h := v.content.(type) {
	case *typedHolder[T]:
		return &h.value

	case *erasedHolder:
		return h.addr().Interface().(*T)
	}

	return nil
}

// Cast returns a copy of the value held by v, or a *BadCastError if v is
// empty or holds a value of a type other than T. A failed cast leaves v
// untouched.
func Cast[T any](v *Value) (T, error) {
	if ptr := As[T](v); ptr != nil {
		return *ptr, nil
	}

	var tZero T
	return tZero, &BadCastError{Want: TypeFor[T](), Have: typeOrVoid(v)}
}

// MustCast is like Cast but panics with the *BadCastError on mismatch. It
// is the right call when holding anything but a T is a bug.
func MustCast[T any](v *Value) T {
	value, err := Cast[T](v)
	if err != nil {
		panic(err)
	}

	return value
}

// CastOut moves the held value out of v. On success v still holds a value
// of type T, reset to T's zero value; the cast does not empty the
// container. Use Take to move the payload from Value to Value instead.
func CastOut[T any](v *Value) (T, error) {
	ptr := As[T](v)
	if ptr == nil {
		var tZero T
		return tZero, &BadCastError{Want: TypeFor[T](), Have: typeOrVoid(v)}
	}

	var tZero T
	value := *ptr
	*ptr = tZero

	return value, nil
}

func typeOrVoid(v *Value) *TypeInfo {
	if v == nil {
		return VoidType
	}

	return v.Type()
}
