package assert

import (
	"fmt"
	"reflect"
)

func IsAddressable(value reflect.Value) {
	if !value.CanAddr() {
		panic(fmt.Sprintf("expected addressable value, got %s", value.Type()))
	}
}

func IsOfType(value reflect.Value, ty reflect.Type) {
	if value.Type() != ty {
		panic(fmt.Sprintf("expected value of type %s, got %s", ty, value.Type()))
	}
}
