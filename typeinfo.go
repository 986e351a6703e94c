package erase

import (
	"reflect"
	"sync"
	"unsafe"
)

// TypeInfo identifies the runtime type of a stored value. Instances are
// interned process-wide: two values have the same stored type if, and only
// if, their TypeInfo pointers are equal. Comparison is therefore a single
// pointer comparison and never a name lookup, so distinct types that happen
// to share a name never collide.
type TypeInfo struct {
	Id   int64
	Name string
	Type reflect.Type
}

func (t *TypeInfo) String() string {
	return t.Name
}

// VoidType is the TypeInfo reported by a Value that holds nothing.
var VoidType = &TypeInfo{Name: "void"}

var typeInfos = struct {
	sync.Mutex
	byAbiPointer map[uintptr]*TypeInfo
}{
	byAbiPointer: map[uintptr]*TypeInfo{},
}

func abiTypePointerTo(t reflect.Type) uintptr {
	type eface struct {
		typ, val unsafe.Pointer
	}

	return uintptr((*eface)(unsafe.Pointer(&t)).val)
}

// TypeFor returns the interned TypeInfo for the type T.
func TypeFor[T any]() *TypeInfo {
	return typeInfoOf(reflect.TypeFor[T]())
}

func typeInfoOf(ty reflect.Type) *TypeInfo {
	ptrToType := abiTypePointerTo(ty)

	typeInfos.Lock()
	defer typeInfos.Unlock()

	info, ok := typeInfos.byAbiPointer[ptrToType]
	if !ok {
		info = &TypeInfo{
			Id:   int64(len(typeInfos.byAbiPointer) + 1),
			Name: ty.String(),
			Type: ty,
		}

		typeInfos.byAbiPointer[ptrToType] = info
	}

	return info
}
