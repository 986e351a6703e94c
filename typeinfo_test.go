package erase

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type celsius float64

func TestTypeForInterning(t *testing.T) {
	require.Same(t, TypeFor[int](), TypeFor[int]())
	require.Same(t, TypeFor[[]string](), TypeFor[[]string]())

	require.NotSame(t, TypeFor[int](), TypeFor[int32]())
	require.NotSame(t, TypeFor[int](), TypeFor[uint]())

	// a named type is distinct from its underlying type
	require.NotSame(t, TypeFor[float64](), TypeFor[celsius]())
}

func TestTypeInfoFields(t *testing.T) {
	info := TypeFor[celsius]()

	require.Equal(t, "erase.celsius", info.Name)
	require.Equal(t, "erase.celsius", info.String())
	require.Equal(t, reflect.TypeFor[celsius](), info.Type)
	require.Positive(t, info.Id)
}

func TestTypeIdsAreUnique(t *testing.T) {
	infos := []*TypeInfo{
		TypeFor[int](),
		TypeFor[int32](),
		TypeFor[string](),
		TypeFor[celsius](),
		TypeFor[[]byte](),
	}

	seen := map[int64]bool{}
	for _, info := range infos {
		require.False(t, seen[info.Id], "duplicate id for %s", info)
		seen[info.Id] = true
	}
}

func TestVoidType(t *testing.T) {
	require.Equal(t, "void", VoidType.Name)
	require.Zero(t, VoidType.Id)

	// VoidType is never handed out for a real type
	require.NotSame(t, VoidType, TypeFor[struct{}]())
}

var BlackboxTypeInfo *TypeInfo

func BenchmarkTypeFor(b *testing.B) {
	for b.Loop() {
		BlackboxTypeInfo = TypeFor[celsius]()
	}
}
