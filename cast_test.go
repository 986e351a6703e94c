package erase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCastCopiesValue(t *testing.T) {
	v := Of(42)

	got, err := Cast[int](&v)
	require.NoError(t, err)
	require.Equal(t, 42, got)

	// the cast did not disturb the container
	require.True(t, v.HasValue())
	require.Equal(t, 42, *As[int](&v))
}

func TestCastMismatch(t *testing.T) {
	v := Of(42)

	_, err := Cast[float64](&v)
	require.Error(t, err)

	var bad *BadCastError
	require.ErrorAs(t, err, &bad)
	require.Same(t, TypeFor[float64](), bad.Want)
	require.Same(t, TypeFor[int](), bad.Have)
	require.Equal(t, "cannot cast value of type int to float64", err.Error())

	// a failed cast leaves the container untouched
	require.Equal(t, 42, MustCast[int](&v))
}

func TestCastNilValue(t *testing.T) {
	require.Nil(t, As[int](nil))

	_, err := Cast[int](nil)

	var bad *BadCastError
	require.ErrorAs(t, err, &bad)
	require.Same(t, VoidType, bad.Have)
}

func TestMustCastPanicsOnMismatch(t *testing.T) {
	v := Of("not an int")

	defer func() {
		bad, ok := recover().(*BadCastError)
		require.True(t, ok)
		require.Same(t, TypeFor[int](), bad.Want)
		require.Same(t, TypeFor[string](), bad.Have)
	}()

	MustCast[int](&v)
}

func TestCastOutMovesValue(t *testing.T) {
	v := Of("Hello, any!")

	got, err := CastOut[string](&v)
	require.NoError(t, err)
	require.Equal(t, "Hello, any!", got)

	// the container stays engaged, holding the zero value
	require.True(t, v.HasValue())
	require.Same(t, TypeFor[string](), v.Type())
	require.Equal(t, "", MustCast[string](&v))
}

func TestCastOutMismatch(t *testing.T) {
	v := Of(42)

	_, err := CastOut[string](&v)
	require.Error(t, err)

	// a failed move leaves the value in place
	require.Equal(t, 42, MustCast[int](&v))
}

func TestCastOnErasedStorage(t *testing.T) {
	v := OfAny(any("Hello, any!"))

	got, err := Cast[string](&v)
	require.NoError(t, err)
	require.Equal(t, "Hello, any!", got)

	_, err = Cast[int](&v)
	require.Error(t, err)

	moved, err := CastOut[string](&v)
	require.NoError(t, err)
	require.Equal(t, "Hello, any!", moved)
	require.True(t, v.HasValue())
	require.Equal(t, "", MustCast[string](&v))
}

func TestAsYieldsMutableStorage(t *testing.T) {
	v := Of(1)

	*As[int](&v) += 41
	require.Equal(t, 42, MustCast[int](&v))
}

var Blackbox int

func BenchmarkAs(b *testing.B) {
	v := Of(42)

	for b.Loop() {
		Blackbox += *As[int](&v)
	}
}

func BenchmarkAsErased(b *testing.B) {
	v := OfAny(any(42))

	for b.Loop() {
		Blackbox += *As[int](&v)
	}
}
