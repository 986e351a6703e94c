// Package strview provides a non-owning view over a string with positional
// substring, search and comparison operations.
package strview

import (
	"fmt"
	"strings"
)

// Npos is returned by the search methods when there is no match, and can be
// passed to Substr and RFind to mean "until the end".
const Npos = -1

// View is an immutable view over a string. The zero View is the empty view.
// Narrowing operations return new views into the same underlying bytes and
// never copy them.
type View struct {
	s string
}

// Of returns a view over the whole of s.
func Of(s string) View {
	return View{s: s}
}

func (v View) Len() int {
	return len(v.s)
}

func (v View) IsEmpty() bool {
	return len(v.s) == 0
}

func (v View) String() string {
	return v.s
}

// At returns the byte at pos. It panics if pos is out of range.
func (v View) At(pos int) byte {
	if pos < 0 || pos >= len(v.s) {
		panic(fmt.Sprintf("strview: position %d out of range for view of length %d", pos, len(v.s)))
	}

	return v.s[pos]
}

// Front returns the first byte. Panics on an empty view.
func (v View) Front() byte {
	return v.At(0)
}

// Back returns the last byte. Panics on an empty view.
func (v View) Back() byte {
	return v.At(len(v.s) - 1)
}

// RemovePrefix returns a view with the first n bytes dropped. n is clamped
// to the view's length.
func (v View) RemovePrefix(n int) View {
	if n < 0 {
		n = 0
	}
	if n > len(v.s) {
		n = len(v.s)
	}

	return View{s: v.s[n:]}
}

// RemoveSuffix returns a view with the last n bytes dropped. n is clamped
// to the view's length.
func (v View) RemoveSuffix(n int) View {
	if n < 0 {
		n = 0
	}
	if n > len(v.s) {
		n = len(v.s)
	}

	return View{s: v.s[:len(v.s)-n]}
}

// Substr returns the subview starting at pos spanning count bytes. count is
// clamped to the remaining length, and Npos means "until the end". An error
// is returned if pos lies beyond the view.
func (v View) Substr(pos, count int) (View, error) {
	if pos < 0 || pos > len(v.s) {
		return View{}, fmt.Errorf("strview: substr position %d out of range for view of length %d", pos, len(v.s))
	}

	if count == Npos || count > len(v.s)-pos {
		count = len(v.s) - pos
	}
	if count < 0 {
		count = 0
	}

	return View{s: v.s[pos : pos+count]}, nil
}

// Compare orders two views byte-wise: the common prefix decides first, the
// shorter view orders before the longer one otherwise. Returns a value
// below, equal to, or above zero.
func (v View) Compare(other View) int {
	return strings.Compare(v.s, other.s)
}

func (v View) Equal(other View) bool {
	return v.s == other.s
}

// Find returns the lowest index at or after pos where sub begins, or Npos.
// An empty sub is found at pos itself as long as pos is within the view.
func (v View) Find(sub string, pos int) int {
	if pos < 0 {
		pos = 0
	}

	if len(sub) == 0 {
		if pos <= len(v.s) {
			return pos
		}

		return Npos
	}

	if pos > len(v.s)-len(sub) {
		return Npos
	}

	idx := strings.Index(v.s[pos:], sub)
	if idx < 0 {
		return Npos
	}

	return pos + idx
}

// FindByte returns the lowest index at or after pos holding c, or Npos.
func (v View) FindByte(c byte, pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos >= len(v.s) {
		return Npos
	}

	idx := strings.IndexByte(v.s[pos:], c)
	if idx < 0 {
		return Npos
	}

	return pos + idx
}

// RFind returns the highest index at or before pos where sub begins, or
// Npos. Pass Npos to search from the end.
func (v View) RFind(sub string, pos int) int {
	if len(sub) > len(v.s) {
		return Npos
	}

	last := len(v.s) - len(sub)
	if pos != Npos && pos < last {
		last = pos
	}
	if last < 0 {
		return Npos
	}

	return strings.LastIndex(v.s[:last+len(sub)], sub)
}

// RFindByte returns the highest index at or before pos holding c, or Npos.
// Pass Npos to search from the end.
func (v View) RFindByte(c byte, pos int) int {
	last := len(v.s) - 1
	if pos != Npos && pos < last {
		last = pos
	}
	if last < 0 {
		return Npos
	}

	return strings.LastIndexByte(v.s[:last+1], c)
}

func (v View) StartsWith(prefix string) bool {
	return strings.HasPrefix(v.s, prefix)
}

func (v View) EndsWith(suffix string) bool {
	return strings.HasSuffix(v.s, suffix)
}
