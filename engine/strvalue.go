package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// stringData is the shared immutable byte buffer behind String values.
// Once constructed it is never written again; any number of String windows
// may reference it concurrently.
type stringData struct {
	bytes []byte
}

var emptyStringData = &stringData{}

// String is an immutable text value: a shared buffer plus a
// (start, length) window into it.
//
// Copies share the underlying buffer and their own window
// (copy-on-reference, not copy-on-write); Substring shares the buffer too.
// ToIndividual materializes a window into a freshly owned buffer.
// Equality is always full-content comparison.
type String struct {
	data   *stringData
	start  int
	length int
}

// NewString creates a String owning a fresh copy of s.
func NewString(s string) String {
	if s == "" {
		return String{data: emptyStringData}
	}
	return String{data: &stringData{bytes: []byte(s)}, length: len(s)}
}

// Count returns the number of bytes in the window.
func (s String) Count() int {
	return s.length
}

// At returns the byte at index i within the window.
// Panics if i is out of range.
func (s String) At(i int) byte {
	if i < 0 || i >= s.length {
		panic("String.At: index out of range")
	}
	return s.data.bytes[s.start+i]
}

// window returns the visible bytes. The slice aliases the shared buffer
// and must not be mutated.
func (s String) window() []byte {
	if s.data == nil {
		return nil
	}
	return s.data.bytes[s.start : s.start+s.length]
}

// IsIndividual reports whether the window covers its entire buffer,
// meaning the value does not share trailing or leading bytes with other
// windows into the same data.
func (s String) IsIndividual() bool {
	if s.data == nil {
		return true
	}
	return s.start == 0 && s.length == len(s.data.bytes)
}

// ToIndividual materializes the window into a freshly owned buffer.
// Already-individual values are returned unchanged.
func (s String) ToIndividual() String {
	if s.IsIndividual() {
		return s
	}
	buf := make([]byte, s.length)
	copy(buf, s.window())
	return String{data: &stringData{bytes: buf}, length: len(buf)}
}

// Substring returns a window of count bytes starting at startIndex.
// The result shares the underlying buffer. Panics if the range does not
// fit inside the current window.
func (s String) Substring(startIndex, count int) String {
	if startIndex < 0 || count < 0 || startIndex+count > s.length {
		panic("String.Substring: range out of range")
	}
	if count == 0 {
		return String{data: emptyStringData}
	}
	return String{data: s.data, start: s.start + startIndex, length: count}
}

// IndexOf finds the first appearance of pattern in s using the Sunday
// single-pattern search. Returns -1 if not found. The empty pattern
// matches at position 0.
func (s String) IndexOf(pattern String) int {
	return sundaySearch(s.window(), pattern.window())
}

// Contains reports whether pattern appears anywhere in s.
func (s String) Contains(pattern String) bool {
	return s.IndexOf(pattern) >= 0
}

// StartsWith reports whether s begins with pattern.
func (s String) StartsWith(pattern String) bool {
	if pattern.length > s.length {
		return false
	}
	return bytesEqual(s.window()[:pattern.length], pattern.window())
}

// EndsWith reports whether s ends with pattern.
func (s String) EndsWith(pattern String) bool {
	if pattern.length > s.length {
		return false
	}
	return bytesEqual(s.window()[s.length-pattern.length:], pattern.window())
}

// Equals is full-content comparison, independent of buffer sharing.
func (s String) Equals(other String) bool {
	return bytesEqual(s.window(), other.window())
}

// Less is lexicographic byte comparison.
func (s String) Less(other String) bool {
	return string(s.window()) < string(other.window())
}

// Concat returns a new String holding s followed by other.
func (s String) Concat(other String) String {
	if s.length == 0 {
		return other
	}
	if other.length == 0 {
		return s
	}
	buf := make([]byte, 0, s.length+other.length)
	buf = append(buf, s.window()...)
	buf = append(buf, other.window()...)
	return String{data: &stringData{bytes: buf}, length: len(buf)}
}

// GoString returns the window content as a Go string.
func (s String) GoString() string {
	return string(s.window())
}

// String implements fmt.Stringer.
func (s String) String() string {
	return s.GoString()
}

// ---------------------------------------------------------------------------
// Positional formatting
// ---------------------------------------------------------------------------

// FormatString substitutes positional placeholders like
// "This is a {0}, except {1}". Placeholders may repeat and appear in any
// order. An index without a matching argument is left as-is.
func FormatString(format String, args ...interface{}) String {
	src := format.GoString()
	var b strings.Builder
	for i := 0; i < len(src); {
		c := src[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(src[i:], '}')
		if end < 0 {
			b.WriteString(src[i:])
			break
		}
		index, err := strconv.Atoi(src[i+1 : i+end])
		if err != nil || index < 0 || index >= len(args) {
			b.WriteString(src[i : i+end+1])
		} else {
			b.WriteString(formatArg(args[index]))
		}
		i += end + 1
	}
	return NewString(b.String())
}

func formatArg(arg interface{}) string {
	switch a := arg.(type) {
	case String:
		return a.GoString()
	case Variant:
		return a.String()
	default:
		return fmt.Sprint(arg)
	}
}

// ---------------------------------------------------------------------------
// Sunday search
// ---------------------------------------------------------------------------

// sundaySearch finds pattern in text, returning the match position or -1.
// The shift table maps the byte just past the current alignment to how far
// the pattern can jump.
func sundaySearch(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return 0
	}
	if m > n {
		return -1
	}

	var shift [256]int
	for i := range shift {
		shift[i] = m + 1
	}
	for i, c := range pattern {
		shift[c] = m - i
	}

	for pos := 0; pos+m <= n; {
		if bytesEqual(text[pos:pos+m], pattern) {
			return pos
		}
		next := pos + m
		if next >= n {
			return -1
		}
		pos += shift[text[next]]
	}
	return -1
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
