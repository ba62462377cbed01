package engine

import "testing"

// ---------------------------------------------------------------------------
// Window and materialization tests
// ---------------------------------------------------------------------------

func TestNewStringCount(t *testing.T) {
	s := NewString("hello")
	if s.Count() != 5 {
		t.Errorf("Count = %d, want 5", s.Count())
	}
	if NewString("").Count() != 0 {
		t.Error("empty string should have Count 0")
	}
}

func TestStringAt(t *testing.T) {
	s := NewString("abc")
	if s.At(0) != 'a' || s.At(2) != 'c' {
		t.Error("At returned wrong bytes")
	}

	defer func() {
		if recover() == nil {
			t.Error("At out of range should panic")
		}
	}()
	s.At(3)
}

func TestSubstringSharesBuffer(t *testing.T) {
	s := NewString("hello world")
	sub := s.Substring(6, 5)

	if got := sub.GoString(); got != "world" {
		t.Errorf("Substring = %q, want %q", got, "world")
	}
	if sub.IsIndividual() {
		t.Error("substring window should share the parent buffer")
	}

	ind := sub.ToIndividual()
	if !ind.IsIndividual() {
		t.Error("ToIndividual should produce an individual value")
	}
	if !ind.Equals(sub) {
		t.Error("materialization must preserve content")
	}
}

func TestSubstringOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Substring out of range should panic")
		}
	}()
	NewString("abc").Substring(1, 3)
}

func TestSubstringOfSubstring(t *testing.T) {
	s := NewString("0123456789")
	inner := s.Substring(2, 6).Substring(1, 3)
	if got := inner.GoString(); got != "345" {
		t.Errorf("nested substring = %q, want %q", got, "345")
	}
}

// ---------------------------------------------------------------------------
// Equality and comparison
// ---------------------------------------------------------------------------

func TestStringEqualsIsFullContent(t *testing.T) {
	a := NewString("same")
	b := NewString("same")
	if !a.Equals(b) {
		t.Error("independent buffers with equal content should be equal")
	}

	// A window equal in content to a fresh value is equal too.
	w := NewString("xxsamexx").Substring(2, 4)
	if !w.Equals(a) {
		t.Error("window should compare equal by content")
	}

	if a.Equals(NewString("other")) {
		t.Error("different content should not be equal")
	}
	if a.Equals(NewString("sam")) {
		t.Error("different length should not be equal")
	}
}

// ---------------------------------------------------------------------------
// Search tests
// ---------------------------------------------------------------------------

func TestIndexOf(t *testing.T) {
	cases := []struct {
		text, pattern string
		want          int
	}{
		{"hello world", "world", 6},
		{"hello world", "hello", 0},
		{"hello world", "o w", 4},
		{"hello world", "xyz", -1},
		{"hello world", "", 0},
		{"aaa", "aaaa", -1},
		{"abcabcabd", "abd", 6},
	}
	for _, c := range cases {
		if got := NewString(c.text).IndexOf(NewString(c.pattern)); got != c.want {
			t.Errorf("IndexOf(%q, %q) = %d, want %d", c.text, c.pattern, got, c.want)
		}
	}
}

func TestIndexOfWithinWindow(t *testing.T) {
	// The search must not see bytes outside the window.
	s := NewString("abcdefg").Substring(2, 3) // "cde"
	if got := s.IndexOf(NewString("de")); got != 1 {
		t.Errorf("IndexOf in window = %d, want 1", got)
	}
	if got := s.IndexOf(NewString("fg")); got != -1 {
		t.Errorf("IndexOf outside window = %d, want -1", got)
	}
}

func TestContainsPrefixSuffix(t *testing.T) {
	s := NewString("engine.toml")
	if !s.Contains(NewString("ine")) {
		t.Error("Contains should find inner pattern")
	}
	if !s.StartsWith(NewString("engine")) {
		t.Error("StartsWith failed")
	}
	if !s.EndsWith(NewString(".toml")) {
		t.Error("EndsWith failed")
	}
	if s.StartsWith(NewString("toml")) {
		t.Error("StartsWith false positive")
	}
	if s.EndsWith(NewString("engine")) {
		t.Error("EndsWith false positive")
	}
	if s.StartsWith(NewString("engine.toml.bak")) {
		t.Error("longer pattern cannot be a prefix")
	}
}

// ---------------------------------------------------------------------------
// Concat and format
// ---------------------------------------------------------------------------

func TestConcat(t *testing.T) {
	got := NewString("foo").Concat(NewString("bar"))
	if got.GoString() != "foobar" {
		t.Errorf("Concat = %q, want %q", got.GoString(), "foobar")
	}
	if !NewString("").Concat(NewString("x")).Equals(NewString("x")) {
		t.Error("empty left operand should return the right operand")
	}
}

func TestFormatString(t *testing.T) {
	got := FormatString(NewString("This is a {0}, except {1}"), "cat", 42)
	want := "This is a cat, except 42"
	if got.GoString() != want {
		t.Errorf("FormatString = %q, want %q", got.GoString(), want)
	}

	// Repeated and out-of-order placeholders.
	got = FormatString(NewString("{1}{0}{1}"), "a", "b")
	if got.GoString() != "bab" {
		t.Errorf("FormatString = %q, want %q", got.GoString(), "bab")
	}

	// Missing argument leaves the placeholder as-is.
	got = FormatString(NewString("{0} {3}"), "x")
	if got.GoString() != "x {3}" {
		t.Errorf("FormatString = %q, want %q", got.GoString(), "x {3}")
	}

	// String and Variant arguments render their content.
	got = FormatString(NewString("{0}={1}"), NewString("n"), NewVariantInt(7))
	if got.GoString() != "n=7" {
		t.Errorf("FormatString = %q, want %q", got.GoString(), "n=7")
	}
}
