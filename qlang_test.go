package qlang

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestLocate(t *testing.T) {
	src := NewSource("test", "ab\ncd\n\nx")
	cases := []struct{ offset, line, col int }{
		{0, 1, 1}, {1, 1, 2}, {3, 2, 1}, {4, 2, 2}, {6, 3, 1}, {7, 4, 1}, {-3, 1, 1},
	}
	for _, c := range cases {
		loc := src.Locate(c.offset)
		if loc.Line != c.line || loc.Column != c.col {
			t.Errorf("offset %d: expected %d:%d, got %d:%d", c.offset, c.line, c.col, loc.Line, loc.Column)
		}
	}
	if s := src.Locate(4).String(); s != "test:2:2" {
		t.Errorf("expected locator to print as test:2:2, is %s", s)
	}
}

func TestHint(t *testing.T) {
	src := NewSource("script.q", "x := 1\ny := x + \"a\"")
	h := src.Locate(12).Hint()
	t.Logf("\n%s", h)
	lines := strings.Split(h, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected hint of 3 lines, got %d", len(lines))
	}
	if lines[0] != "in <script.q>:2:6" {
		t.Errorf("unexpected hint header %q", lines[0])
	}
	if lines[1] != `2] y := x + "a"` {
		t.Errorf("unexpected hint source line %q", lines[1])
	}
	if strings.Index(lines[2], "^") != len("2] ")+5 {
		t.Errorf("caret misplaced: %q", lines[2])
	}
	var null Locator
	if null.Hint() != "" {
		t.Errorf("expected null locator to have no hint")
	}
}

func TestErrorKinds(t *testing.T) {
	src := NewSource("t", "1 + x")
	err := Errorf(TypeError, src.Locate(4), "no such thing: %s", "x")
	if err.Error() != "type error at t:1:5: no such thing: x" {
		t.Errorf("unexpected error message %q", err.Error())
	}
	wrapped := fmt.Errorf("while running: %w", err)
	if !IsKind(wrapped, TypeError) {
		t.Errorf("expected wrapped error to be a type error")
	}
	if IsKind(wrapped, NameError) {
		t.Errorf("did not expect wrapped error to be a name error")
	}
	if IsKind(errors.New("plain"), TypeError) {
		t.Errorf("did not expect plain error to be classified")
	}
	if !strings.HasSuffix(err.Hint(), "^") {
		t.Errorf("expected hint to end with caret, got %q", err.Hint())
	}
}
