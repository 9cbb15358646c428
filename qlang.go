package qlang

import (
	"fmt"
	"sort"
	"strings"
)

// --- Source texts ----------------------------------------------------------

// Source is a named piece of program text. Locators point into a Source,
// which makes it possible to print a hint for a diagnostic message.
type Source struct {
	Name       string
	Content    string
	lineStarts []int // byte offsets of line starts, computed on demand
}

// NewSource creates a source text with a name, e.g. a file name or "<repl>".
func NewSource(name, content string) *Source {
	return &Source{Name: name, Content: content}
}

// Line returns line number n (1-based) of the source text, without the
// line terminator. Returns an empty string for lines out of range.
func (src *Source) Line(n int) string {
	if src == nil || n < 1 {
		return ""
	}
	lines := strings.Split(src.Content, "\n")
	if n > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[n-1], "\r")
}

// Hint formats a caret-annotated snippet for a position in the source:
//
//    in <script.q>:2:5
//    2] x := 1 + "a"
//           ^
//
func (src *Source) Hint(line, col int) string {
	name := "?"
	if src != nil {
		name = src.Name
	}
	prefix := fmt.Sprintf("%d] ", line)
	var b strings.Builder
	fmt.Fprintf(&b, "in <%s>:%d:%d\n", name, line, col)
	b.WriteString(prefix)
	b.WriteString(src.Line(line))
	b.WriteString("\n")
	if col < 1 {
		col = 1
	}
	b.WriteString(strings.Repeat(" ", len(prefix)+col-1))
	b.WriteString("^")
	return b.String()
}

// Locate returns a locator for a byte offset into the source text.
func (src *Source) Locate(offset int) Locator {
	if src.lineStarts == nil {
		src.lineStarts = []int{0}
		for i := 0; i < len(src.Content); i++ {
			if src.Content[i] == '\n' {
				src.lineStarts = append(src.lineStarts, i+1)
			}
		}
	}
	if offset < 0 {
		offset = 0
	}
	l := sort.Search(len(src.lineStarts), func(i int) bool {
		return src.lineStarts[i] > offset
	})
	return Locator{
		Source: src,
		Line:   l,
		Column: offset - src.lineStarts[l-1] + 1,
		Offset: offset,
	}
}

// --- Locators --------------------------------------------------------------

// Locator is a source position. It is captured for every token and carried
// along by every AST node and runtime error, solely for diagnostics.
type Locator struct {
	Source *Source // source text the position refers to
	Line   int     // 1-based line
	Column int     // 1-based column
	Offset int     // byte offset into the source text
}

// IsNull is a predicate: has this locator been set?
func (loc Locator) IsNull() bool {
	return loc.Line == 0
}

// Hint returns a caret-annotated snippet of the source at this position.
func (loc Locator) Hint() string {
	if loc.IsNull() {
		return ""
	}
	return loc.Source.Hint(loc.Line, loc.Column)
}

func (loc Locator) String() string {
	name := "?"
	if loc.Source != nil {
		name = loc.Source.Name
	}
	return fmt.Sprintf("%s:%d:%d", name, loc.Line, loc.Column)
}
