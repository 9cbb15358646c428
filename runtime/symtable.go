package runtime

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Symbol table for variables. Symbol tables are attached to memory frames.
//

// --- Tags -------------------------------------------------------

// Tag is the symbols type to be stored into symbol tables: a variable
// binding. It may be a little surprising this type is not called 'Symbol',
// but 'Tag' is less confusing when dealing with parsers and grammars:
// grammars consist of symbols, too. Thus, symbols are used in the scope of
// the grammar, tags are used during runtime of the client program.
//
type Tag struct {
	name  string
	value Value
}

// NewTag creates a new tag, bound to a value.
func NewTag(nm string, v Value) *Tag {
	return &Tag{name: nm, value: v}
}

// String is a debug Stringer for symbols.
func (t *Tag) String() string {
	return fmt.Sprintf("<tag '%s':%s = %s>", t.name, t.Type(), Repr(t.value))
}

// Name gets the tag's name.
func (t *Tag) Name() string {
	return t.name
}

// Value gets the value bound to the tag.
func (t *Tag) Value() Value {
	return t.value
}

// Type gets the type of the value bound to the tag.
func (t *Tag) Type() Type {
	return TypeOf(t.value)
}

// Set re-binds the tag to a new value. A tag never changes its type: if
// v is of a different type than the current value, Set leaves the tag
// untouched and returns false.
func (t *Tag) Set(v Value) bool {
	if TypeOf(v) != t.Type() {
		return false
	}
	t.value = v
	return true
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	Table map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{Table: make(map[string]*Tag)}
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// DefineTag defines a tag in the table, bound to a value. Returns the new
// tag and the previously stored tag under this name, if any.
//
func (t *SymbolTable) DefineTag(tagname string, v Value) (*Tag, *Tag) {
	tag := NewTag(tagname, v)
	old := t.Table[tagname]
	t.Table[tagname] = tag
	return tag, old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Names returns the names of all tags, sorted.
func (t *SymbolTable) Names() []string {
	names := maps.Keys(t.Table)
	slices.Sort(names)
	return names
}

// Each iterates over each tag in the table in order of names, executing a
// mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	for _, name := range t.Names() {
		mapper(name, t.Table[name])
	}
}
