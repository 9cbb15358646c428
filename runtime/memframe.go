package runtime

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// This module implements an arena of memory frames.
// Memory frames are used by an interpreter to allocate local storage
// for active scopes. Frames are addressed by their index into the arena and
// link to their parent frame by index, forming a chain which ends at the
// global frame (index 0).

// NoParent is the parent index of the global frame.
const NoParent = -1

// MemoryFrame is a memory frame, representing a piece of memory for a scope.
type MemoryFrame struct {
	Name        string
	Parent      int // index of the parent frame, NoParent for the global frame
	SymbolTable *SymbolTable
}

func (mf *MemoryFrame) String() string {
	return fmt.Sprintf("<mem %s -> %d>", mf.Name, mf.Parent)
}

// IsRoot is a predicate: Is this a root frame?
func (mf *MemoryFrame) IsRoot() bool {
	return mf.Parent == NoParent
}

// ---------------------------------------------------------------------------

// FrameArena holds the live memory frames of an interpreter. Frames are
// allocated and released in LIFO order; a frame's parent is any live frame
// with a lower index (not necessarily the previous one).
type FrameArena struct {
	frames *arraylist.List
}

// NewFrameArena creates an arena containing a global frame.
func NewFrameArena() *FrameArena {
	fa := &FrameArena{frames: arraylist.New()}
	fa.frames.Add(&MemoryFrame{
		Name:        "global",
		Parent:      NoParent,
		SymbolTable: NewSymbolTable(),
	})
	return fa
}

// Globals returns the index of the global frame.
func (fa *FrameArena) Globals() int {
	return 0
}

// Size returns the number of live frames, including the global frame.
func (fa *FrameArena) Size() int {
	return fa.frames.Size()
}

// Frame gets the frame at index inx.
func (fa *FrameArena) Frame(inx int) *MemoryFrame {
	f, ok := fa.frames.Get(inx)
	if !ok {
		panic(fmt.Sprintf("attempt to access memory frame #%d, arena holds %d frames", inx, fa.Size()))
	}
	return f.(*MemoryFrame)
}

// Push allocates a new frame with a given parent and returns its index.
func (fa *FrameArena) Push(nm string, parent int) int {
	_ = fa.Frame(parent) // check parent is live
	fa.frames.Add(&MemoryFrame{
		Name:        nm,
		Parent:      parent,
		SymbolTable: NewSymbolTable(),
	})
	inx := fa.frames.Size() - 1
	tracer().P("mem", nm).Debugf("pushing new memory frame #%d -> #%d", inx, parent)
	return inx
}

// Pop releases the top-most frame, which has to be the frame at index inx.
func (fa *FrameArena) Pop(inx int) {
	top := fa.frames.Size() - 1
	if inx != top || top == 0 {
		panic(fmt.Sprintf("attempt to pop memory frame #%d, top is #%d", inx, top))
	}
	tracer().Debugf("popping memory frame #%d [%s]", inx, fa.Frame(inx).Name)
	fa.frames.Remove(top)
}

// Resolve finds a tag by walking the chain of frames, starting at the frame
// at index inx. Returns the tag (or nil) and the index of the frame the tag
// was found in.
func (fa *FrameArena) Resolve(inx int, tagname string) (*Tag, int) {
	for inx != NoParent {
		mf := fa.Frame(inx)
		if tag := mf.SymbolTable.ResolveTag(tagname); tag != nil {
			return tag, inx
		}
		inx = mf.Parent
	}
	return nil, NoParent
}

// Define binds a name to a value in the frame at index inx.
func (fa *FrameArena) Define(inx int, tagname string, v Value) *Tag {
	tag, _ := fa.Frame(inx).SymbolTable.DefineTag(tagname, v)
	return tag
}

// Binding is a variable visible from a frame.
type Binding struct {
	Frame int
	Tag   *Tag
}

// Visible lists the bindings visible from the frame at index inx,
// innermost frame first, sorted by name within each frame. Shadowed
// bindings are omitted.
func (fa *FrameArena) Visible(inx int) []Binding {
	var bindings []Binding
	seen := make(map[string]bool)
	for inx != NoParent {
		mf := fa.Frame(inx)
		f := inx
		mf.SymbolTable.Each(func(name string, tag *Tag) {
			if !seen[name] {
				seen[name] = true
				bindings = append(bindings, Binding{Frame: f, Tag: tag})
			}
		})
		inx = mf.Parent
	}
	return bindings
}

// Dump renders the chain of frames starting at index inx, for debugging.
func (fa *FrameArena) Dump(inx int) string {
	var b strings.Builder
	for inx != NoParent {
		mf := fa.Frame(inx)
		fmt.Fprintf(&b, "#%d %s\n", inx, mf.Name)
		mf.SymbolTable.Each(func(name string, tag *Tag) {
			fmt.Fprintf(&b, "    %s : %s = %s\n", name, tag.Type(), Repr(tag.Value()))
		})
		inx = mf.Parent
	}
	return b.String()
}
