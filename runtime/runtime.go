/*
Package runtime implements an interpreter runtime, consisting of
runtime values, memory frames and symbols (variable bindings).

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Values

Runtime values are dynamically typed. The set of value types is closed:
Bool, Int (32 bit), Float (32 bit), String and *Func. A nil Value stands
for "no value".

Symbol Tables

Symbol tables map names to tags. A tag is a variable binding which keeps
its value type for its whole lifetime.

Memory Frames

This module implements an arena of memory frames.
Memory frames are used by an interpreter to allocate local storage
for active scopes. A frame refers to its parent frame by index; variable
lookup walks this chain outward up to the global frame.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qlang.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("qlang.runtime")
}

// Runtime is a type implementing a runtime environment for an interpreter:
// an arena of memory frames and the frame currently active.
type Runtime struct {
	Frames  *FrameArena // live memory frames
	Current int         // index of the active frame
}

// NewRuntimeEnvironment constructs a new runtime environment, initialized
// with an empty global frame, which is the active frame.
//
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{Frames: NewFrameArena()}
	rt.Current = rt.Frames.Globals()
	return rt
}

// Globals returns the index of the global frame.
func (rt *Runtime) Globals() int {
	return rt.Frames.Globals()
}

// PushFrame allocates a new frame with a given parent and makes it the
// active frame. It returns the index of the previously active frame, to be
// passed to PopFrame.
func (rt *Runtime) PushFrame(nm string, parent int) int {
	prev := rt.Current
	rt.Current = rt.Frames.Push(nm, parent)
	return prev
}

// PopFrame releases the active frame and re-activates frame prev.
func (rt *Runtime) PopFrame(prev int) {
	rt.Frames.Pop(rt.Current)
	rt.Current = prev
}

// Resolve finds a variable, starting at the active frame.
func (rt *Runtime) Resolve(name string) (*Tag, int) {
	return rt.Frames.Resolve(rt.Current, name)
}

// Define binds a variable in the active frame.
func (rt *Runtime) Define(name string, v Value) *Tag {
	return rt.Frames.Define(rt.Current, name, v)
}
