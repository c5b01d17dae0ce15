// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

// VerbFunc is the implementation of one verb: it receives the delegated
// arguments and returns a flat list of results, which may be empty.
type VerbFunc func(args ...any) []any

// Delegator is implemented by elements that route verbs to themselves
// and, for containers, onward to their children. Every element handles
// it through [Base.Delegate]; containers override it to recurse.
type Delegator interface {
	Delegate(verb string, args ...any) []any
}

// Handle registers fn as this element's implementation of the given verb.
// Registering a verb again replaces the earlier implementation. Verbs are
// the explicit capability surface used by delegation, in place of probing
// for arbitrarily named methods.
func (b *Base) Handle(verb string, fn VerbFunc) {
	if b.verbs == nil {
		b.verbs = map[string]VerbFunc{}
	}
	b.verbs[verb] = fn
}

// Invoke runs the named verb with the given arguments if this element
// handles it, reporting whether it did. An unhandled verb is not an
// error; it yields (nil, false).
func (b *Base) Invoke(verb string, args ...any) ([]any, bool) {
	fn, ok := b.verbs[verb]
	if !ok {
		return nil, false
	}
	return fn(args...), true
}

// Delegate runs the named verb locally if this element handles it. A leaf
// element has no children to forward to, so an unhandled verb contributes
// an empty result.
func (b *Base) Delegate(verb string, args ...any) []any {
	res, _ := b.Invoke(verb, args...)
	return res
}

// Flag is a boolean state binding exposed for sibling coordination:
// a getter and setter over some piece of element state, registered
// under a name shared by all coordinated siblings.
type Flag struct {
	Get func() bool
	Set func(bool)
}

// BindFlag registers a boolean flag binding under the given name.
// An element that never binds the flag named by its coordination
// configuration simply stays inert on that channel.
func (b *Base) BindFlag(name string, get func() bool, set func(bool)) {
	if b.flags == nil {
		b.flags = map[string]Flag{}
	}
	b.flags[name] = Flag{Get: get, Set: set}
}

// Flag returns the flag binding registered under the given name,
// reporting whether one exists.
func (b *Base) Flag(name string) (Flag, bool) {
	f, ok := b.flags[name]
	return f, ok
}
