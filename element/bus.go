// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import "slices"

// handler is one event subscription: a callback keyed by the subscriber
// id that registered it, so it can be detached again with [Base.Off].
type handler struct {
	id string
	fn func(args ...any) bool
}

// Listeners registers lists of event handler functions keyed by event
// name. Handlers are closures with all context captured, registered on
// specific elements. A handler returns false to decline the event, which
// is an ordinary result, not an error.
type Listeners map[string][]handler

// init ensures the map is constructed.
func (ls *Listeners) init() {
	if *ls == nil {
		*ls = Listeners{}
	}
}

// add appends a handler for the given event under the given subscriber id.
func (ls *Listeners) add(event, id string, fn func(args ...any) bool) {
	ls.init()
	(*ls)[event] = append((*ls)[event], handler{id: id, fn: fn})
}

// remove detaches every handler registered under the given subscriber id,
// across all events.
func (ls *Listeners) remove(id string) {
	for event, hs := range *ls {
		(*ls)[event] = slices.DeleteFunc(hs, func(h handler) bool {
			return h.id == id
		})
	}
}

// trigger calls all handlers for the given event in registration order and
// returns the logical AND of their results. Every handler runs even after
// one declines. An event with no handlers yields true.
func (ls *Listeners) trigger(event string, args ...any) bool {
	ok := true
	for _, h := range slices.Clone((*ls)[event]) {
		if !h.fn(args...) {
			ok = false
		}
	}
	return ok
}

// On registers fn to handle the given event under the given subscriber id.
// The id is used by [Base.Off] to detach the subscriber again; elements
// conventionally subscribe under their own Name.
func (b *Base) On(event, id string, fn func(args ...any) bool) {
	b.listeners.add(event, id, fn)
}

// Off detaches every handler the given subscriber id registered on this
// element. Unknown ids are a no-op.
func (b *Base) Off(id string) {
	b.listeners.remove(id)
}

// Trigger fires the named event on this element's own bus and returns
// the logical AND of the handler results: false means some handler
// declined the event.
func (b *Base) Trigger(event string, args ...any) bool {
	return b.listeners.trigger(event, args...)
}

// Bubble triggers the named event on this element first and, unless the
// local trigger declines, on every parent in registration order. A false
// local result returns false immediately without notifying any ancestor.
// A false result from one parent does not suppress notification of the
// other parents: an element shared by several containers notifies every
// lineage, and each lineage can only veto through its own local trigger.
// The final result is the AND of the local trigger and all parent bubbles.
func (b *Base) Bubble(event string, args ...any) bool {
	if !b.Trigger(event, args...) {
		return false
	}
	ok := true
	for _, p := range slices.Clone(b.parents) {
		if !p.Bubble(event, args...) {
			ok = false
		}
	}
	return ok
}
