// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package observe provides the reactive value primitive used throughout
// weave: a [Value] holds a single value and notifies id-keyed subscribers
// synchronously on every write, so a new value is visible to all readers
// before the next external event is processed.
package observe

import "slices"

// subscriber is one change subscription, keyed by id for removal.
type subscriber[T any] struct {
	id string
	fn func(T)
}

// Value holds a value of type T and a list of change subscribers.
// It is not safe for concurrent use; all access must happen on the
// single logical thread of control that owns the component tree.
type Value[T any] struct {
	value T
	subs  []subscriber[T]
}

// New returns a new [Value] holding the given initial value.
// Creating the initial value does not notify anyone.
func New[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.value
}

// Set stores the value and then calls every subscriber with it, in
// subscription order. Subscribers must not write this value back from
// within their callback: every write re-notifies all subscribers, so a
// write from inside a callback loops.
func (v *Value[T]) Set(val T) {
	v.value = val
	for _, s := range slices.Clone(v.subs) {
		s.fn(val)
	}
}

// OnChange subscribes fn under the given id. Subscribing again with the
// same id replaces the earlier function in place, keeping its position
// in the notification order.
func (v *Value[T]) OnChange(id string, fn func(T)) {
	for i, s := range v.subs {
		if s.id == id {
			v.subs[i].fn = fn
			return
		}
	}
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
}

// Off removes the subscription with the given id.
// Removing an unknown id is a no-op.
func (v *Value[T]) Off(id string) {
	v.subs = slices.DeleteFunc(v.subs, func(s subscriber[T]) bool {
		return s.id == id
	})
}
