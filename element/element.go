// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package element provides the base type for weave UI elements, centered
// on the [Node] interface. Base supplies the lifecycle hooks, the event
// bus, the verb table for downward dispatch, flag bindings for sibling
// coordination, and the parent back-links used for upward event bubbling.
// Higher-level element types must embed [Base].
package element

import (
	"slices"

	"github.com/uiweave/weave/observe"
)

// Node is the interface that all weave elements satisfy. The core
// functionality lives on [Base]; call [Node.AsElement] to access it.
type Node interface {

	// AsElement returns the [Base] of this Node.
	AsElement() *Base

	// Init is called once by [InitElement] when the element is first
	// initialized, before it has any parents. It does nothing by default
	// and can be implemented by higher-level types.
	Init()

	// Destroy tears the element down. Types that hold children or other
	// resources implement this and release them; they are responsible for
	// running [Base.Destroy] as part of their implementation.
	Destroy()
}

// Container is a [Node] that holds an ordered list of child elements.
// Parent back-links are recorded as Containers so that this package does
// not depend on any particular container implementation.
type Container interface {
	Node

	// RemoveChild removes the given node from the container's child list
	// by identity. Removing a node that is not a child is a no-op.
	RemoveChild(n Node)

	// Bubble propagates an event up from the container; see [Base.Bubble].
	Bubble(event string, args ...any) bool
}

// Base implements the [Node] interface and provides the core element
// functionality. All element types must embed it.
type Base struct {

	// Name is the stable identifier of this element, assigned before
	// construction and unique among the elements it coordinates with.
	Name string

	// DisplayArea names the display slot of a parent collection this
	// element is routed to. Empty means the element belongs to no slot.
	DisplayArea string

	// Properties is a property map for arbitrary key-value properties.
	// Use typed fields on embedding types when possible instead.
	Properties map[string]any

	// This is the element as its true outer type, set by [InitElement].
	// It allows code working through Base to hand the full node to
	// collaborators. It is nil once the element is destroyed, which is
	// the liveness marker checked by deferred callbacks.
	This Node `copier:"-"`

	listeners   Listeners
	verbs       map[string]VerbFunc
	flags       map[string]Flag
	observables map[string]any
	parents     []Container
}

// NewBase returns a new initialized Base element with the given name.
func NewBase(name string) *Base {
	b := &Base{Name: name}
	InitElement(b)
	return b
}

// InitElement sets the element's This to the given outer node and runs
// its Init hook. It does nothing for an already-initialized element.
func InitElement(n Node) {
	b := n.AsElement()
	if b.This != n {
		b.This = n
		b.This.Init()
	}
}

// AsElement returns the [Base] for this Node.
func (b *Base) AsElement() *Base {
	return b
}

// Init is a placeholder implementation of [Node.Init] that does nothing.
func (b *Base) Init() {}

// IsAlive reports whether the element has been initialized and
// not yet destroyed.
func (b *Base) IsAlive() bool {
	return b.This != nil
}

// SetProperty sets the given property to the given value.
func (b *Base) SetProperty(key string, value any) {
	if b.Properties == nil {
		b.Properties = map[string]any{}
	}
	b.Properties[key] = value
}

// Property returns the property value for the given key,
// or nil if it is not set.
func (b *Base) Property(key string) any {
	return b.Properties[key]
}

// DeleteProperty deletes the property with the given key.
func (b *Base) DeleteProperty(key string) {
	delete(b.Properties, key)
}

// Observe creates a new [observe.Value] holding the given initial value
// and registers it on the element under the given name, making it a
// component-observable discoverable through [Base.Observable].
func Observe[T any](b *Base, name string, initial T) *observe.Value[T] {
	v := observe.New(initial)
	if b.observables == nil {
		b.observables = map[string]any{}
	}
	b.observables[name] = v
	return v
}

// Observable returns the observable registered under the given name,
// or nil if there is none. The result is a *observe.Value of the type
// it was created with.
func (b *Base) Observable(name string) any {
	return b.observables[name]
}

// Parents:

// AddParent records the given container as a parent of this element,
// completing the bidirectional link from the container's child list.
// Parents are kept in registration order; re-adding a container that
// is already a parent is a no-op.
func (b *Base) AddParent(p Container) {
	for _, ex := range b.parents {
		if ex == p {
			return
		}
	}
	b.parents = append(b.parents, p)
}

// RemoveParent drops the given container from this element's parents.
// Removing a container that is not a parent is a no-op.
func (b *Base) RemoveParent(p Container) {
	b.parents = slices.DeleteFunc(b.parents, func(ex Container) bool {
		return ex == p
	})
}

// Parents returns the element's parents in registration order.
// An element shared by several containers has several parents.
func (b *Base) Parents() []Container {
	return slices.Clone(b.parents)
}

// Destroy tears the element down: the event bus, verb table, and flag
// bindings are released, the element removes itself from every parent's
// child list so parents never retain stale references, and This is set
// to nil to mark the element dead. Destroying an already-destroyed
// element is a no-op.
func (b *Base) Destroy() {
	if b.This == nil {
		return
	}
	this := b.This
	b.listeners = nil
	b.verbs = nil
	b.flags = nil
	b.observables = nil
	parents := b.parents
	b.parents = nil
	for _, p := range parents {
		p.RemoveChild(this)
	}
	b.This = nil
}
