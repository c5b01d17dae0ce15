// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collection provides the composition and coordination layer for
// weave component trees: the [Collection] element holds an ordered set of
// child elements, groups them into named display slots, keeps a single
// active selection among coordinated siblings, routes verbs down the
// tree, and bubbles events up through every parent.
package collection

import (
	"github.com/uiweave/weave/base/slicesx"
	"github.com/uiweave/weave/element"
	"github.com/uiweave/weave/observe"
	"github.com/uiweave/weave/registry"
)

// entry is one working child slot: a name together with the resolved
// node, or a placeholder (nil node) awaiting registry resolution. The
// entry keeps its position while the resolution is outstanding so the
// resolved node lands at the index it was requested for.
type entry struct {
	name string
	node element.Node
}

// Collection is a container element that composes child elements into an
// ordered, slot-grouped tree. It embeds [element.Base] and so carries the
// event bus, verb table, flag bindings, and parent back-links of every
// weave element. Children are added inline or by name; names resolve
// through the configured [registry.Registry] whenever the component
// becomes available.
type Collection struct {
	element.Base

	// Registry resolves child names and provider names. It may be nil,
	// in which case names stay unresolved placeholders.
	Registry *registry.Registry `copier:"-"`

	// Coordinator owns the shared coordination channels used to keep at
	// most one sibling active per channel. Coordination is configured by
	// setting Coordinator, UniqueChannel, and UniqueFlag together and is
	// entirely inert otherwise.
	Coordinator *Coordinator `copier:"-"`

	// UniqueChannel is the shared coordination channel this collection
	// subscribes to under its Name.
	UniqueChannel string

	// UniqueFlag names the flag binding toggled on each subscriber when
	// the channel holder changes.
	UniqueFlag string

	// Provider is this collection's data source. If nil at construction
	// and ProviderName is set, it is looked up synchronously in the
	// Registry; a missing provider leaves it nil.
	Provider any `copier:"-"`

	// ProviderName names the data source to look up in the Registry.
	ProviderName string

	children []entry
	visible  *observe.Value[[]element.Node]
	slots    map[string]*observe.Value[[]element.Node]
	pending  []*registry.Pending

	// uniqueSub is the per-instance subscription id on the coordination
	// channel. An instance token rather than the Name, so a clone or a
	// same-named sibling can never displace this collection's listener.
	uniqueSub string
}

// Option configures a Collection before its init sequence runs, so the
// coordination subscription and data-source lookup see the final values.
type Option func(c *Collection)

// WithRegistry sets the registry used to resolve child and provider names.
func WithRegistry(r *registry.Registry) Option {
	return func(c *Collection) { c.Registry = r }
}

// WithCoordination configures unique coordination: the coordinator, the
// shared channel name, and the name of the flag binding to toggle.
func WithCoordination(co *Coordinator, channel, flag string) Option {
	return func(c *Collection) {
		c.Coordinator = co
		c.UniqueChannel = channel
		c.UniqueFlag = flag
	}
}

// WithProvider sets the name of the data source to look up at construction.
func WithProvider(name string) Option {
	return func(c *Collection) { c.ProviderName = name }
}

// WithDisplayArea routes the collection itself to the given display slot
// of its parents.
func WithDisplayArea(area string) Option {
	return func(c *Collection) { c.DisplayArea = area }
}

// New returns a new initialized Collection with the given name. Options
// are applied before initialization.
func New(name string, opts ...Option) *Collection {
	c := &Collection{}
	c.Name = name
	for _, opt := range opts {
		opt(c)
	}
	element.InitElement(c)
	return c
}

// Init wires the collection in strict order: the base element is already
// initialized when this hook runs, then the reactive working state is
// defined, then the coordination listener is installed if configured,
// then the data source is looked up if one was not supplied directly.
func (c *Collection) Init() {
	c.visible = element.Observe[[]element.Node](&c.Base, "visibleChildren", nil)
	c.slots = map[string]*observe.Value[[]element.Node]{}
	if c.coordinated() {
		c.subscribeUnique()
	}
	if c.Provider == nil && c.ProviderName != "" && c.Registry != nil {
		c.Provider = c.Registry.Provider(c.ProviderName)
	}
}

// VisibleChildren is the reactive list of resolved children, in insertion
// order. It is recomputed on every tree mutation and always equals the
// order-preserving filter of the working child list to resolved entries.
func (c *Collection) VisibleChildren() *observe.Value[[]element.Node] {
	return c.visible
}

// Slot returns the reactive list of visible children routed to the given
// display area, creating it on first reference. A slot persists once
// created; when its partition empties, it holds an empty list.
func (c *Collection) Slot(name string) *observe.Value[[]element.Node] {
	s, ok := c.slots[name]
	if !ok {
		s = element.Observe[[]element.Node](&c.Base, "slot-"+name, nil)
		c.slots[name] = s
	}
	return s
}

// NumChildren returns the length of the working child list, counting
// unresolved placeholders.
func (c *Collection) NumChildren() int {
	return len(c.children)
}

// Child returns the resolved node at the given index, or nil if the index
// is out of range or the entry is still an unresolved placeholder.
func (c *Collection) Child(i int) element.Node {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i].node
}

// ChildByName returns the resolved child with the given name, or nil.
// The optional startIndex gives the search a position hint.
func (c *Collection) ChildByName(name string, startIndex ...int) element.Node {
	i := slicesx.Search(c.children, func(e entry) bool { return e.name == name }, startIndex...)
	if i < 0 {
		return nil
	}
	return c.children[i].node
}

// indexOfNode returns the working-list index of the given node by
// identity, or -1.
func (c *Collection) indexOfNode(n element.Node) int {
	return slicesx.Search(c.children, func(e entry) bool { return e.node == n })
}

// indexOfName returns the working-list index of the entry with the given
// name, resolved or not, or -1.
func (c *Collection) indexOfName(name string) int {
	return slicesx.Search(c.children, func(e entry) bool { return e.name == name })
}
