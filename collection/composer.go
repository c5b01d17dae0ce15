// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"slices"

	"github.com/uiweave/weave/element"
)

// AddChild appends the given resolved nodes to the child list and returns
// the collection for chaining. A node already present by identity is
// skipped; a node whose name matches a pending placeholder fills that
// placeholder in place instead of appending.
func (c *Collection) AddChild(kids ...element.Node) *Collection {
	for _, kid := range kids {
		c.insertNode(kid, len(c.children))
	}
	c.update()
	return c
}

// InsertChild places the given resolved node at the given position in the
// child list and returns the collection for chaining. The position is
// clamped to the list bounds.
func (c *Collection) InsertChild(kid element.Node, at int) *Collection {
	c.insertNode(kid, at)
	c.update()
	return c
}

// AddName appends placeholders for the given component names, to be
// resolved through the registry whenever each component becomes
// available, and returns the collection for chaining. Resolution side
// effects happen out of band relative to this call, with no ordering
// guarantee across names. A name already occupying an entry gets no
// second placeholder.
func (c *Collection) AddName(names ...string) *Collection {
	for _, name := range names {
		c.insertName(name, len(c.children))
	}
	c.update()
	return c
}

// InsertName places a placeholder for the given component name at the
// given position; see [Collection.AddName].
func (c *Collection) InsertName(name string, at int) *Collection {
	c.insertName(name, at)
	c.update()
	return c
}

// RemoveChild removes the given node from the child list by identity and
// drops the parent back-link. Removing a node that is not a child is a
// no-op; independently destroying subtrees call this redundantly.
func (c *Collection) RemoveChild(n element.Node) {
	if n == nil {
		return
	}
	i := c.indexOfNode(n)
	if i < 0 {
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	n.AsElement().RemoveParent(c)
	c.update()
}

// RemoveName removes the entry with the given name, resolved or still
// pending. Removing an absent name is a no-op.
func (c *Collection) RemoveName(name string) {
	i := c.indexOfName(name)
	if i < 0 {
		return
	}
	if n := c.children[i].node; n != nil {
		c.RemoveChild(n)
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	c.update()
}

// insertNode places a resolved node at the given position. Inserting a
// node already present by identity is a no-op; a node whose name matches
// an existing entry fills that entry in place when it is still a
// placeholder and is otherwise skipped, so entries are never duplicated.
func (c *Collection) insertNode(kid element.Node, at int) {
	if kid == nil {
		return
	}
	if c.indexOfNode(kid) >= 0 {
		return
	}
	name := kid.AsElement().Name
	if name != "" {
		if i := c.indexOfName(name); i >= 0 {
			if c.children[i].node == nil {
				c.children[i].node = kid
				c.adopt(kid)
			}
			return
		}
	}
	at = min(max(at, 0), len(c.children))
	c.children = slices.Insert(c.children, at, entry{name: name, node: kid})
	c.adopt(kid)
}

// insertName places a placeholder entry for the given name at the given
// position and requests resolution from the registry. A name already
// present, pending or resolved, is left alone. Without a registry the
// placeholder simply stays unresolved.
func (c *Collection) insertName(name string, at int) {
	if name == "" || c.indexOfName(name) >= 0 {
		return
	}
	at = min(max(at, 0), len(c.children))
	c.children = slices.Insert(c.children, at, entry{name: name})
	if c.Registry == nil {
		return
	}
	p := c.Registry.Get(name, func(n element.Node) {
		c.resolved(name, n)
	})
	c.pending = append(c.pending, p)
}

// resolved installs an asynchronously resolved node into its placeholder.
// It guards against the collection having been destroyed while the
// request was outstanding, against the placeholder having been removed or
// filled in the meantime, and never admits a nil resolution into the
// visible list.
func (c *Collection) resolved(name string, n element.Node) {
	if !c.IsAlive() || n == nil {
		return
	}
	i := c.indexOfName(name)
	if i < 0 || c.children[i].node != nil {
		return
	}
	c.children[i].node = n
	c.adopt(n)
	c.update()
}

// adopt completes the bidirectional link by recording this collection as
// a parent of the child.
func (c *Collection) adopt(kid element.Node) {
	kid.AsElement().AddParent(c)
}

// update recomputes the derived state from the working child list: the
// resolved entries are filtered out in order and published as the visible
// list, then partitioned by display area, and every slot's contents are
// replaced wholesale. Entries without a display area land in no slot, so
// the slots are always a disjoint cover of the slotted visible children.
// One full pass over the child list per mutation; no diffing.
func (c *Collection) update() {
	visible := make([]element.Node, 0, len(c.children))
	areas := map[string][]element.Node{}
	for _, e := range c.children {
		if e.node == nil {
			continue
		}
		visible = append(visible, e.node)
		if area := e.node.AsElement().DisplayArea; area != "" {
			areas[area] = append(areas[area], e.node)
		}
	}
	c.visible.Set(visible)
	for name, s := range c.slots {
		s.Set(areas[name])
		delete(areas, name)
	}
	for name, nodes := range areas {
		c.Slot(name).Set(nodes)
	}
}
