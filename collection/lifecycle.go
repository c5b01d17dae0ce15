// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"github.com/uiweave/weave/element"
)

// Destroy tears the collection down. Outstanding name resolutions are
// cancelled first, so a registry resolution arriving later can never act
// on the dead collection. The coordination channel subscription is
// released, base teardown detaches the event bus and removes this
// collection from every parent's child list synchronously, and finally
// every resolved child is destroyed recursively. Destroying an
// already-destroyed collection is a no-op, and children destroyed
// independently beforehand are tolerated because removing an absent
// child is itself a no-op.
func (c *Collection) Destroy() {
	if !c.IsAlive() {
		return
	}
	for _, p := range c.pending {
		p.Cancel()
	}
	c.pending = nil
	if c.coordinated() && c.uniqueSub != "" {
		c.Coordinator.Channel(c.UniqueChannel).Off(c.uniqueSub)
		c.uniqueSub = ""
	}
	kids := make([]element.Node, 0, len(c.children))
	for _, e := range c.children {
		if e.node != nil {
			kids = append(kids, e.node)
		}
	}
	c.children = nil
	c.Base.Destroy()
	for _, kid := range kids {
		kid.Destroy()
	}
}
