// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"log/slog"

	"github.com/jinzhu/copier"

	"github.com/uiweave/weave/element"
)

// CopyFieldsFrom copies the configuration fields of the given collection
// onto this one: the name, display area, properties, coordination names,
// and provider name. Fields tagged copier:"-" (the shared registry,
// coordinator, and provider, plus element internals) are left alone, as
// is the working child list.
func (c *Collection) CopyFieldsFrom(from *Collection) {
	if from == nil {
		slog.Error("collection.CopyFieldsFrom: nil source", "destination", c.Name)
		return
	}
	err := copier.CopyWithOption(c, from, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("collection.CopyFieldsFrom", "err", err)
	}
}

// Clone returns a copy of the collection subtree sharing the original's
// registry, coordinator, and provider. Child collections are cloned
// recursively; leaf children are shared with the original, which is legal
// under the multi-parent model; names still awaiting resolution are
// requested again for the clone. A clone keeps the original's Name;
// since channel holders are identified by name, rename a clone that
// coordinates on the same channel as its original.
func (c *Collection) Clone() *Collection {
	nc := &Collection{}
	nc.Registry = c.Registry
	nc.Coordinator = c.Coordinator
	nc.Provider = c.Provider
	nc.CopyFieldsFrom(c)
	element.InitElement(nc)
	for _, e := range c.children {
		if e.node == nil {
			nc.AddName(e.name)
			continue
		}
		if col, ok := e.node.(*Collection); ok {
			nc.AddChild(col.Clone())
		} else {
			nc.AddChild(e.node)
		}
	}
	return nc
}
