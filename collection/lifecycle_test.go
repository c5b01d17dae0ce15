// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiweave/weave/collection"
	"github.com/uiweave/weave/element"
	"github.com/uiweave/weave/registry"
)

func TestDestroyRemovesFromEveryParent(t *testing.T) {
	p1 := collection.New("p1")
	p2 := collection.New("p2")
	shared := newLabel("shared", "top")
	p1.AddChild(shared)
	p2.AddChild(shared)

	shared.Destroy()
	assert.Empty(t, p1.VisibleChildren().Get())
	assert.Empty(t, p2.VisibleChildren().Get())
	assert.Empty(t, p1.Slot("top").Get())
	assert.Empty(t, p2.Slot("top").Get())
	assert.False(t, shared.IsAlive())
}

func TestDestroyRecursive(t *testing.T) {
	root := collection.New("root")
	mid := collection.New("mid")
	leaf := newLabel("leaf", "")
	mid.AddChild(leaf)
	root.AddChild(mid)

	root.Destroy()
	assert.False(t, root.IsAlive())
	assert.False(t, mid.IsAlive())
	assert.False(t, leaf.IsAlive())
}

func TestDestroyIdempotent(t *testing.T) {
	c := collection.New("c")
	c.Destroy()
	c.Destroy()
	assert.False(t, c.IsAlive())
}

func TestIndependentChildDestructionThenParent(t *testing.T) {
	root := collection.New("root")
	kid := collection.New("kid")
	root.AddChild(kid)

	kid.Destroy()
	assert.Empty(t, root.VisibleChildren().Get())
	root.Destroy() // must tolerate the already-destroyed child
	assert.False(t, root.IsAlive())
}

func TestDestroyCancelsOutstandingResolution(t *testing.T) {
	reg := registry.New()
	c := collection.New("root", collection.WithRegistry(reg))
	c.AddName("late")
	c.Destroy()

	kid := newLabel("late", "")
	reg.Register("late", kid)
	// The cancelled request never ran, so the dead collection was not
	// mutated and the child was never adopted.
	assert.Empty(t, kid.Parents())
	assert.Zero(t, reg.NumPending("late"))
}

func TestDestroyedParentStopsPublishing(t *testing.T) {
	root := collection.New("root")
	kid := newLabel("kid", "area")
	root.AddChild(kid)
	require.Len(t, root.Slot("area").Get(), 1)

	kid.Destroy()
	assert.Empty(t, root.Slot("area").Get())
	// The slot observable survives with an empty list; subscribers keep
	// working after the partition empties.
	var latest []string
	root.Slot("area").OnChange("w", func(ns []element.Node) { latest = names(ns) })
	root.AddChild(newLabel("kid2", "area"))
	assert.Equal(t, []string{"kid2"}, latest)
}
