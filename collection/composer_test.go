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

// label is a minimal leaf element used throughout the collection tests.
type label struct {
	element.Base
}

func newLabel(name, area string) *label {
	l := &label{}
	l.Name = name
	l.DisplayArea = area
	element.InitElement(l)
	return l
}

func names(nodes []element.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.AsElement().Name
	}
	return out
}

func TestAddChildVisibleOrder(t *testing.T) {
	c := collection.New("root")
	c.AddChild(newLabel("a", ""), newLabel("b", ""))
	c.AddChild(newLabel("c", ""))
	assert.Equal(t, []string{"a", "b", "c"}, names(c.VisibleChildren().Get()))
}

func TestInsertChildPosition(t *testing.T) {
	c := collection.New("root")
	c.AddChild(newLabel("a", ""), newLabel("c", ""))
	c.InsertChild(newLabel("b", ""), 1)
	assert.Equal(t, []string{"a", "b", "c"}, names(c.VisibleChildren().Get()))

	c.InsertChild(newLabel("z", ""), 100) // clamped to append
	assert.Equal(t, []string{"a", "b", "c", "z"}, names(c.VisibleChildren().Get()))
}

func TestAddChildSetsParentBackLink(t *testing.T) {
	c := collection.New("root")
	kid := newLabel("a", "")
	c.AddChild(kid)
	parents := kid.Parents()
	require.Len(t, parents, 1)
	assert.Equal(t, element.Container(c), parents[0])
}

func TestVisibleFiltersUnresolvedPlaceholders(t *testing.T) {
	reg := registry.New()
	c := collection.New("root", collection.WithRegistry(reg))
	c.AddChild(newLabel("a", ""))
	c.AddName("b")
	c.AddChild(newLabel("c", ""))

	assert.Equal(t, 3, c.NumChildren())
	assert.Equal(t, []string{"a", "c"}, names(c.VisibleChildren().Get()))

	// Resolution fills the placeholder at its original index.
	reg.Register("b", newLabel("b", ""))
	assert.Equal(t, []string{"a", "b", "c"}, names(c.VisibleChildren().Get()))
}

func TestResolutionEstablishesBackLink(t *testing.T) {
	reg := registry.New()
	c := collection.New("root", collection.WithRegistry(reg))
	c.AddName("b")
	kid := newLabel("b", "")
	reg.Register("b", kid)
	require.Len(t, kid.Parents(), 1)
	assert.Equal(t, element.Container(c), kid.Parents()[0])
}

func TestDuplicatePendingNameSingleEntry(t *testing.T) {
	reg := registry.New()
	c := collection.New("root", collection.WithRegistry(reg))
	c.AddName("x")
	c.AddName("x")
	c.InsertName("x", 0)
	assert.Equal(t, 1, c.NumChildren())

	reg.Register("x", newLabel("x", ""))
	assert.Equal(t, 1, c.NumChildren())
	assert.Equal(t, []string{"x"}, names(c.VisibleChildren().Get()))
}

func TestInsertResolvedNodeFillsPlaceholderInPlace(t *testing.T) {
	reg := registry.New()
	c := collection.New("root", collection.WithRegistry(reg))
	c.AddChild(newLabel("a", ""))
	c.AddName("x")
	c.AddChild(newLabel("x", "")) // fills the pending entry, no append
	assert.Equal(t, 2, c.NumChildren())
	assert.Equal(t, []string{"a", "x"}, names(c.VisibleChildren().Get()))
}

func TestReinsertExistingNodeIsNoop(t *testing.T) {
	c := collection.New("root")
	kid := newLabel("a", "")
	c.AddChild(kid)
	c.AddChild(kid)
	assert.Equal(t, 1, c.NumChildren())
}

func TestRemoveChild(t *testing.T) {
	c := collection.New("root")
	kid := newLabel("a", "top")
	c.AddChild(kid, newLabel("b", ""))
	c.RemoveChild(kid)
	assert.Equal(t, []string{"b"}, names(c.VisibleChildren().Get()))
	assert.Empty(t, kid.Parents())
	assert.Empty(t, c.Slot("top").Get())

	c.RemoveChild(kid) // absent: no-op
	assert.Equal(t, 1, c.NumChildren())
	c.RemoveChild(nil) // no-op
}

func TestRemoveNamePendingPlaceholder(t *testing.T) {
	reg := registry.New()
	c := collection.New("root", collection.WithRegistry(reg))
	c.AddName("x")
	c.RemoveName("x")
	assert.Zero(t, c.NumChildren())

	// The outstanding resolution must not resurrect the entry.
	reg.Register("x", newLabel("x", ""))
	assert.Zero(t, c.NumChildren())
	assert.Empty(t, c.VisibleChildren().Get())
}

func TestSlotPartitionDisjointCover(t *testing.T) {
	c := collection.New("root")
	c.AddChild(
		newLabel("a", "top"),
		newLabel("b", "top"),
		newLabel("c", "bottom"),
		newLabel("d", ""),
	)
	top := c.Slot("top").Get()
	bottom := c.Slot("bottom").Get()
	assert.Equal(t, []string{"a", "b"}, names(top))
	assert.Equal(t, []string{"c"}, names(bottom))
	// Slotted plus unslotted covers the visible list exactly.
	assert.Equal(t, len(c.VisibleChildren().Get()), len(top)+len(bottom)+1)
}

func TestSlotCreatedLazilyAndUpdated(t *testing.T) {
	c := collection.New("root")
	side := c.Slot("side")
	assert.Empty(t, side.Get())

	var seen []string
	side.OnChange("watch", func(nodes []element.Node) { seen = names(nodes) })
	c.AddChild(newLabel("s1", "side"))
	assert.Equal(t, []string{"s1"}, seen)
	assert.Equal(t, []string{"s1"}, names(c.Slot("side").Get()))
}

func TestVisibleInvariantAfterEveryMutation(t *testing.T) {
	reg := registry.New()
	c := collection.New("root", collection.WithRegistry(reg))
	check := func() {
		visible := c.VisibleChildren().Get()
		j := 0
		for i := 0; i < c.NumChildren(); i++ {
			if n := c.Child(i); n != nil {
				require.Less(t, j, len(visible))
				assert.Equal(t, n, visible[j])
				j++
			}
		}
		assert.Len(t, visible, j)
	}
	a := newLabel("a", "top")
	c.AddChild(a)
	check()
	c.AddName("b")
	check()
	c.InsertChild(newLabel("d", "bottom"), 0)
	check()
	reg.Register("b", newLabel("b", ""))
	check()
	c.RemoveChild(a)
	check()
}

func TestNilResolutionNeverAdmitted(t *testing.T) {
	reg := registry.New()
	c := collection.New("root", collection.WithRegistry(reg))
	c.AddName("broken")
	reg.Register("broken", nil)
	assert.Empty(t, c.VisibleChildren().Get())
	assert.Equal(t, 1, c.NumChildren()) // placeholder remains, filtered out
}

func TestAddNameWithoutRegistryStaysPlaceholder(t *testing.T) {
	c := collection.New("root")
	c.AddName("x")
	assert.Equal(t, 1, c.NumChildren())
	assert.Empty(t, c.VisibleChildren().Get())
}

func TestChildAccessors(t *testing.T) {
	c := collection.New("root")
	a := newLabel("a", "")
	c.AddChild(a)
	assert.Equal(t, element.Node(a), c.Child(0))
	assert.Nil(t, c.Child(1))
	assert.Nil(t, c.Child(-1))
	assert.Equal(t, element.Node(a), c.ChildByName("a"))
	assert.Nil(t, c.ChildByName("missing"))
}
