// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"github.com/google/uuid"

	"github.com/uiweave/weave/observe"
)

// Coordinator owns the shared coordination channels used to keep at most
// one sibling active per channel. It is injected into each collection
// rather than reached through ambient global state, so independent trees
// coordinate independently and tests get a fresh coordinator each.
type Coordinator struct {
	channels map[string]*observe.Value[string]
}

// NewCoordinator returns a new Coordinator with no channels.
func NewCoordinator() *Coordinator {
	return &Coordinator{channels: map[string]*observe.Value[string]{}}
}

// Channel returns the observable holder for the given channel name,
// creating it on first reference. Its value is the Name of the element
// currently holding the channel; empty means no holder.
func (co *Coordinator) Channel(name string) *observe.Value[string] {
	ch, ok := co.channels[name]
	if !ok {
		ch = observe.New("")
		co.channels[name] = ch
	}
	return ch
}

// coordinated reports whether unique coordination is configured. It
// requires a coordinator, a channel name, and a flag name together;
// otherwise the feature is entirely inert: no listener, no cost.
func (c *Collection) coordinated() bool {
	return c.Coordinator != nil && c.UniqueChannel != "" && c.UniqueFlag != ""
}

// subscribeUnique installs the channel listener under a fresh instance
// token. Each holder change sets the bound flag to whether this
// collection is the new holder, so exactly one subscriber ends up active
// per change. The callback never writes the channel: a write re-triggers
// every subscriber, so writing from inside the callback would loop.
func (c *Collection) subscribeUnique() {
	c.uniqueSub = uuid.NewString()
	c.Coordinator.Channel(c.UniqueChannel).OnChange(c.uniqueSub, func(holder string) {
		flag, ok := c.Flag(c.UniqueFlag)
		if !ok {
			// Unbound flag is a configuration defect on this node only;
			// stay inert rather than aborting the channel.
			return
		}
		flag.Set(holder == c.Name)
	})
}

// SetUnique claims the coordination channel if this collection's bound
// flag currently reads true, which deactivates every other subscriber on
// the channel. It is a no-op when coordination is unconfigured or the
// flag is unbound.
func (c *Collection) SetUnique() {
	if !c.coordinated() {
		return
	}
	flag, ok := c.Flag(c.UniqueFlag)
	if !ok {
		return
	}
	if flag.Get() {
		c.Coordinator.Channel(c.UniqueChannel).Set(c.Name)
	}
}
