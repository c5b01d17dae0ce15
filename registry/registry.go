// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry provides name-based lookup of weave components.
// Names registered later fulfill requests made earlier, which is the
// single suspension point in the otherwise synchronous composition
// model: a [Registry.Get] callback may run long after the call, and
// callers must guard it against acting on elements destroyed in the
// meantime. Pending requests are cancellable for exactly that purpose.
package registry

import (
	"github.com/google/uuid"

	"github.com/uiweave/weave/element"
)

// request is one outstanding Get, keyed by token for cancellation.
type request struct {
	token uuid.UUID
	fn    func(element.Node)
}

// Registry resolves component names to elements and provider names to
// data-source values. It is not safe for concurrent use; all access must
// happen on the single logical thread that owns the component trees.
type Registry struct {
	components map[string]element.Node
	providers  map[string]any
	pending    map[string][]request
}

// New returns a new empty Registry.
func New() *Registry {
	return &Registry{
		components: map[string]element.Node{},
		providers:  map[string]any{},
		pending:    map[string][]request{},
	}
}

// Register makes the given node available under the given name and
// fulfills every pending request for that name, in request order.
// Registering a name again replaces the earlier node for future
// lookups; already-fulfilled requests are unaffected.
func (r *Registry) Register(name string, n element.Node) {
	r.components[name] = n
	reqs := r.pending[name]
	delete(r.pending, name)
	for _, req := range reqs {
		req.fn(n)
	}
}

// Get resolves the given name to a node through the given callback. If
// the name is already registered the callback runs before Get returns;
// otherwise it runs when [Registry.Register] supplies the name, with no
// ordering guarantee relative to other outstanding resolutions. The
// returned handle cancels the request if it is still outstanding.
func (r *Registry) Get(name string, fn func(element.Node)) *Pending {
	p := &Pending{r: r, name: name, token: uuid.New()}
	if n, ok := r.components[name]; ok {
		fn(n)
		return p
	}
	r.pending[name] = append(r.pending[name], request{token: p.token, fn: fn})
	return p
}

// Lookup returns the node registered under the given name, or nil.
func (r *Registry) Lookup(name string) element.Node {
	return r.components[name]
}

// SetProvider registers a synchronous data-source value under the
// given provider name.
func (r *Registry) SetProvider(name string, v any) {
	r.providers[name] = v
}

// Provider returns the data-source value registered under the given
// provider name, or nil. Unlike component names, providers are always
// resolved synchronously, at element construction time.
func (r *Registry) Provider(name string) any {
	return r.providers[name]
}

// NumPending returns the number of outstanding requests for the
// given name.
func (r *Registry) NumPending(name string) int {
	return len(r.pending[name])
}

// Pending is a handle for one outstanding [Registry.Get] request.
type Pending struct {
	r     *Registry
	name  string
	token uuid.UUID
}

// Cancel drops the request if it has not been fulfilled yet, so its
// callback will never run. Cancelling a fulfilled or already-cancelled
// request is a no-op.
func (p *Pending) Cancel() {
	reqs := p.r.pending[p.name]
	for i, req := range reqs {
		if req.token == p.token {
			p.r.pending[p.name] = append(reqs[:i], reqs[i+1:]...)
			return
		}
	}
}
