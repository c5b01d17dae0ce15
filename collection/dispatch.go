// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"github.com/uiweave/weave/element"
)

// Delegate routes a verb down the tree. A verb this collection handles
// itself is invoked directly and its result returned as is, without
// visiting children, even when children handle the same verb. Otherwise
// the verb is delegated to every resolved child in child order and the
// per-child result lists are concatenated (flattened one level). An
// unknown verb at every depth yields an empty result; it is never an
// error.
func (c *Collection) Delegate(verb string, args ...any) []any {
	if res, ok := c.Invoke(verb, args...); ok {
		return res
	}
	var out []any
	for _, e := range c.children {
		if e.node == nil {
			continue
		}
		if d, ok := e.node.(element.Delegator); ok {
			out = append(out, d.Delegate(verb, args...)...)
		}
	}
	return out
}
