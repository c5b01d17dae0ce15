// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides slice helpers beyond those
// in the standard [slices] package.
package slicesx

// Search returns the index of an item in the slice for which match
// returns true, scanning bidirectionally outward from the optional start
// index. Passing a start index close to the item's likely position makes
// repeated lookups on large slices much cheaper. With no start index the
// scan begins in the middle, which is a good default. It returns -1 if no
// item matches.
func Search[E any](s []E, match func(e E) bool, startIndex ...int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	start := n / 2
	if len(startIndex) > 0 && startIndex[0] >= 0 {
		start = min(startIndex[0], n-1)
	}
	if start == 0 {
		for i, e := range s {
			if match(e) {
				return i
			}
		}
		return -1
	}
	for lo, hi := start, start+1; lo >= 0 || hi < n; lo, hi = lo-1, hi+1 {
		if lo >= 0 && match(s[lo]) {
			return lo
		}
		if hi < n && match(s[hi]) {
			return hi
		}
	}
	return -1
}
