// Copyright (c) 2026, Weave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/uiweave/weave/registry"
)

// Blueprint is a declarative description of a collection subtree,
// loadable from YAML. Children describes nested collections built inline;
// Refs names components resolved through the registry whenever they
// become available.
type Blueprint struct {
	Name        string       `yaml:"name"`
	DisplayArea string       `yaml:"displayArea,omitempty"`
	Channel     string       `yaml:"channel,omitempty"`
	Flag        string       `yaml:"flag,omitempty"`
	Provider    string       `yaml:"provider,omitempty"`
	Children    []*Blueprint `yaml:"children,omitempty"`
	Refs        []string     `yaml:"refs,omitempty"`
}

// ReadBlueprint decodes a YAML blueprint from the given reader.
func ReadBlueprint(r io.Reader) (*Blueprint, error) {
	bp := &Blueprint{}
	if err := yaml.NewDecoder(r).Decode(bp); err != nil {
		return nil, fmt.Errorf("collection: reading blueprint: %w", err)
	}
	return bp, nil
}

// OpenBlueprint reads a YAML blueprint from the given file.
func OpenBlueprint(filename string) (*Blueprint, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadBlueprint(fp)
}

// Write encodes the blueprint as YAML to the given writer.
func (bp *Blueprint) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(bp); err != nil {
		return fmt.Errorf("collection: writing blueprint: %w", err)
	}
	return enc.Close()
}

// Build constructs the collection tree the blueprint describes. The
// registry and coordinator are shared by every collection in the tree;
// either may be nil when the corresponding features are unused.
// Coordination is configured only where the blueprint sets both a
// channel and a flag.
func (bp *Blueprint) Build(reg *registry.Registry, co *Coordinator) *Collection {
	var opts []Option
	if reg != nil {
		opts = append(opts, WithRegistry(reg))
	}
	if co != nil && bp.Channel != "" && bp.Flag != "" {
		opts = append(opts, WithCoordination(co, bp.Channel, bp.Flag))
	}
	if bp.Provider != "" {
		opts = append(opts, WithProvider(bp.Provider))
	}
	if bp.DisplayArea != "" {
		opts = append(opts, WithDisplayArea(bp.DisplayArea))
	}
	c := New(bp.Name, opts...)
	for _, child := range bp.Children {
		c.AddChild(child.Build(reg, co))
	}
	c.AddName(bp.Refs...)
	return c
}
