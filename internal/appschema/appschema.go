// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package appschema holds the application schemas that
// are built into the module.
//
// "productions" describes an organization whose productions
// each list their events. "events" is flatter, with the events
// directly under the root.
package appschema

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/altshiftab/eventschema/internal/schemacache"
	"github.com/altshiftab/eventschema/pkg/draft07"
	"github.com/altshiftab/eventschema/pkg/jsonschema"
	"github.com/altshiftab/eventschema/pkg/types"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// appCache is a cache of the parsed application schemas.
// We use a single cache since they don't change.
var appCache schemacache.ConcurrentCache

// Names returns the sorted names of the application schemas.
func Names() []string {
	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		panic(fmt.Sprintf("appschema: reading embedded schemas: %v", err))
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Source returns the JSON text of the named schema.
func Source(name string) ([]byte, error) {
	data, err := schemaFS.ReadFile(path.Join("schemas", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("unknown application schema %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return data, nil
}

// Load returns the parsed form of the named schema.
// The result is shared and must not be modified.
func Load(name string) (*types.Schema, error) {
	return appCache.LoadOrParse(draft07.SchemaID, name, func() (*types.Schema, error) {
		data, err := Source(name)
		if err != nil {
			return nil, err
		}
		s, err := jsonschema.New(data)
		if err != nil {
			return nil, fmt.Errorf("can't parse application schema %q: %w", name, err)
		}
		return s, nil
	})
}
