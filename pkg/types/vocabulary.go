// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
	"strings"
	"sync"
)

// Vocabulary is a vocabulary type: a list of known keywords.
// Each supported schema version defines an instance of this type.
type Vocabulary struct {
	// The name of this schema version, for messages.
	// Something like draft7.
	Name string
	// The URI that describes this schema version.
	// The value of the $schema keyword, without any trailing '#'.
	Schema string
	// The keywords of this schema version.
	Keywords map[string]*Keyword
	// The sorting function of this schema.
	// Used to sort the keywords of an instance of the schema
	// into evaluation order.
	Cmp func(string, string) int
}

// A registry is a mapping from schema name to Vocabulary.
type registry struct {
	mu      sync.Mutex
	mapping map[string]*Vocabulary
	defval  *Vocabulary // default vocabulary
}

// add adds an item to the registry.
func (r *registry) add(s string, v *Vocabulary, def bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mapping == nil {
		r.mapping = make(map[string]*Vocabulary)
	}
	if _, found := r.mapping[s]; found {
		panic(fmt.Sprintf("jsonschema: multiple attempts to add %q to registry", s))
	}
	r.mapping[s] = v
	if def {
		if r.defval != nil {
			panic("jsonschema: multiple default vocabularies")
		}
		r.defval = v
	}
}

// lookup returns an element from the registry,
// or nil if not present.
func (r *registry) lookup(s string) *Vocabulary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mapping[s]
}

// def returns the default vocabulary,
// or nil if there isn't one.
func (r *registry) def() *Vocabulary {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.defval != nil {
		return r.defval
	}
	if len(r.mapping) == 1 {
		for _, v := range r.mapping {
			return v
		}
	}
	return nil
}

// reg is the global registry.
var reg registry

// RegisterVocabulary registers a vocabulary.
// The def argument is true for the default vocabulary.
// It's normally not necessary to call this;
// importing a JSON schema version package will register it.
func RegisterVocabulary(v *Vocabulary, def bool) {
	reg.add(v.Schema, v, def)
}

// LookupVocabulary returns a registered vocabulary, or nil if no vocabulary
// was registered under that name.
// Both http and https forms of the URI are accepted.
func LookupVocabulary(s string) *Vocabulary {
	// For draft7 we can see
	// "http://json-schema.org/draft-07/schema#"
	s = strings.TrimSuffix(s, "#")
	if v := reg.lookup(s); v != nil {
		return v
	}
	if rest, ok := strings.CutPrefix(s, "https://"); ok {
		return reg.lookup("http://" + rest)
	}
	return nil
}

// DefaultVocabulary returns the default vocabulary, or nil if there isn't one.
func DefaultVocabulary() *Vocabulary {
	return reg.def()
}
