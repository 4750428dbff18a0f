// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format defines format checkers for the format keyword.
//
// Each format is available in two strictness tiers.
// The [Full] tier follows the grammar of the relevant RFC.
// The [Fast] tier uses looser regular expressions for the
// date and time formats, uri, uri-reference and email.
// A fast check never rejects a value that the full check accepts.
// All other formats are shared between the tiers.
//
// The registry is built when the package is initialized
// and is read-only afterward, so lookups are safe for
// concurrent use.
package format

import (
	"fmt"
	"slices"
)

// Tier selects the strictness of the format checks.
type Tier int

const (
	// Full follows the RFC grammars.
	Full Tier = iota
	// Fast uses faster, looser grammars.
	Fast
)

// String returns the name of the tier.
func (t Tier) String() string {
	switch t {
	case Full:
		return "full"
	case Fast:
		return "fast"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ParseTier converts "full" or "fast" to a [Tier].
func ParseTier(s string) (Tier, error) {
	switch s {
	case "full", "":
		return Full, nil
	case "fast":
		return Fast, nil
	default:
		return Full, fmt.Errorf("unknown format tier %q (want full or fast)", s)
	}
}

// Instance kinds a format applies to.
const (
	TypeString = "string"
	TypeNumber = "number"
)

// Definition describes a single named format.
type Definition struct {
	// Type is the instance kind the format applies to,
	// either [TypeString] or [TypeNumber].
	// Instances of other kinds always pass.
	Type string

	// Validate reports whether the instance matches the format.
	// It is only called with instances of kind Type.
	Validate func(any) bool

	// Compare orders two valid values of the format as instants,
	// applying any time zone offsets.
	// The bool result is false if either value is not valid
	// under the full grammar, even in the [Fast] tier,
	// so a value that passes the fast check may still not compare.
	// Compare is nil for formats without an ordering.
	Compare func(a, b string) (int, bool)
}

// registry maps a format name to its definition in each tier.
var registry = map[Tier]map[string]*Definition{
	Full: {},
	Fast: {},
}

// register records a format shared by both tiers.
func register(name string, def *Definition) {
	registry[Full][name] = def
	registry[Fast][name] = def
}

// registerTiers records a format that differs between tiers.
func registerTiers(name string, full, fast *Definition) {
	registry[Full][name] = full
	registry[Fast][name] = fast
}

// str wraps a string predicate as a Definition.
func str(fn func(string) bool) *Definition {
	return &Definition{
		Type: TypeString,
		Validate: func(v any) bool {
			s, ok := v.(string)
			return ok && fn(s)
		},
	}
}

// ordered is like str but also records a comparison function.
func ordered(fn func(string) bool, cmp func(a, b string) (int, bool)) *Definition {
	d := str(fn)
	d.Compare = cmp
	return d
}

// init registers the defined formats.
func init() {
	registerTiers("date", ordered(isValidDate, compareDate), ordered(fastDate, compareDate))
	registerTiers("time", ordered(isValidPartialTime, compareTime), ordered(fastTime, compareTime))
	registerTiers("date-time", ordered(isValidDateTime, compareDateTime), ordered(fastDateTime, compareDateTime))
	register("duration", str(isValidDuration))

	registerTiers("uri", str(isValidURI), str(fastURI))
	registerTiers("uri-reference", str(isValidURIReference), str(fastURIReference))
	register("uri-template", str(isValidURITemplate))

	registerTiers("email", str(isValidEmail), str(fastEmail))
	register("hostname", str(isValidHostname))
	register("ipv4", str(isValidIPv4))
	register("ipv6", str(isValidIPv6))
	register("regex", str(isValidRegex))
	register("uuid", str(isValidUUID))

	register("json-pointer", str(isValidJSONPointer))
	register("json-pointer-uri-fragment", str(isValidJSONPointerURIFragment))
	register("relative-json-pointer", str(isValidRelativeJSONPointer))

	register("byte", str(isValidByte))
	register("int32", &Definition{Type: TypeNumber, Validate: isInt32})
	register("int64", &Definition{Type: TypeNumber, Validate: isInt64})
	register("float", &Definition{Type: TypeNumber, Validate: isFiniteNumber})
	register("double", &Definition{Type: TypeNumber, Validate: isFiniteNumber})

	// These are advisory; any string is accepted.
	register("password", str(func(string) bool { return true }))
	register("binary", str(func(string) bool { return true }))
}

// Lookup returns the definition of the named format in the given tier.
// The bool result reports whether the format is known.
func Lookup(name string, tier Tier) (*Definition, bool) {
	m, ok := registry[tier]
	if !ok {
		return nil, false
	}
	def, ok := m[name]
	return def, ok
}

// Validate checks v against the named format.
// The first result reports whether v matches;
// the second reports whether the format is known.
// Instances of a kind the format does not apply to always match.
func Validate(name string, tier Tier, v any) (ok, known bool) {
	def, known := Lookup(name, tier)
	if !known {
		return false, false
	}
	return def.Check(v), true
}

// Check reports whether v satisfies the format,
// treating instances of another kind as matching.
func (d *Definition) Check(v any) bool {
	switch d.Type {
	case TypeString:
		if _, ok := v.(string); !ok {
			return true
		}
	case TypeNumber:
		if _, ok := ToFloat(v); !ok {
			return true
		}
	}
	return d.Validate(v)
}

// Compare orders a and b using the named format.
// The bool result is false if the format has no ordering
// or if either value does not parse.
func Compare(name string, tier Tier, a, b string) (int, bool) {
	def, ok := Lookup(name, tier)
	if !ok || def.Compare == nil {
		return 0, false
	}
	return def.Compare(a, b)
}

// Names returns the sorted names of all registered formats.
func Names() []string {
	names := make([]string, 0, len(registry[Full]))
	for name := range registry[Full] {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
