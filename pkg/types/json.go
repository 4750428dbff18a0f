// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/goccy/go-json"
)

// MarshalJSON marshals a [Schema] into JSON format.
// This implements [encoding/json.Marshaler].
func (s *Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.marshalSchema(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// marshalSchema marshals a [Schema] into JSON format,
// storing the results in buf.
func (s *Schema) marshalSchema(buf *bytes.Buffer) error {
	if isBoolSchema, isTrueSchema := s.IsBoolSchema(); isBoolSchema {
		if isTrueSchema {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	}

	buf.WriteByte('{')

	for i, part := range s.Parts {
		if i > 0 {
			buf.WriteByte(',')
		}

		fmt.Fprintf(buf, "%s:", encodeString(part.Keyword.Name))

		switch v := part.Value.(type) {
		case PartBool:
			fmt.Fprintf(buf, "%t", v)
		case PartString:
			buf.Write(encodeString(string(v)))
		case PartStrings:
			writeStrings(buf, v)
		case PartStringOrStrings:
			if v.Strings == nil {
				buf.Write(encodeString(v.String))
			} else {
				writeStrings(buf, v.Strings)
			}
		case PartInt:
			fmt.Fprintf(buf, "%d", v)
		case PartFloat:
			if math.Trunc(float64(v)) == float64(v) && math.Abs(float64(v)) < 1e21 {
				fmt.Fprintf(buf, "%.0f", float64(v))
			} else {
				fmt.Fprintf(buf, "%g", v)
			}
		case PartSchema:
			if err := v.S.marshalSchema(buf); err != nil {
				return err
			}
		case PartMapSchema:
			buf.WriteByte('{')
			// Sort the names for predictable results.
			names := slices.Sorted(maps.Keys(v))
			for i, name := range names {
				if i > 0 {
					buf.WriteByte(',')
				}
				fmt.Fprintf(buf, "%s:", encodeString(name))
				if err := v[name].marshalSchema(buf); err != nil {
					return err
				}
			}
			buf.WriteByte('}')
		case PartAny:
			data, err := json.Marshal(v.V)
			if err != nil {
				return err
			}
			buf.Write(data)
		default:
			return fmt.Errorf("schema.MarshalJSON: unexpected type %T", part.Value)
		}
	}

	buf.WriteByte('}')

	return nil
}

// writeStrings writes a JSON array of strings.
func writeStrings(buf *bytes.Buffer, strs []string) {
	buf.WriteByte('[')
	for i, s := range strs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encodeString(s))
	}
	buf.WriteByte(']')
}

// encodeString returns the JSON encoding of s.
func encodeString(s string) []byte {
	data, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("json.Marshal failed, which should be impossible: %v", err))
	}
	return data
}

// UnmarshalJSON decodes the JSON representation of a [Schema].
func (s *Schema) UnmarshalJSON(data []byte) error {
	s.Parts = s.Parts[:0:0]

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	return s.buildTopFromJSON("", v)
}

// SchemaFromJSON builds a [Schema] from a JSON value that has
// already been parsed. This could be used as something like
//
//	var v any
//	if err := json.Unmarshal(data, &v); err != nil { ... }
//	s, err := types.SchemaFromJSON(schemaID, v)
//
// The optional schemaID argument is something like [draft07.SchemaID].
// It is used if the value has no $schema keyword.
//
// Numbers may be float64 or any Go integer type,
// so values decoded from YAML are accepted as well.
func SchemaFromJSON(schemaID string, v any) (*Schema, error) {
	var s Schema
	if err := s.buildTopFromJSON(schemaID, v); err != nil {
		return nil, err
	}
	return &s, nil
}

// buildTopFromJSON builds a [Schema] from JSON parsed into the
// empty interface value v. This assumes that this is the root schema.
func (s *Schema) buildTopFromJSON(schemaID string, v any) error {
	version := schemaID
	if m, ok := v.(map[string]any); ok {
		if schemaVal, ok := m["$schema"]; ok {
			version, ok = schemaVal.(string)
			if !ok {
				return errors.New("jsonschema: $schema does not have a string value")
			}
			s.Parts = append(s.Parts,
				Part{
					&SchemaKeyword,
					PartString(version),
				},
			)
			m = maps.Clone(m)
			delete(m, "$schema")
		}
		v = m
	}

	var vocabulary *Vocabulary
	if version == "" {
		vocabulary = DefaultVocabulary()
		if vocabulary == nil {
			return errors.New("jsonschema: JSON schema version not specified and there is no default")
		}
	} else {
		vocabulary = LookupVocabulary(version)
		if vocabulary == nil {
			return fmt.Errorf("jsonschema: JSON schema version %q not recognized", version)
		}
	}

	return s.buildFromJSON(v, vocabulary)
}

// buildFromJSON builds a [Schema] from JSON parsed into the
// empty interface value v.
func (s *Schema) buildFromJSON(v any, vocabulary *Vocabulary) error {
	switch v := v.(type) {
	case bool:
		s.Parts = append(s.Parts, Part{
			&BoolKeyword,
			PartBool(v),
		})

	case map[string]any:
		// Build in a fixed order so that errors are deterministic.
		for _, keyword := range slices.Sorted(maps.Keys(v)) {
			if err := s.addKeywordFromJSON(keyword, v[keyword], vocabulary); err != nil {
				return err
			}
		}
		s.Finalize(vocabulary)

	default:
		return fmt.Errorf("jsonschema: unexpected type %T while JSON decoding schema", v)
	}
	return nil
}

// jsonNumber converts a decoded JSON or YAML number to a float64.
func jsonNumber(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// jsonStrings converts a decoded JSON array to a slice of strings.
func jsonStrings(keyword string, val any) ([]string, error) {
	vals, ok := val.([]any)
	if !ok {
		return nil, fmt.Errorf("jsonschema: %q argument is type %T, want array of string", keyword, val)
	}
	strs := make([]string, 0, len(vals))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("jsonschema: %q argument item %d is %T, want string", keyword, i, v)
		}
		strs = append(strs, s)
	}
	return strs, nil
}

// addKeywordFromJSON adds a [Schema] keyword and value parsed from JSON.
func (s *Schema) addKeywordFromJSON(keyword string, val any, vocabulary *Vocabulary) error {
	if len(keyword) == 0 {
		return errors.New("jsonschema: empty JSON keyword")
	}

	sk, ok := vocabulary.Keywords[keyword]
	if !ok {
		// Unrecognized keywords are ignored.
		// They do not affect the validation result.
		s.Parts = append(s.Parts, Part{
			Keyword: annotationKeyword(keyword),
			Value:   PartAny{val},
		})
		return nil
	}

	var spv PartValue
	switch sk.ArgType {
	case ArgTypeBool:
		b, ok := val.(bool)
		if !ok {
			return fmt.Errorf("jsonschema: %q argument is type %T, want bool", keyword, val)
		}
		spv = PartBool(b)
	case ArgTypeString:
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("jsonschema: %q argument is type %T, want string", keyword, val)
		}
		spv = PartString(s)
	case ArgTypeStrings:
		strs, err := jsonStrings(keyword, val)
		if err != nil {
			return err
		}
		spv = PartStrings(strs)
	case ArgTypeStringOrStrings:
		if s, ok := val.(string); ok {
			spv = PartStringOrStrings{String: s}
		} else {
			strs, err := jsonStrings(keyword, val)
			if err != nil {
				return fmt.Errorf("jsonschema: %q argument is type %T, want string or array of string", keyword, val)
			}
			spv = PartStringOrStrings{Strings: strs}
		}
	case ArgTypeInt:
		f, ok := jsonNumber(val)
		if !ok {
			return fmt.Errorf("jsonschema: %q argument is type %T, want integer", keyword, val)
		}
		if f != math.Trunc(f) {
			return fmt.Errorf("jsonschema: %q argument is non-integer, want integer", keyword)
		}
		spv = PartInt(f)
	case ArgTypeFloat:
		f, ok := jsonNumber(val)
		if !ok {
			return fmt.Errorf("jsonschema: %q argument is type %T, want number", keyword, val)
		}
		spv = PartFloat(f)
	case ArgTypeSchema:
		var sub Schema
		if err := sub.buildFromJSON(val, vocabulary); err != nil {
			return fmt.Errorf("%s: %w", keyword, err)
		}
		spv = PartSchema{&sub}
	case ArgTypeMapSchema:
		jm, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("jsonschema: %q argument is type %T, want object", keyword, val)
		}
		nm := make(map[string]*Schema, len(jm))
		for _, k := range slices.Sorted(maps.Keys(jm)) {
			var sub Schema
			if err := sub.buildFromJSON(jm[k], vocabulary); err != nil {
				return fmt.Errorf("%s/%s: %w", keyword, k, err)
			}
			nm[k] = &sub
		}
		spv = PartMapSchema(nm)
	case ArgTypeAny:
		spv = PartAny{val}
	default:
		panic("can't happen")
	}

	if sk.Check != nil {
		if err := sk.Check(spv); err != nil {
			return fmt.Errorf("jsonschema: %q: %w", keyword, err)
		}
	}

	s.Parts = append(s.Parts, Part{
		Keyword: sk,
		Value:   spv,
	})
	return nil
}
