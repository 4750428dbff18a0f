// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validator contains functions to handle different schema arguments.
// Each keyword has a Validate function, called during validation,
// and some have a Check function, called when a schema is built.
package validator

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/altshiftab/eventschema/internal/validerr"
	"github.com/altshiftab/eventschema/pkg/format"
	"github.com/altshiftab/eventschema/pkg/notes"
	"github.com/altshiftab/eventschema/pkg/types"
)

// ValidateTrue is used for keywords that always match.
// These keywords have meaning for the schema, but don't affect
// whether the schema validates an instance.
func ValidateTrue(types.PartValue, any, *types.ValidationState) error {
	return nil
}

// typeNames are the names accepted by the type keyword.
var typeNames = []string{"array", "boolean", "integer", "null", "number", "object", "string"}

// CheckType checks the argument of the type keyword.
func CheckType(arg types.PartStringOrStrings) error {
	list := arg.List()
	if len(list) == 0 {
		return errors.New("empty list of types")
	}
	for _, typ := range list {
		if !slices.Contains(typeNames, typ) {
			return fmt.Errorf("unsupported type %q", typ)
		}
	}
	return nil
}

// matchType reports whether instance has the JSON type typ.
func matchType(typ string, instance any) bool {
	switch typ {
	case "null":
		return instance == nil
	case "boolean":
		_, ok := instance.(bool)
		return ok
	case "object":
		_, ok := instanceObject(instance)
		return ok
	case "array":
		_, ok := instanceArray(instance)
		return ok
	case "string":
		_, ok := instance.(string)
		return ok
	case "number":
		_, ok := instanceFloat(instance)
		return ok
	case "integer":
		f, ok := instanceFloat(instance)
		return ok && format.IsIntegral(f)
	}
	return false
}

// ValidateType implements the type keyword.
// On a mismatch the rest of the schema is not evaluated.
func ValidateType(arg types.PartStringOrStrings, instance any, state *types.ValidationState) error {
	list := arg.List()
	for _, typ := range list {
		if matchType(typ, instance) {
			return nil
		}
	}
	state.Notes.Set(notes.Halt, true)
	joined := strings.Join(list, ",")
	return state.NewError("type",
		map[string]any{"type": joined},
		"must be "+joined)
}

// ValidateRequired implements the required keyword.
// Missing properties are reported in the order they are listed.
func ValidateRequired(arg types.PartStrings, instance any, state *types.ValidationState) error {
	m, ok := instanceObject(instance)
	if !ok {
		return nil
	}

	var topErr error
	for _, name := range arg {
		if _, found := m[name]; !found {
			validerr.AddValidationErrorStruct(&topErr, state.NewError("required",
				map[string]any{"missingProperty": name},
				fmt.Sprintf("must have required property '%s'", name)))
		}
	}
	return topErr
}

// ValidateProperties implements the properties keyword.
// Properties are visited in sorted order.
func ValidateProperties(arg types.PartMapSchema, instance any, state *types.ValidationState) error {
	m, ok := instanceObject(instance)
	if !ok {
		return nil
	}

	var topErr error
	for _, name := range instanceKeys(m) {
		s, ok := arg[name]
		if !ok {
			continue
		}
		err := validateAt(s, m[name], state, name, "properties", name)
		validerr.AddError(&topErr, err)
		if err != nil && !validerr.IsValidationError(err) {
			return topErr
		}
	}
	return topErr
}

// ValidateAdditionalProperties implements the additionalProperties keyword.
// A false schema reports each property not named by "properties";
// any other schema is applied to those properties.
func ValidateAdditionalProperties(arg types.PartSchema, instance any, state *types.ValidationState) error {
	m, ok := instanceObject(instance)
	if !ok {
		return nil
	}

	var known types.PartMapSchema
	if pv, ok := state.Schema.LookupKeyword("properties"); ok {
		known = pv.(types.PartMapSchema)
	}

	isBool, isTrue := arg.S.IsBoolSchema()
	if isBool && isTrue {
		return nil
	}

	var topErr error
	for _, name := range instanceKeys(m) {
		if _, ok := known[name]; ok {
			continue
		}
		if isBool {
			validerr.AddValidationErrorStruct(&topErr, state.NewError("additionalProperties",
				map[string]any{"additionalProperty": name},
				"must NOT have additional properties"))
			continue
		}
		err := validateAt(arg.S, m[name], state, name, "additionalProperties")
		validerr.AddError(&topErr, err)
		if err != nil && !validerr.IsValidationError(err) {
			return topErr
		}
	}
	return topErr
}

// CheckMinItems checks the argument of the minItems keyword.
func CheckMinItems(arg types.PartInt) error {
	if arg < 0 {
		return fmt.Errorf("negative value %d", arg)
	}
	return nil
}

// ValidateMinItems implements the minItems keyword.
func ValidateMinItems(arg types.PartInt, instance any, state *types.ValidationState) error {
	a, ok := instanceArray(instance)
	if !ok {
		return nil
	}
	if int64(len(a)) < int64(arg) {
		return state.NewError("minItems",
			map[string]any{"limit": int64(arg)},
			fmt.Sprintf("must NOT have fewer than %d items", arg))
	}
	return nil
}

// ValidateItems implements the items keyword.
func ValidateItems(arg types.PartSchema, instance any, state *types.ValidationState) error {
	a, ok := instanceArray(instance)
	if !ok {
		return nil
	}

	var topErr error
	for i, e := range a {
		err := validateAt(arg.S, e, state, strconv.Itoa(i), "items")
		validerr.AddError(&topErr, err)
		if err != nil && !validerr.IsValidationError(err) {
			return topErr
		}
	}
	return topErr
}

// validateAt validates instance against the subschema s,
// which is reached from the current schema by schemaToks
// and from the current instance by instanceTok.
func validateAt(s *types.Schema, instance any, state *types.ValidationState, instanceTok string, schemaToks ...string) error {
	state.PushInstanceToken(instanceTok)
	state.PushSchemaTokens(schemaToks...)
	err := s.ValidateSubSchema(instance, state)
	state.PopSchemaTokens(len(schemaToks))
	state.PopInstanceToken()
	return err
}

// ValidateMinimum implements the minimum keyword.
// NaN is below every minimum.
func ValidateMinimum(arg types.PartFloat, instance any, state *types.ValidationState) error {
	f, ok := instanceFloat(instance)
	if !ok {
		return nil
	}
	if !(f >= float64(arg)) {
		return state.NewError("minimum",
			map[string]any{"comparison": ">=", "limit": float64(arg)},
			"must be >= "+formatNumber(float64(arg)))
	}
	return nil
}

// ValidateMaximum implements the maximum keyword.
// NaN is above every maximum.
func ValidateMaximum(arg types.PartFloat, instance any, state *types.ValidationState) error {
	f, ok := instanceFloat(instance)
	if !ok {
		return nil
	}
	if !(f <= float64(arg)) {
		return state.NewError("maximum",
			map[string]any{"comparison": "<=", "limit": float64(arg)},
			"must be <= "+formatNumber(float64(arg)))
	}
	return nil
}

// CheckFormat checks that the format keyword names a known format.
func CheckFormat(arg types.PartString) error {
	if _, ok := format.Lookup(string(arg), format.Full); !ok {
		return fmt.Errorf("unknown format %q", arg)
	}
	return nil
}

// ValidateFormat implements the format keyword.
// Instances of a kind the format does not describe always match.
func ValidateFormat(arg types.PartString, instance any, state *types.ValidationState) error {
	def, ok := format.Lookup(string(arg), state.Opts.FormatTier())
	if !ok {
		return fmt.Errorf("unknown format %q", arg)
	}
	if def.Check(instance) {
		return nil
	}
	return state.NewError("format",
		map[string]any{"format": string(arg)},
		fmt.Sprintf("must match format %q", string(arg)))
}

// CheckEnum checks that the enum keyword has an array argument.
func CheckEnum(arg types.PartAny) error {
	if _, ok := arg.V.([]any); !ok {
		return fmt.Errorf("argument is %T, must be an array", arg.V)
	}
	return nil
}

// ValidateEnum implements the enum keyword.
func ValidateEnum(arg types.PartAny, instance any, state *types.ValidationState) error {
	s, ok := arg.V.([]any)
	if !ok {
		return fmt.Errorf(`"enum" argument is %T, must be []any`, arg.V)
	}
	for _, e := range s {
		if equal(instance, e) {
			return nil
		}
	}
	return state.NewError("enum",
		map[string]any{"allowedValues": s},
		"must be equal to one of the allowed values")
}

// instanceFloat returns the value of a numeric instance.
func instanceFloat(instance any) (float64, bool) {
	return format.ToFloat(instance)
}

// formatNumber formats a limit for an error message.
// Integral values are written without an exponent.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
