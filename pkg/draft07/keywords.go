// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft07

import (
	"cmp"
	"errors"
	"slices"

	"github.com/altshiftab/eventschema/internal/validator"
	"github.com/altshiftab/eventschema/pkg/types"
)

// validate adapts a keyword function with a typed argument
// to the signature of [types.Keyword.Validate].
func validate[T types.PartValue](fn func(T, any, *types.ValidationState) error) func(types.PartValue, any, *types.ValidationState) error {
	return func(arg types.PartValue, instance any, state *types.ValidationState) error {
		return fn(arg.(T), instance, state)
	}
}

// check adapts a typed check function to [types.Keyword.Check].
func check[T types.PartValue](fn func(T) error) func(types.PartValue) error {
	return func(arg types.PartValue) error {
		return fn(arg.(T))
	}
}

// The validating keywords.
var (
	KeywordType = &types.Keyword{
		Name:     "type",
		ArgType:  types.ArgTypeStringOrStrings,
		Validate: validate(validator.ValidateType),
		Check:    check(validator.CheckType),
	}
	KeywordRequired = &types.Keyword{
		Name:     "required",
		ArgType:  types.ArgTypeStrings,
		Validate: validate(validator.ValidateRequired),
	}
	KeywordAdditionalProperties = &types.Keyword{
		Name:     "additionalProperties",
		ArgType:  types.ArgTypeSchema,
		Validate: validate(validator.ValidateAdditionalProperties),
	}
	KeywordProperties = &types.Keyword{
		Name:     "properties",
		ArgType:  types.ArgTypeMapSchema,
		Validate: validate(validator.ValidateProperties),
	}
	KeywordMinItems = &types.Keyword{
		Name:     "minItems",
		ArgType:  types.ArgTypeInt,
		Validate: validate(validator.ValidateMinItems),
		Check:    check(validator.CheckMinItems),
	}
	KeywordItems = &types.Keyword{
		Name:     "items",
		ArgType:  types.ArgTypeSchema,
		Validate: validate(validator.ValidateItems),
	}
	KeywordMinimum = &types.Keyword{
		Name:     "minimum",
		ArgType:  types.ArgTypeFloat,
		Validate: validate(validator.ValidateMinimum),
	}
	KeywordMaximum = &types.Keyword{
		Name:     "maximum",
		ArgType:  types.ArgTypeFloat,
		Validate: validate(validator.ValidateMaximum),
	}
	KeywordFormat = &types.Keyword{
		Name:     "format",
		ArgType:  types.ArgTypeString,
		Validate: validate(validator.ValidateFormat),
		Check:    check(validator.CheckFormat),
	}
	KeywordEnum = &types.Keyword{
		Name:     "enum",
		ArgType:  types.ArgTypeAny,
		Validate: validate(validator.ValidateEnum),
		Check:    check(validator.CheckEnum),
	}
)

// The annotation keywords.
var (
	KeywordID          = annotation("$id", types.ArgTypeString)
	KeywordTitle       = annotation("title", types.ArgTypeString)
	KeywordDescription = annotation("description", types.ArgTypeString)
	KeywordComment     = annotation("$comment", types.ArgTypeString)
	KeywordDefault     = annotation("default", types.ArgTypeAny)
	KeywordExamples    = annotation("examples", types.ArgTypeAny)
)

func annotation(name string, argType types.ArgType) *types.Keyword {
	return &types.Keyword{
		Name:     name,
		ArgType:  argType,
		Validate: validator.ValidateTrue,
	}
}

// keywordOrder is the evaluation order.
// A type mismatch stops evaluation, so type comes first.
var keywordOrder = []*types.Keyword{
	KeywordType,
	KeywordRequired,
	KeywordAdditionalProperties,
	KeywordProperties,
	KeywordMinItems,
	KeywordItems,
	KeywordMinimum,
	KeywordMaximum,
	KeywordFormat,
	KeywordEnum,
	KeywordID,
	KeywordTitle,
	KeywordDescription,
	KeywordComment,
	KeywordDefault,
	KeywordExamples,
}

// unsupported lists keywords whose meaning would change the result
// but which are not implemented. A schema using one is rejected.
var unsupported = []string{"$ref", "allOf", "anyOf", "oneOf", "not", "if", "then", "else"}

// keywordMap maps keyword names to keywords.
var keywordMap = func() map[string]*types.Keyword {
	m := make(map[string]*types.Keyword, len(keywordOrder)+len(unsupported))
	for _, k := range keywordOrder {
		m[k.Name] = k
	}
	for _, name := range unsupported {
		m[name] = &types.Keyword{
			Name:     name,
			ArgType:  types.ArgTypeAny,
			Validate: validator.ValidateTrue,
			Check: func(types.PartValue) error {
				return errors.New("keyword not supported")
			},
		}
	}
	return m
}()

// keywordRank returns the position of name in the evaluation order.
// Unknown keywords, including $schema, sort after all known ones.
func keywordRank(name string) int {
	if i := slices.IndexFunc(keywordOrder, func(k *types.Keyword) bool { return k.Name == name }); i >= 0 {
		return i
	}
	return len(keywordOrder)
}

// keywordCmp is the Vocabulary.Cmp field.
func keywordCmp(a, b string) int {
	if c := cmp.Compare(keywordRank(a), keywordRank(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}
