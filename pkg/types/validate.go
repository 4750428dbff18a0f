// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/altshiftab/eventschema/internal/validerr"
	"github.com/altshiftab/eventschema/pkg/format"
	"github.com/altshiftab/eventschema/pkg/notes"
)

// DefaultMaxDepth is the default limit on schema nesting
// during a single validation.
const DefaultMaxDepth = 1000

// ErrMaxDepth is returned, wrapped, when validation
// nests deeper than the permitted depth.
var ErrMaxDepth = errors.New("validation nesting too deep")

// Validate reports whether instance satisfies schema.
// If it does, this will return nil.
// If it does not, this will return an error with type either
// [*ValidationError] or [*ValidationErrors],
// holding every violated constraint in a deterministic order.
// A non-nil error with a different type indicates that
// validation could not complete.
//
// An instance is a value as decoded from JSON:
// nil, bool, float64, string, []any or map[string]any.
// Other Go numeric types, other slices,
// and other maps with string keys are also accepted.
func (s *Schema) Validate(instance any) error {
	return s.ValidateWithOpts(instance, nil)
}

// ValidateOpts describes validation options.
// These are uncommon so we use a separate method for them.
type ValidateOpts struct {
	// Formats selects the strictness of the format keyword.
	// The zero value is [format.Full].
	Formats format.Tier

	// MaxDepth limits how deeply subschemas may nest.
	// Zero means [DefaultMaxDepth].
	MaxDepth int
}

// maxDepth returns the effective depth limit.
func (opts *ValidateOpts) maxDepth() int {
	if opts == nil || opts.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return opts.MaxDepth
}

// FormatTier returns the effective format tier.
func (opts *ValidateOpts) FormatTier() format.Tier {
	if opts == nil {
		return format.Full
	}
	return opts.Formats
}

// ValidateWithOpts is like Validate but supports options.
func (s *Schema) ValidateWithOpts(instance any, opts *ValidateOpts) error {
	state := &ValidationState{
		Root: s,
		Opts: opts,
	}
	return s.ValidateSubSchema(instance, state)
}

// ValidateSubSchema reports whether instance satisfies schema,
// where schema is a sub-schema of some larger validation request.
// This is like Validate but also accepts the current validation state.
// The caller is responsible for pushing the instance and schema
// path tokens that lead to s.
func (s *Schema) ValidateSubSchema(instance any, state *ValidationState) error {
	subState, err := state.Child()
	if err != nil {
		return err
	}
	subState.Schema = s

	var topErr error
	for i, p := range s.Parts {
		if p.Keyword.Validate == nil {
			continue
		}
		subState.Index = i
		if err := p.Keyword.Validate(p.Value, instance, subState); err != nil {
			validerr.AddError(&topErr, err)
			if !validerr.IsValidationError(err) {
				break
			}
		}
		if subState.Notes.Halted() {
			break
		}
	}
	return topErr
}

// ValidationState is state we maintain while validating a schema.
// This does not apply to subschemas or parent schemas.
// This is exported for use by keyword implementations.
// It is not expected to be used by code that just wants to validate.
type ValidationState struct {
	// The root of the Schema being validated.
	Root *Schema
	// The Schema being validated.
	Schema *Schema
	// The index in Schema.Parts of the keyword currently being validated.
	Index int
	// Notes created during validation of Schema.
	Notes notes.Notes
	// Depth of tree when validating. Used to avoid runaway recursion.
	Depth int
	// Validation options. Nil for the defaults.
	Opts *ValidateOpts

	// InstancePath holds the JSON pointer tokens to the current location
	// within the instance being validated.
	InstancePath []string

	// SchemaPath holds the JSON pointer tokens to the current schema
	// from the root schema.
	SchemaPath []string
}

// Child returns a new ValidationState that is a child of vs.
// This can be used to validate a subschema without changing
// the notes stored in vs.
func (vs *ValidationState) Child() (*ValidationState, error) {
	if limit := vs.Opts.maxDepth(); vs.Depth >= limit {
		return nil, fmt.Errorf("%w: limit %d at %q", ErrMaxDepth, limit, vs.InstancePointer())
	}

	ret := &ValidationState{
		Root:         vs.Root,
		Schema:       vs.Schema,
		Index:        vs.Index,
		Depth:        vs.Depth + 1,
		Opts:         vs.Opts,
		InstancePath: vs.InstancePath,
		SchemaPath:   vs.SchemaPath,
	}
	return ret, nil
}

// PushInstanceToken appends a token to the instance path.
func (vs *ValidationState) PushInstanceToken(tok string) {
	vs.InstancePath = append(vs.InstancePath, tok)
}

// PopInstanceToken removes the last token from the instance path.
func (vs *ValidationState) PopInstanceToken() {
	if n := len(vs.InstancePath); n > 0 {
		vs.InstancePath = vs.InstancePath[:n-1]
	}
}

// PushSchemaTokens appends tokens to the schema path.
func (vs *ValidationState) PushSchemaTokens(toks ...string) {
	vs.SchemaPath = append(vs.SchemaPath, toks...)
}

// PopSchemaTokens removes the last n tokens from the schema path.
func (vs *ValidationState) PopSchemaTokens(n int) {
	vs.SchemaPath = vs.SchemaPath[:max(len(vs.SchemaPath)-n, 0)]
}

// InstancePointer returns the current instance location as a JSON pointer.
// The root is the empty string.
func (vs *ValidationState) InstancePointer() string {
	return pointer("", vs.InstancePath)
}

// SchemaPointer returns the current schema location as a
// JSON pointer in URI fragment form, starting with '#'.
func (vs *ValidationState) SchemaPointer() string {
	return pointer("#", vs.SchemaPath)
}

// pointer joins tokens into a JSON pointer, escaping per RFC 6901.
func pointer(prefix string, toks []string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	for _, t := range toks {
		sb.WriteByte('/')
		sb.WriteString(tokenEscaper.Replace(t))
	}
	return sb.String()
}

// tokenEscaper escapes a JSON pointer token.
var tokenEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// NewError returns a validation error for keyword at the
// current location. The schema path ends with the keyword.
func (vs *ValidationState) NewError(keyword string, params map[string]any, message string) *ValidationError {
	ve := vs.NewErrorAt(keyword, params, message)
	ve.SchemaPath += "/" + keyword
	return ve
}

// NewErrorAt is like NewError, but the schema path
// is the current schema itself.
func (vs *ValidationState) NewErrorAt(keyword string, params map[string]any, message string) *ValidationError {
	if params == nil {
		params = map[string]any{}
	}
	return &ValidationError{
		InstancePath: vs.InstancePointer(),
		SchemaPath:   vs.SchemaPointer(),
		Keyword:      keyword,
		Params:       params,
		Message:      message,
	}
}

// ValidationError is returned by a validation function
// when an instance fails validation.
type ValidationError = validerr.ValidationError

// ValidationErrors is a collection of ValidationError values.
type ValidationErrors = validerr.ValidationErrors

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	return validerr.IsValidationError(err)
}

// ValidationErrorList returns the validation errors in err, in order.
// It returns nil if err is nil or not a validation error.
func ValidationErrorList(err error) []*ValidationError {
	return validerr.List(err)
}
