// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validerr defines the errors returned by a failure to validate.
package validerr

import (
	"errors"
	"fmt"
)

// ValidationError describes a single violated constraint.
// The JSON field names are fixed; callers render them directly.
type ValidationError struct {
	// InstancePath is a JSON pointer to the offending value.
	// It is empty for the document root.
	InstancePath string `json:"instancePath"`

	// SchemaPath points at the keyword that fired,
	// such as "#/properties/events/items/required".
	SchemaPath string `json:"schemaPath"`

	// Keyword is the name of the keyword that fired.
	Keyword string `json:"keyword"`

	// Params holds keyword-specific detail,
	// such as the missing property of a required error.
	Params map[string]any `json:"params"`

	// Message is a human readable rendering of the error.
	Message string `json:"message"`
}

// Error returns the error message that a user should see.
// This implements the error interface.
func (ve *ValidationError) Error() string {
	loc := ve.InstancePath
	if loc == "" {
		loc = "(root)"
	}
	return fmt.Sprintf("%s: %s", loc, ve.Message)
}

// ValidationErrors is a collection of ValidationError values,
// in the order they were found.
type ValidationErrors struct {
	Errs []*ValidationError
}

// Error returns the error message that a user should see.
// This implements the error interface.
func (ves *ValidationErrors) Error() string {
	if len(ves.Errs) == 1 {
		return ves.Errs[0].Error()
	}
	errs := make([]error, len(ves.Errs))
	for i, ve := range ves.Errs {
		errs[i] = ve
	}
	return errors.Join(errs...).Error()
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	switch err.(type) {
	case *ValidationError, *ValidationErrors:
		return true
	}
	return false
}

// List returns the validation errors held by err, in order.
// It returns nil if err is nil or is not a validation error.
func List(err error) []*ValidationError {
	switch e := err.(type) {
	case *ValidationError:
		return []*ValidationError{e}
	case *ValidationErrors:
		return e.Errs
	}
	return nil
}

// AddError adds an error, which may be a validation error,
// to another error.
// A non-validation error replaces any validation errors,
// as it means that validation could not complete.
func AddError(perr *error, err error) {
	if err == nil {
		return
	}

	switch e := err.(type) {
	case *ValidationError:
		AddValidationErrorStruct(perr, e)
		return
	case *ValidationErrors:
		for _, ve := range e.Errs {
			AddValidationErrorStruct(perr, ve)
		}
		return
	}

	// The new error is not a validation error.

	if *perr == nil || IsValidationError(*perr) {
		*perr = err
	} else if unwrap, ok := (*perr).(interface{ Unwrap() []error }); ok && len(unwrap.Unwrap()) > 0 {
		*perr = errors.Join(append(unwrap.Unwrap(), err)...)
	} else {
		*perr = errors.Join(*perr, err)
	}
}

// AddValidationErrorStruct adds a [ValidationError] to an existing error.
// The provided ve should already have all fields populated.
func AddValidationErrorStruct(perr *error, ve *ValidationError) {
	if *perr == nil {
		*perr = ve
	} else if one, ok := (*perr).(*ValidationError); ok {
		*perr = &ValidationErrors{
			Errs: []*ValidationError{
				one,
				ve,
			},
		}
	} else if ves, ok := (*perr).(*ValidationErrors); ok {
		ves.Errs = append(ves.Errs, ve)
	} else {
		// Don't disturb an existing error that is not a validation error.
	}
}
