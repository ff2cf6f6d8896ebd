// Course Recommender - Course Catalog Recommendations and Analytics
// Copyright 2026 Puneet J. (puneet-jr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puneet-jr/course-recommender

// Package validation provides struct validation using
// go-playground/validator v10 behind a thread-safe singleton. Request
// structs in the API layer declare constraints with `validate` tags and
// call ValidateStruct before touching the engine.
//
//	type SearchRequest struct {
//	    MinRating float64 `validate:"min=0,max=5"`
//	    Limit     int     `validate:"min=0,max=500"`
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// RequestValidationError collects per-field validation failures into one
// error with a readable combined message.
type RequestValidationError struct {
	fields   []string
	messages []string
}

// Fields returns the names of the fields that failed.
func (ve *RequestValidationError) Fields() []string {
	return ve.fields
}

// Error implements the error interface.
func (ve *RequestValidationError) Error() string {
	if len(ve.messages) == 0 {
		return "validation failed"
	}
	return strings.Join(ve.messages, "; ")
}

// getValidator returns the singleton validator, building it on first use.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validates a struct against its `validate` tags.
// Returns a *RequestValidationError describing every failed field, or
// nil when the struct is valid.
func ValidateStruct(s interface{}) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := &RequestValidationError{}
	for _, fe := range verrs {
		out.fields = append(out.fields, fe.Field())
		out.messages = append(out.messages, describe(fe))
	}
	return out
}

// describe renders one field error as a short human-readable message.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
