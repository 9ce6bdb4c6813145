// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

// Package validation provides struct validation using go-playground/validator
// v10 through a thread-safe singleton instance.
//
// Example usage:
//
//	type RecommendationRequest struct {
//	    TopN      int      `validate:"omitempty,min=1,max=50"`
//	    MinRating *float64 `validate:"omitempty,gte=0,lte=5"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    var verrs validation.Errors
//	    errors.As(err, &verrs) // field-level details
//	}
package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes a single field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Value   any    `json:"value"`
	Message string `json:"message"`
}

// Errors is the translated collection of field failures.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// instance returns the singleton validator, creating it on first use. The
// instance caches struct metadata, so sharing it is both safe and fast.
func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validates s against its `validate` tags. Returns nil when
// valid, or an Errors value with one entry per failed field.
func ValidateStruct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns this concrete type
	if !ok {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Value:   fe.Value(),
			Message: translate(fe),
		})
	}
	return out
}

// translate renders a human-readable message for a field error.
func translate(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
