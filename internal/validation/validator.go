// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

// Package validation wraps a singleton go-playground/validator instance.
//
// Field names in errors are taken from json tags, so messages match what the
// client sent:
//
//	type RateRequest struct {
//	    UserID   string  `json:"user_id" validate:"user_id"`
//	    RecipeID int     `json:"recipe_id" validate:"gt=0"`
//	    Rating   float64 `json:"rating" validate:"gte=1,lte=5"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// MaxUserIDLength bounds user identifiers.
const MaxUserIDLength = 128

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError is a single failed field.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the json name of the failed field.
func (e *ValidationError) Field() string { return e.field }

// Tag returns the failed validation tag.
func (e *ValidationError) Tag() string { return e.tag }

// Param returns the tag parameter, e.g. "5" for lte=5.
func (e *ValidationError) Param() string { return e.param }

// Value returns the rejected value.
func (e *ValidationError) Value() interface{} { return e.value }

func (e *ValidationError) Error() string { return e.message }

// RequestValidationError collects every failed field of one struct.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the failed fields.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.errors))
	for i := range ve.errors {
		messages[i] = ve.errors[i].message
	}
	return strings.Join(messages, "; ")
}

// APIError mirrors models.APIError without importing it.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts the errors into a VALIDATION_ERROR payload.
func (ve *RequestValidationError) ToAPIError() *APIError {
	switch len(ve.errors) {
	case 0:
		return &APIError{Code: "VALIDATION_ERROR", Message: "Validation failed"}
	case 1:
		e := ve.errors[0]
		return &APIError{
			Code:    "VALIDATION_ERROR",
			Message: e.message,
			Details: map[string]interface{}{"field": e.field, "tag": e.tag, "value": e.value},
		}
	}

	fields := make([]map[string]interface{}, len(ve.errors))
	for i, e := range ve.errors {
		fields[i] = map[string]interface{}{"field": e.field, "tag": e.tag, "message": e.message}
	}
	return &APIError{
		Code:    "VALIDATION_ERROR",
		Message: ve.Error(),
		Details: map[string]interface{}{"fields": fields},
	}
}

// GetValidator returns the shared validator.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		if err := validate.RegisterValidation("user_id", validateUserID); err != nil {
			panic(fmt.Sprintf("register user_id validator: %v", err))
		}
	})
	return validate
}

// ValidateStruct returns nil or a *RequestValidationError.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{errors: []ValidationError{
			{field: "unknown", tag: "unknown", message: err.Error()},
		}}
	}

	out := make([]ValidationError, len(validationErrs))
	for i, fe := range validationErrs {
		out[i] = ValidationError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			value:   fe.Value(),
			message: translateError(fe),
		}
	}
	return &RequestValidationError{errors: out}
}

// ValidateUserID checks a bare user id, e.g. one taken from the URL path.
func ValidateUserID(id string) *RequestValidationError {
	req := struct {
		UserID string `json:"user_id" validate:"user_id"`
	}{UserID: id}
	return ValidateStruct(&req)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// validateUserID accepts 1..MaxUserIDLength runes that are not blank and
// contain no control characters.
func validateUserID(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.TrimSpace(s) == "" || len([]rune(s)) > MaxUserIDLength {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"user_id":  "%s must be 1-128 printable characters",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func translateError(fe validator.FieldError) string {
	field, tag, param := fe.Field(), fe.Tag(), fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	isString := fe.Kind() == reflect.String
	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
