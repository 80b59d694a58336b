// Package validation registers the custom validator tags used by request DTOs.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Graduation and academic year bounds
const (
	MinYear = 1900
	MaxYear = 2100
)

// Custom tag names
const (
	TagYear     = "year"
	TagNotBlank = "notblank"
)

// EnumSets maps a validator tag to its allowed values, e.g. "advisorrole".
type EnumSets map[string][]string

// Register adds the custom rules to v. Enum tags apply to string fields;
// combine them with "dive" for slices.
func Register(v *validator.Validate, enums EnumSets) error {
	if err := v.RegisterValidation(TagYear, validateYear); err != nil {
		return fmt.Errorf("register %s: %w", TagYear, err)
	}
	if err := v.RegisterValidation(TagNotBlank, validateNotBlank); err != nil {
		return fmt.Errorf("register %s: %w", TagNotBlank, err)
	}

	for tag, values := range enums {
		allowed := make(map[string]struct{}, len(values))
		for _, value := range values {
			allowed[value] = struct{}{}
		}
		if err := v.RegisterValidation(tag, oneOfSet(allowed)); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// validateYear accepts zero (absent) and years within [MinYear, MaxYear].
func validateYear(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		year := field.Int()
		return year == 0 || (year >= MinYear && year <= MaxYear)
	default:
		return false
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

func oneOfSet(allowed map[string]struct{}) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		_, ok := allowed[field.String()]
		return ok
	}
}
