package middleware

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/pkg/validation"
)

// EnumSets are the enum tags used by the request DTOs
func EnumSets() validation.EnumSets {
	return validation.EnumSets{
		"advisorrole":    models.EnumValues(models.AdvisorRoles),
		"memberrole":     models.EnumValues(models.MemberRoles),
		"assignmentrole": models.EnumValues(models.AssignmentRoles),
		"eventstatus":    models.EnumValues(models.EventStatuses),
	}
}

// RegisterValidators installs the custom rules on gin's validator and makes
// field errors use JSON names
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(jsonFieldName)
	return validation.Register(v, EnumSets())
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}
