package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/shared/errors"
)

// PauseDaysTag validates that an int field is one of the configured pause durations.
const PauseDaysTag = "pause_days"

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// RegisterPauseDurations installs the pause_days rule on the package validator and
// on gin's binding validator. Calling it again replaces the allowed set.
func RegisterPauseDurations(durations []int) error {
	allowed := append([]int(nil), durations...)
	fn := func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return lo.Contains(allowed, int(fl.Field().Int()))
		default:
			return false
		}
	}

	if err := validate.RegisterValidation(PauseDaysTag, fn); err != nil {
		return fmt.Errorf("failed to register %s validation: %w", PauseDaysTag, err)
	}
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		engine.RegisterTagNameFunc(jsonTagName)
		if err := engine.RegisterValidation(PauseDaysTag, fn); err != nil {
			return fmt.Errorf("failed to register %s binding validation: %w", PauseDaysTag, err)
		}
	}
	return nil
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s any) error {
	return TranslateValidationError(validate.Struct(s))
}

// TranslateValidationError turns validator and JSON binding failures into a
// validation AppError. Other errors are returned unchanged.
func TranslateValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError("Invalid request body", err.Error())
	}

	messages := lo.Map(validationErrors, func(fe validator.FieldError, _ int) string {
		return getFieldErrorMessage(fe)
	})
	return errors.NewValidationError("Validation failed", strings.Join(messages, "; "))
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case PauseDaysTag:
		return fmt.Sprintf("%s is not an offered pause duration", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}

// ParseUintParam reads a positive integer path parameter.
func ParseUintParam(c *gin.Context, name, entityName string) (uint, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + entityName + " ID format")
	}
	return uint(id), nil
}
