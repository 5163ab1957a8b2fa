package service

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"scoutquest/internal/model"
	"scoutquest/internal/progression"
	"scoutquest/pkg/auth"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

// ValidationError carries one message per offending field, keyed by its JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type SignUpInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=72,bcrypt"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Name            string `json:"name" validate:"required,min=2"`
}

type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateScoutInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72,bcrypt"`
	Name     string `json:"name" validate:"required,min=2"`
	Points   int    `json:"points" validate:"gte=0"`
	IsAdmin  bool   `json:"is_admin"`
}

type UpdateScoutInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Points  int    `json:"points" validate:"gte=0"`
	IsAdmin bool   `json:"is_admin"`
}

type AchievementInput struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Points       int      `json:"points" validate:"min=1"`
	Category     string   `json:"category" validate:"required,category"`
	Level        string   `json:"level" validate:"required,level"`
	Requirements []string `json:"requirements" validate:"dive,required"`
	BadgeImage   string   `json:"badge_image"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return progression.KnownCategory(fl.Field().String())
	})
	_ = v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		return model.AchievementLevel(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("bcrypt", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= auth.MaxPasswordBytes
	})

	return v
}

func validateInput(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrors))}
	for _, fe := range fieldErrors {
		field := fe.Field()
		if _, seen := out.Fields[field]; !seen {
			out.Fields[field] = fieldMessage(fe)
		}
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label(fe.Field()))
	case "email":
		return "Please enter a valid email address"
	case "eqfield":
		return "Passwords don't match"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label(fe.Field()), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label(fe.Field()), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", label(fe.Field()), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label(fe.Field()), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be negative", label(fe.Field()))
	case "category":
		return "Unknown achievement category"
	case "level":
		return "Level must be one of: beginner, intermediate, advanced"
	case "bcrypt":
		return fmt.Sprintf("%s must be at most %d bytes", label(fe.Field()), auth.MaxPasswordBytes)
	}
	return fmt.Sprintf("%s is invalid", label(fe.Field()))
}

func label(field string) string {
	field = strings.ReplaceAll(field, "_", " ")
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
