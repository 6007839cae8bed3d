package fetch

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "ncschooldata/internal/errors"
)

// Request describes one dataset fetch. Year is zero for datasets that are
// not year-scoped; semantic year-range checks live in the validation
// package, this struct only carries the structural rules.
type Request struct {
	Dataset     string `json:"dataset" validate:"required,dataset"`
	Year        int    `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	Proficiency string `json:"proficiency" validate:"omitempty,oneof=CCR GLP both"`
}

// newValidator builds the request validator with the custom dataset rule
// registered and JSON tag names in error messages.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("dataset", isKnownDataset)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// isKnownDataset accepts only the dataset names the service can serve.
func isKnownDataset(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case DatasetEnrollment, DatasetAssessment, DatasetDirectory:
		return true
	}
	return false
}

// validateRequest checks req against its struct tags and converts
// validator failures into the invalid-input error type.
func (s *Service) validateRequest(req Request) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewInvalidInputError(err.Error())
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, formatFieldError(fe))
	}
	return apperrors.NewInvalidInputError(strings.Join(messages, "; "))
}

// formatFieldError formats a single validation failure
func formatFieldError(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "dataset":
		return fmt.Sprintf("%s must be one of: %s",
			field, strings.Join([]string{DatasetEnrollment, DatasetAssessment, DatasetDirectory}, ", "))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Replace(err.Param(), " ", ", ", -1))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, err.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, err.Tag())
	}
}
