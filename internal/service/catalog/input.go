package catalog

import (
	"strings"

	"github.com/collecto-app/collecto-backend/internal/domain"
)

// AttributeDefInput is one attribute definition supplied on category
// creation or schema append.
type AttributeDefInput struct {
	Name string
	Type string
}

// CreateCategoryInput holds the parameters for creating a category.
// Attributes may be empty, and duplicate attribute names are not rejected —
// the schema is deliberately permissive.
type CreateCategoryInput struct {
	Name       string
	Attributes []AttributeDefInput
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	errs = append(errs, validateAttributeDefs(i.Attributes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddAttributesInput holds the parameters for appending attributes to an
// existing category schema.
type AddAttributesInput struct {
	CategoryID int64
	Attributes []AttributeDefInput
}

// Validate checks all fields and collects all errors.
func (i AddAttributesInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if len(i.Attributes) == 0 {
		errs = append(errs, domain.FieldError{Field: "attributes", Message: "at least one attribute required"})
	}

	errs = append(errs, validateAttributeDefs(i.Attributes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteCategoryInput holds the parameters for deleting a category.
type DeleteCategoryInput struct {
	CategoryID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteCategoryInput) Validate() error {
	if i.CategoryID <= 0 {
		return domain.NewValidationError("category_id", "required")
	}
	return nil
}

func validateAttributeDefs(defs []AttributeDefInput) []domain.FieldError {
	var errs []domain.FieldError
	for _, def := range defs {
		if strings.TrimSpace(def.Name) == "" {
			errs = append(errs, domain.FieldError{Field: "attributes.name", Message: "required"})
		}
		if len(def.Name) > 100 {
			errs = append(errs, domain.FieldError{Field: "attributes.name", Message: "max 100 characters"})
		}
		if strings.TrimSpace(def.Type) == "" {
			errs = append(errs, domain.FieldError{Field: "attributes.data_type", Message: "required"})
		}
	}
	return errs
}
