package item

import (
	"fmt"

	"github.com/collecto-app/collecto-backend/internal/domain"
)

// CreateItemInput holds the parameters for creating an item.
type CreateItemInput struct {
	CategoryID int64
	Values     []domain.ValueInput
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate(maxValues int) error {
	var errs []domain.FieldError

	if i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	errs = append(errs, validateValues(i.Values, maxValues)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput holds the parameters for replacing an item's value set.
// CategoryID must match the item's existing category; items never move
// between categories.
type UpdateItemInput struct {
	ItemID     int64
	CategoryID int64
	Values     []domain.ValueInput
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate(maxValues int) error {
	var errs []domain.FieldError

	if i.ItemID <= 0 {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	errs = append(errs, validateValues(i.Values, maxValues)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteItemInput holds the parameters for deleting an item.
type DeleteItemInput struct {
	ItemID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteItemInput) Validate() error {
	if i.ItemID <= 0 {
		return domain.NewValidationError("item_id", "required")
	}
	return nil
}

// ListItemsInput holds the parameters for listing items of a category.
type ListItemsInput struct {
	CategoryID int64
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListItemsInput) Validate() error {
	if i.CategoryID <= 0 {
		return domain.NewValidationError("category_id", "required")
	}
	return nil
}

func validateValues(values []domain.ValueInput, maxValues int) []domain.FieldError {
	var errs []domain.FieldError

	if len(values) > maxValues {
		errs = append(errs, domain.FieldError{
			Field:   "values",
			Message: fmt.Sprintf("max %d values per item", maxValues),
		})
	}
	for _, v := range values {
		if v.FieldID <= 0 {
			errs = append(errs, domain.FieldError{Field: "values.field_id", Message: "required"})
		}
	}

	return errs
}
