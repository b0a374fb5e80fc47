package model

import "time"

// CategorySide tags which side of the event a category belongs to.
// Purely organizational; no capacity semantics.
type CategorySide string

const (
	CategorySideHost  CategorySide = "host"
	CategorySideGuest CategorySide = "guest"
	CategorySideNone  CategorySide = "none"
)

// IsValid reports whether the side is one of the known variants.
func (s CategorySide) IsValid() bool {
	switch s {
	case CategorySideHost, CategorySideGuest, CategorySideNone:
		return true
	}
	return false
}

// Category groups guests for display sectioning.
type Category struct {
	ID      string       `json:"id"`
	EventID string       `json:"event_id"`
	Name    string       `json:"name"`
	Side    CategorySide `json:"side"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Constraints
const MaxCategoryNameLength = 100

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name string       `json:"name"`
	Side CategorySide `json:"side,omitempty"`
}

// UpdateCategoryRequest represents a partial update to a category
type UpdateCategoryRequest struct {
	Name *string       `json:"name,omitempty"`
	Side *CategorySide `json:"side,omitempty"`
}

// Validate validates a CreateCategoryRequest
func (r *CreateCategoryRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxCategoryNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name too long"})
	}

	if r.Side != "" && !r.Side.IsValid() {
		errors = append(errors, FieldError{Field: "side", Message: "invalid side"})
	}

	return errors
}

// Validate validates an UpdateCategoryRequest
func (r *UpdateCategoryRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name != nil {
		if *r.Name == "" {
			errors = append(errors, FieldError{Field: "name", Message: "name cannot be empty"})
		} else if len(*r.Name) > MaxCategoryNameLength {
			errors = append(errors, FieldError{Field: "name", Message: "name too long"})
		}
	}

	if r.Side != nil && !r.Side.IsValid() {
		errors = append(errors, FieldError{Field: "side", Message: "invalid side"})
	}

	return errors
}
