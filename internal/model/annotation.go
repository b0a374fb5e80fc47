package model

import "time"

// Annotation is a free-form positioned note on the floor plan. It carries no
// relationship to capacity; text and position are stored verbatim.
type Annotation struct {
	ID      string  `json:"id"`
	EventID string  `json:"event_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Text    string  `json:"text"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Constraints
const MaxAnnotationTextLength = 500

// CreateAnnotationRequest represents a request to place a note
type CreateAnnotationRequest struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// UpdateAnnotationRequest represents a partial update to a note
type UpdateAnnotationRequest struct {
	X    *float64 `json:"x,omitempty"`
	Y    *float64 `json:"y,omitempty"`
	Text *string  `json:"text,omitempty"`
}

// Validate validates a CreateAnnotationRequest
func (r *CreateAnnotationRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Text == "" {
		errors = append(errors, FieldError{Field: "text", Message: "text is required"})
	} else if len(r.Text) > MaxAnnotationTextLength {
		errors = append(errors, FieldError{Field: "text", Message: "text too long"})
	}

	return errors
}

// Validate validates an UpdateAnnotationRequest
func (r *UpdateAnnotationRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Text != nil {
		if *r.Text == "" {
			errors = append(errors, FieldError{Field: "text", Message: "text cannot be empty"})
		} else if len(*r.Text) > MaxAnnotationTextLength {
			errors = append(errors, FieldError{Field: "text", Message: "text too long"})
		}
	}

	return errors
}
