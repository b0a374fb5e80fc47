package model

import "time"

// TableShape identifies the kind of table on the floor plan.
// Reserve tables are held-back overflow capacity: they stay out of the
// regular fullness statistics until at least one guest is assigned to them.
type TableShape string

const (
	TableShapeSquare    TableShape = "regular-square"
	TableShapeRectangle TableShape = "regular-rectangle"
	TableShapeReserve   TableShape = "reserve"
)

// IsValid reports whether the shape is one of the known variants.
func (s TableShape) IsValid() bool {
	switch s {
	case TableShapeSquare, TableShapeRectangle, TableShapeReserve:
		return true
	}
	return false
}

// Table represents a physical table with finite capacity.
// Position (X, Y) is used only by the rendering client and is opaque here.
type Table struct {
	ID       string     `json:"id"`
	EventID  string     `json:"event_id"`
	Number   *int       `json:"number,omitempty"`
	Name     *string    `json:"name,omitempty"`
	Capacity int        `json:"capacity"`
	Shape    TableShape `json:"shape"`
	X        *float64   `json:"x,omitempty"`
	Y        *float64   `json:"y,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// IsReserve reports whether the table is held-back overflow capacity.
func (t *Table) IsReserve() bool {
	return t.Shape == TableShapeReserve
}

// TotalCapacity sums capacity over all tables, regular and reserve alike.
// It is the theoretical upper bound for the event, not a live-seating bound.
func TotalCapacity(tables []*Table) int {
	total := 0
	for _, t := range tables {
		total += t.Capacity
	}
	return total
}

// Constraints
const (
	MaxTableNameLength = 100
	MaxTableCapacity   = 1000
)

// CreateTableRequest represents a request to add a table to the floor plan
type CreateTableRequest struct {
	Number   *int       `json:"number,omitempty"`
	Name     *string    `json:"name,omitempty"`
	Capacity int        `json:"capacity"`
	Shape    TableShape `json:"shape"`
	X        *float64   `json:"x,omitempty"`
	Y        *float64   `json:"y,omitempty"`
}

// UpdateTableRequest represents a partial update to a table
type UpdateTableRequest struct {
	Number   *int        `json:"number,omitempty"`
	Name     *string     `json:"name,omitempty"`
	Capacity *int        `json:"capacity,omitempty"`
	Shape    *TableShape `json:"shape,omitempty"`
	X        *float64    `json:"x,omitempty"`
	Y        *float64    `json:"y,omitempty"`
}

// Validate validates a CreateTableRequest
func (r *CreateTableRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Capacity <= 0 {
		errors = append(errors, FieldError{Field: "capacity", Message: "capacity must be positive"})
	} else if r.Capacity > MaxTableCapacity {
		errors = append(errors, FieldError{Field: "capacity", Message: "capacity too large"})
	}

	if r.Shape == "" {
		errors = append(errors, FieldError{Field: "shape", Message: "shape is required"})
	} else if !r.Shape.IsValid() {
		errors = append(errors, FieldError{Field: "shape", Message: "invalid shape"})
	}

	if r.Name != nil && len(*r.Name) > MaxTableNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name too long"})
	}

	return errors
}

// Validate validates an UpdateTableRequest
func (r *UpdateTableRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Capacity != nil {
		if *r.Capacity <= 0 {
			errors = append(errors, FieldError{Field: "capacity", Message: "capacity must be positive"})
		} else if *r.Capacity > MaxTableCapacity {
			errors = append(errors, FieldError{Field: "capacity", Message: "capacity too large"})
		}
	}

	if r.Shape != nil && !r.Shape.IsValid() {
		errors = append(errors, FieldError{Field: "shape", Message: "invalid shape"})
	}

	if r.Name != nil && len(*r.Name) > MaxTableNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name too long"})
	}

	return errors
}
