package handler

import (
	"errors"

	"github.com/placecard/api/internal/database"
	"github.com/placecard/api/internal/model"
	"github.com/placecard/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// ===== Capacity Rejections → 409 =====
	// The one expected business error: carry the numbers that rejected the
	// assignment so clients can resynchronize their view.
	var capErr *service.CapacityExceededError
	if errors.As(err, &capErr) {
		return model.NewCapacityExceededError(capErr.Error(), capErr.Capacity, capErr.Occupied)
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrGuestNotFound):
		return model.NewNotFoundError("guest")
	case errors.Is(err, service.ErrTableNotFound):
		return model.NewNotFoundError("table")
	case errors.Is(err, service.ErrCategoryNotFound):
		return model.NewNotFoundError("category")
	case errors.Is(err, service.ErrAnnotationNotFound):
		return model.NewNotFoundError("annotation")

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrGuestNameRequired),
		errors.Is(err, service.ErrInvalidPartySize),
		errors.Is(err, service.ErrInvalidRSVPStatus):
		return model.NewValidationError([]model.FieldError{{Field: "guest", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidShape),
		errors.Is(err, service.ErrInvalidCapacity):
		return model.NewValidationError([]model.FieldError{{Field: "table", Message: err.Error()}})

	case errors.Is(err, service.ErrCategoryNameRequired),
		errors.Is(err, service.ErrInvalidCategorySide):
		return model.NewValidationError([]model.FieldError{{Field: "category", Message: err.Error()}})

	case errors.Is(err, service.ErrAnnotationTextEmpty):
		return model.NewValidationError([]model.FieldError{{Field: "annotation", Message: err.Error()}})

	case errors.Is(err, service.ErrEmptyBatch):
		return model.NewValidationError([]model.FieldError{{Field: "guest_ids", Message: err.Error()}})

	case errors.Is(err, service.ErrMalformedID):
		return model.NewValidationError([]model.FieldError{{Field: "id", Message: err.Error()}})

	// ===== Missing Identifiers → 400 =====
	case errors.Is(err, service.ErrEventIDRequired),
		errors.Is(err, service.ErrGuestIDRequired),
		errors.Is(err, service.ErrTableIDRequired),
		errors.Is(err, service.ErrCategoryIDRequired),
		errors.Is(err, service.ErrAnnotationIDRequired):
		return model.NewBadRequestError(err.Error())

	// ===== Record Store Errors → 502 =====
	case errors.Is(err, database.ErrConnection),
		errors.Is(err, database.ErrQuery):
		return model.NewPersistenceError("")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
