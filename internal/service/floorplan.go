package service

import (
	"context"

	"github.com/placecard/api/internal/model"
)

// FloorPlanService manages the table collection and floor-plan annotations.
type FloorPlanService struct {
	tables      TableRepositoryInterface
	annotations AnnotationRepositoryInterface
}

// AnnotationRepositoryInterface defines the annotation repository interface
type AnnotationRepositoryInterface interface {
	Create(ctx context.Context, annotation *model.Annotation) error
	Get(ctx context.Context, annotationID string) (*model.Annotation, error)
	ListByEvent(ctx context.Context, eventID string) ([]*model.Annotation, error)
	Update(ctx context.Context, annotationID string, updates map[string]interface{}) (*model.Annotation, error)
	Delete(ctx context.Context, annotationID string) error
}

// NewFloorPlanService creates a new floor plan service
func NewFloorPlanService(tables TableRepositoryInterface, annotations AnnotationRepositoryInterface) *FloorPlanService {
	return &FloorPlanService{
		tables:      tables,
		annotations: annotations,
	}
}

// ListTables retrieves all tables for an event
func (s *FloorPlanService) ListTables(ctx context.Context, eventID string) ([]*model.Table, error) {
	if eventID == "" {
		return nil, ErrEventIDRequired
	}
	return s.tables.ListByEvent(ctx, eventID)
}

// GetTable retrieves a table by ID
func (s *FloorPlanService) GetTable(ctx context.Context, tableID string) (*model.Table, error) {
	if tableID == "" {
		return nil, ErrTableIDRequired
	}
	if err := requireRecordID(tableID, "table"); err != nil {
		return nil, err
	}

	table, err := s.tables.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}
	return table, nil
}

// CreateTable adds a table to the floor plan. Capacity must be positive and
// the shape one of the known variants.
func (s *FloorPlanService) CreateTable(ctx context.Context, eventID string, req *model.CreateTableRequest) (*model.Table, error) {
	if eventID == "" {
		return nil, ErrEventIDRequired
	}
	if req.Capacity <= 0 || req.Capacity > model.MaxTableCapacity {
		return nil, ErrInvalidCapacity
	}
	if !req.Shape.IsValid() {
		return nil, ErrInvalidShape
	}

	table := &model.Table{
		EventID:  eventID,
		Number:   req.Number,
		Name:     req.Name,
		Capacity: req.Capacity,
		Shape:    req.Shape,
		X:        req.X,
		Y:        req.Y,
	}

	if err := s.tables.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// UpdateTable applies a partial update. Reducing capacity below the table's
// current occupancy is allowed: no one is evicted, and the table simply
// reports as over-full in the statistics until someone is moved off it.
func (s *FloorPlanService) UpdateTable(ctx context.Context, tableID string, req *model.UpdateTableRequest) (*model.Table, error) {
	if tableID == "" {
		return nil, ErrTableIDRequired
	}
	if err := requireRecordID(tableID, "table"); err != nil {
		return nil, err
	}

	table, err := s.tables.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	updates := make(map[string]interface{})
	if req.Number != nil {
		updates["number"] = *req.Number
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 || *req.Capacity > model.MaxTableCapacity {
			return nil, ErrInvalidCapacity
		}
		updates["capacity"] = *req.Capacity
	}
	if req.Shape != nil {
		if !req.Shape.IsValid() {
			return nil, ErrInvalidShape
		}
		updates["shape"] = string(*req.Shape)
	}
	if req.X != nil {
		updates["x"] = *req.X
	}
	if req.Y != nil {
		updates["y"] = *req.Y
	}

	if len(updates) == 0 {
		return table, nil
	}

	updated, err := s.tables.Update(ctx, table.ID, updates)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTable removes a table. Guests seated at it are unassigned in the same
// write, so deletion can never leave seated guests pointing at nothing.
func (s *FloorPlanService) DeleteTable(ctx context.Context, tableID string) error {
	if tableID == "" {
		return ErrTableIDRequired
	}
	if err := requireRecordID(tableID, "table"); err != nil {
		return err
	}

	table, err := s.tables.Get(ctx, tableID)
	if err != nil {
		return err
	}
	if table == nil {
		return ErrTableNotFound
	}

	return s.tables.Delete(ctx, table.ID)
}

// ListAnnotations retrieves all floor-plan notes for an event
func (s *FloorPlanService) ListAnnotations(ctx context.Context, eventID string) ([]*model.Annotation, error) {
	if eventID == "" {
		return nil, ErrEventIDRequired
	}
	return s.annotations.ListByEvent(ctx, eventID)
}

// GetAnnotation retrieves a single note by ID
func (s *FloorPlanService) GetAnnotation(ctx context.Context, annotationID string) (*model.Annotation, error) {
	if annotationID == "" {
		return nil, ErrAnnotationIDRequired
	}
	if err := requireRecordID(annotationID, "annotation"); err != nil {
		return nil, err
	}

	annotation, err := s.annotations.Get(ctx, annotationID)
	if err != nil {
		return nil, err
	}
	if annotation == nil {
		return nil, ErrAnnotationNotFound
	}
	return annotation, nil
}

// CreateAnnotation places a free-form note on the floor plan
func (s *FloorPlanService) CreateAnnotation(ctx context.Context, eventID string, req *model.CreateAnnotationRequest) (*model.Annotation, error) {
	if eventID == "" {
		return nil, ErrEventIDRequired
	}
	if req.Text == "" {
		return nil, ErrAnnotationTextEmpty
	}

	annotation := &model.Annotation{
		EventID: eventID,
		X:       req.X,
		Y:       req.Y,
		Text:    req.Text,
	}

	if err := s.annotations.Create(ctx, annotation); err != nil {
		return nil, err
	}
	return annotation, nil
}

// UpdateAnnotation edits a note's text or moves it
func (s *FloorPlanService) UpdateAnnotation(ctx context.Context, annotationID string, req *model.UpdateAnnotationRequest) (*model.Annotation, error) {
	if annotationID == "" {
		return nil, ErrAnnotationIDRequired
	}
	if err := requireRecordID(annotationID, "annotation"); err != nil {
		return nil, err
	}

	annotation, err := s.annotations.Get(ctx, annotationID)
	if err != nil {
		return nil, err
	}
	if annotation == nil {
		return nil, ErrAnnotationNotFound
	}

	updates := make(map[string]interface{})
	if req.Text != nil {
		if *req.Text == "" {
			return nil, ErrAnnotationTextEmpty
		}
		updates["text"] = *req.Text
	}
	if req.X != nil {
		updates["x"] = *req.X
	}
	if req.Y != nil {
		updates["y"] = *req.Y
	}

	if len(updates) == 0 {
		return annotation, nil
	}

	updated, err := s.annotations.Update(ctx, annotation.ID, updates)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteAnnotation removes a note from the floor plan
func (s *FloorPlanService) DeleteAnnotation(ctx context.Context, annotationID string) error {
	if annotationID == "" {
		return ErrAnnotationIDRequired
	}
	if err := requireRecordID(annotationID, "annotation"); err != nil {
		return err
	}

	annotation, err := s.annotations.Get(ctx, annotationID)
	if err != nil {
		return err
	}
	if annotation == nil {
		return ErrAnnotationNotFound
	}

	return s.annotations.Delete(ctx, annotation.ID)
}
