package service

import (
	"context"
	"errors"
	"testing"

	"github.com/placecard/api/internal/model"
)

type mockAnnotationRepo struct {
	createFunc      func(ctx context.Context, annotation *model.Annotation) error
	getFunc         func(ctx context.Context, annotationID string) (*model.Annotation, error)
	listByEventFunc func(ctx context.Context, eventID string) ([]*model.Annotation, error)
	updateFunc      func(ctx context.Context, annotationID string, updates map[string]interface{}) (*model.Annotation, error)
	deleteFunc      func(ctx context.Context, annotationID string) error
}

func (m *mockAnnotationRepo) Create(ctx context.Context, annotation *model.Annotation) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, annotation)
	}
	return nil
}

func (m *mockAnnotationRepo) Get(ctx context.Context, annotationID string) (*model.Annotation, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, annotationID)
	}
	return nil, nil
}

func (m *mockAnnotationRepo) ListByEvent(ctx context.Context, eventID string) ([]*model.Annotation, error) {
	if m.listByEventFunc != nil {
		return m.listByEventFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *mockAnnotationRepo) Update(ctx context.Context, annotationID string, updates map[string]interface{}) (*model.Annotation, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, annotationID, updates)
	}
	return nil, nil
}

func (m *mockAnnotationRepo) Delete(ctx context.Context, annotationID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, annotationID)
	}
	return nil
}

// ============================================================================
// Table Tests
// ============================================================================

func TestCreateTable_ValidRequest_Persists(t *testing.T) {
	t.Parallel()

	var created *model.Table
	tableRepo := &mockTableRepo{
		createFunc: func(ctx context.Context, table *model.Table) error {
			created = table
			return nil
		},
	}
	svc := NewFloorPlanService(tableRepo, &mockAnnotationRepo{})

	table, err := svc.CreateTable(context.Background(), "event-1", &model.CreateTableRequest{
		Capacity: 8,
		Shape:    model.TableShapeRectangle,
		Number:   intPtr(4),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if table.Capacity != 8 || table.Shape != model.TableShapeRectangle {
		t.Errorf("unexpected table: %+v", table)
	}
	if created == nil {
		t.Error("expected table to be persisted")
	}
}

func TestCreateTable_NonPositiveCapacity_Rejected(t *testing.T) {
	t.Parallel()

	svc := NewFloorPlanService(&mockTableRepo{}, &mockAnnotationRepo{})

	for _, capacity := range []int{0, -3, model.MaxTableCapacity + 1} {
		_, err := svc.CreateTable(context.Background(), "event-1", &model.CreateTableRequest{
			Capacity: capacity,
			Shape:    model.TableShapeSquare,
		})
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("capacity %d: expected ErrInvalidCapacity, got %v", capacity, err)
		}
	}
}

func TestCreateTable_UnknownShape_Rejected(t *testing.T) {
	t.Parallel()

	svc := NewFloorPlanService(&mockTableRepo{}, &mockAnnotationRepo{})

	_, err := svc.CreateTable(context.Background(), "event-1", &model.CreateTableRequest{
		Capacity: 8,
		Shape:    "hexagon",
	})
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape, got %v", err)
	}
}

func TestUpdateTable_CapacityReduction_AllowedWithoutEviction(t *testing.T) {
	t.Parallel()

	// The table currently seats 6; reducing to 4 must go through so an
	// operator can correct a fat-fingered value. Stats surface the overflow.
	var written map[string]interface{}
	tableRepo := &mockTableRepo{
		getFunc: func(ctx context.Context, tableID string) (*model.Table, error) {
			return &model.Table{ID: tableID, Capacity: 8, Shape: model.TableShapeSquare}, nil
		},
		updateFunc: func(ctx context.Context, tableID string, updates map[string]interface{}) (*model.Table, error) {
			written = updates
			return &model.Table{ID: tableID, Capacity: 4, Shape: model.TableShapeSquare}, nil
		},
	}
	svc := NewFloorPlanService(tableRepo, &mockAnnotationRepo{})

	table, err := svc.UpdateTable(context.Background(), "table:1", &model.UpdateTableRequest{
		Capacity: intPtr(4),
	})
	if err != nil {
		t.Fatalf("expected capacity reduction to be allowed, got %v", err)
	}
	if table.Capacity != 4 {
		t.Errorf("expected capacity 4, got %d", table.Capacity)
	}
	if written["capacity"] != 4 {
		t.Errorf("expected capacity write, got %v", written)
	}
}

func TestUpdateTable_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewFloorPlanService(&mockTableRepo{}, &mockAnnotationRepo{})

	_, err := svc.UpdateTable(context.Background(), "table:missing", &model.UpdateTableRequest{
		Capacity: intPtr(4),
	})
	if !errors.Is(err, ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}
}

func TestDeleteTable_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewFloorPlanService(&mockTableRepo{}, &mockAnnotationRepo{})

	err := svc.DeleteTable(context.Background(), "table:missing")
	if !errors.Is(err, ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}
}

// ============================================================================
// Annotation Tests
// ============================================================================

func TestCreateAnnotation_EmptyText_Rejected(t *testing.T) {
	t.Parallel()

	svc := NewFloorPlanService(&mockTableRepo{}, &mockAnnotationRepo{})

	_, err := svc.CreateAnnotation(context.Background(), "event-1", &model.CreateAnnotationRequest{
		X: 10, Y: 20,
	})
	if !errors.Is(err, ErrAnnotationTextEmpty) {
		t.Errorf("expected ErrAnnotationTextEmpty, got %v", err)
	}
}

func TestCreateAnnotation_StoresTextAndPosition(t *testing.T) {
	t.Parallel()

	var created *model.Annotation
	annotationRepo := &mockAnnotationRepo{
		createFunc: func(ctx context.Context, annotation *model.Annotation) error {
			created = annotation
			return nil
		},
	}
	svc := NewFloorPlanService(&mockTableRepo{}, annotationRepo)

	annotation, err := svc.CreateAnnotation(context.Background(), "event-1", &model.CreateAnnotationRequest{
		X: 120.5, Y: 44, Text: "buffet along this wall",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if annotation.Text != "buffet along this wall" || annotation.X != 120.5 {
		t.Errorf("unexpected annotation: %+v", annotation)
	}
	if created == nil {
		t.Error("expected annotation to be persisted")
	}
}

func TestUpdateAnnotation_MoveOnly_KeepsText(t *testing.T) {
	t.Parallel()

	var written map[string]interface{}
	annotationRepo := &mockAnnotationRepo{
		getFunc: func(ctx context.Context, annotationID string) (*model.Annotation, error) {
			return &model.Annotation{ID: annotationID, Text: "stage", X: 1, Y: 1}, nil
		},
		updateFunc: func(ctx context.Context, annotationID string, updates map[string]interface{}) (*model.Annotation, error) {
			written = updates
			return &model.Annotation{ID: annotationID, Text: "stage", X: 50, Y: 60}, nil
		},
	}
	svc := NewFloorPlanService(&mockTableRepo{}, annotationRepo)

	x, y := 50.0, 60.0
	annotation, err := svc.UpdateAnnotation(context.Background(), "annotation:1", &model.UpdateAnnotationRequest{
		X: &x, Y: &y,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if annotation.Text != "stage" {
		t.Errorf("expected text untouched, got %s", annotation.Text)
	}
	if _, ok := written["text"]; ok {
		t.Error("expected no text write for a move-only update")
	}
}

func TestGetAnnotation_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewFloorPlanService(&mockTableRepo{}, &mockAnnotationRepo{})

	_, err := svc.GetAnnotation(context.Background(), "annotation:missing")
	if !errors.Is(err, ErrAnnotationNotFound) {
		t.Errorf("expected ErrAnnotationNotFound, got %v", err)
	}
}
