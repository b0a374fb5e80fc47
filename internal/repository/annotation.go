package repository

import (
	"context"
	"errors"

	"github.com/placecard/api/internal/database"
	"github.com/placecard/api/internal/model"
)

// AnnotationRepository handles floor-plan note data access
type AnnotationRepository struct {
	db database.Database
}

// NewAnnotationRepository creates a new annotation repository
func NewAnnotationRepository(db database.Database) *AnnotationRepository {
	return &AnnotationRepository{db: db}
}

// Create creates a new annotation
func (r *AnnotationRepository) Create(ctx context.Context, annotation *model.Annotation) error {
	query := `
		CREATE annotation CONTENT {
			event_id: $event_id,
			x: $x,
			y: $y,
			text: $text,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"event_id": annotation.EventID,
		"x":        annotation.X,
		"y":        annotation.Y,
		"text":     annotation.Text,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	annotation.ID = created.ID
	annotation.CreatedOn = created.CreatedOn
	annotation.UpdatedOn = created.UpdatedOn
	return nil
}

// Get retrieves an annotation by ID
func (r *AnnotationRepository) Get(ctx context.Context, annotationID string) (*model.Annotation, error) {
	query := `SELECT * FROM type::record($annotation_id)`
	vars := map[string]interface{}{"annotation_id": annotationID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseAnnotationResult(result)
}

// ListByEvent retrieves all annotations for an event
func (r *AnnotationRepository) ListByEvent(ctx context.Context, eventID string) ([]*model.Annotation, error) {
	query := `
		SELECT * FROM annotation
		WHERE event_id = $event_id
		ORDER BY created_on ASC
	`
	vars := map[string]interface{}{"event_id": eventID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	annotations := make([]*model.Annotation, 0)
	for _, item := range extractQueryResults(result) {
		annotation, err := parseAnnotationResult(item)
		if err != nil {
			continue
		}
		annotations = append(annotations, annotation)
	}
	return annotations, nil
}

// Update applies a partial update to an annotation
func (r *AnnotationRepository) Update(ctx context.Context, annotationID string, updates map[string]interface{}) (*model.Annotation, error) {
	query := `UPDATE annotation SET updated_on = time::now()`
	vars := map[string]interface{}{"annotation_id": annotationID}

	for key, value := range updates {
		query += ", " + key + " = $" + key
		vars[key] = value
	}

	query += ` WHERE id = type::record($annotation_id) RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseAnnotationResult(result)
}

// Delete removes an annotation
func (r *AnnotationRepository) Delete(ctx context.Context, annotationID string) error {
	query := `DELETE annotation WHERE id = type::record($annotation_id)`
	vars := map[string]interface{}{"annotation_id": annotationID}

	return r.db.Execute(ctx, query, vars)
}

func parseAnnotationResult(result interface{}) (*model.Annotation, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	annotation := &model.Annotation{
		ID:      convertSurrealID(data["id"]),
		EventID: getString(data, "event_id"),
		X:       getFloat(data, "x"),
		Y:       getFloat(data, "y"),
		Text:    getString(data, "text"),
	}

	if t := getTime(data, "created_on"); t != nil {
		annotation.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		annotation.UpdatedOn = *t
	}

	return annotation, nil
}
