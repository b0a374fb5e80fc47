package repository

import (
	"context"
	"errors"

	"github.com/placecard/api/internal/database"
	"github.com/placecard/api/internal/model"
)

// CategoryRepository handles guest category data access
type CategoryRepository struct {
	db database.Database
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db database.Database) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	query := `
		CREATE category CONTENT {
			event_id: $event_id,
			name: $name,
			side: $side,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"event_id": category.EventID,
		"name":     category.Name,
		"side":     string(category.Side),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	category.ID = created.ID
	category.CreatedOn = created.CreatedOn
	category.UpdatedOn = created.UpdatedOn
	return nil
}

// Get retrieves a category by ID
func (r *CategoryRepository) Get(ctx context.Context, categoryID string) (*model.Category, error) {
	query := `SELECT * FROM type::record($category_id)`
	vars := map[string]interface{}{"category_id": categoryID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseCategoryResult(result)
}

// ListByEvent retrieves all categories for an event
func (r *CategoryRepository) ListByEvent(ctx context.Context, eventID string) ([]*model.Category, error) {
	query := `
		SELECT * FROM category
		WHERE event_id = $event_id
		ORDER BY created_on ASC
	`
	vars := map[string]interface{}{"event_id": eventID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	categories := make([]*model.Category, 0)
	for _, item := range extractQueryResults(result) {
		category, err := parseCategoryResult(item)
		if err != nil {
			continue
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// Update applies a partial update to a category
func (r *CategoryRepository) Update(ctx context.Context, categoryID string, updates map[string]interface{}) (*model.Category, error) {
	query := `UPDATE category SET updated_on = time::now()`
	vars := map[string]interface{}{"category_id": categoryID}

	for key, value := range updates {
		query += ", " + key + " = $" + key
		vars[key] = value
	}

	query += ` WHERE id = type::record($category_id) RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseCategoryResult(result)
}

// Delete removes a category and clears it from any guests still tagged with
// it, in one transaction.
func (r *CategoryRepository) Delete(ctx context.Context, categoryID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(
		`UPDATE guest SET category_id = NONE, updated_on = time::now() WHERE category_id = $category_id`,
		map[string]interface{}{"category_id": categoryID},
	)
	batch.Add(
		`DELETE category WHERE id = type::record($category_id)`,
		map[string]interface{}{"category_id": categoryID},
	)
	return batch.Execute(ctx, r.db)
}

func parseCategoryResult(result interface{}) (*model.Category, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	category := &model.Category{
		ID:      convertSurrealID(data["id"]),
		EventID: getString(data, "event_id"),
		Name:    getString(data, "name"),
		Side:    model.CategorySide(getString(data, "side")),
	}

	if t := getTime(data, "created_on"); t != nil {
		category.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		category.UpdatedOn = *t
	}

	return category, nil
}
