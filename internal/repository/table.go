package repository

import (
	"context"
	"errors"

	"github.com/placecard/api/internal/database"
	"github.com/placecard/api/internal/model"
)

// TableRepository handles floor-plan table data access
type TableRepository struct {
	db database.Database
}

// NewTableRepository creates a new table repository
func NewTableRepository(db database.Database) *TableRepository {
	return &TableRepository{db: db}
}

// Create creates a new table
func (r *TableRepository) Create(ctx context.Context, table *model.Table) error {
	query := `
		CREATE floor_table CONTENT {
			event_id: $event_id,
			number: $number,
			name: $name,
			capacity: $capacity,
			shape: $shape,
			x: $x,
			y: $y,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"event_id": table.EventID,
		"number":   table.Number,
		"name":     table.Name,
		"capacity": table.Capacity,
		"shape":    string(table.Shape),
		"x":        table.X,
		"y":        table.Y,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	table.ID = created.ID
	table.CreatedOn = created.CreatedOn
	table.UpdatedOn = created.UpdatedOn
	return nil
}

// Get retrieves a table by ID
func (r *TableRepository) Get(ctx context.Context, tableID string) (*model.Table, error) {
	query := `SELECT * FROM type::record($table_id)`
	vars := map[string]interface{}{"table_id": tableID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseTableResult(result)
}

// ListByEvent retrieves all tables for an event. Ordering is stable within a
// session (by creation time) but carries no further guarantee.
func (r *TableRepository) ListByEvent(ctx context.Context, eventID string) ([]*model.Table, error) {
	query := `
		SELECT * FROM floor_table
		WHERE event_id = $event_id
		ORDER BY created_on ASC
	`
	vars := map[string]interface{}{"event_id": eventID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	tables := make([]*model.Table, 0)
	for _, item := range extractQueryResults(result) {
		table, err := parseTableResult(item)
		if err != nil {
			continue
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// Update applies a partial update to a table
func (r *TableRepository) Update(ctx context.Context, tableID string, updates map[string]interface{}) (*model.Table, error) {
	query := `UPDATE floor_table SET updated_on = time::now()`
	vars := map[string]interface{}{"table_id": tableID}

	for key, value := range updates {
		query += ", " + key + " = $" + key
		vars[key] = value
	}

	query += ` WHERE id = type::record($table_id) RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseTableResult(result)
}

// Delete removes a table and unassigns its guests in the same transaction,
// so no guest is ever left pointing at a missing table.
func (r *TableRepository) Delete(ctx context.Context, tableID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(
		`UPDATE guest SET table_id = NONE, updated_on = time::now() WHERE table_id = $table_id`,
		map[string]interface{}{"table_id": tableID},
	)
	batch.Add(
		`DELETE floor_table WHERE id = type::record($table_id)`,
		map[string]interface{}{"table_id": tableID},
	)
	return batch.Execute(ctx, r.db)
}

// parseTableResult converts a store row into a model.Table
func parseTableResult(result interface{}) (*model.Table, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	table := &model.Table{
		ID:       convertSurrealID(data["id"]),
		EventID:  getString(data, "event_id"),
		Number:   getIntPtr(data, "number"),
		Name:     getStringPtr(data, "name"),
		Capacity: getInt(data, "capacity"),
		Shape:    model.TableShape(getString(data, "shape")),
		X:        getFloatPtr(data, "x"),
		Y:        getFloatPtr(data, "y"),
	}

	if t := getTime(data, "created_on"); t != nil {
		table.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		table.UpdatedOn = *t
	}

	return table, nil
}
