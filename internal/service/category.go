package service

import (
	"context"

	"github.com/placecard/api/internal/model"
)

// CategoryRepositoryInterface defines the category repository interface
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *model.Category) error
	Get(ctx context.Context, categoryID string) (*model.Category, error)
	ListByEvent(ctx context.Context, eventID string) ([]*model.Category, error)
	Update(ctx context.Context, categoryID string, updates map[string]interface{}) (*model.Category, error)
	Delete(ctx context.Context, categoryID string) error
}

// CategoryService manages guest categories. Categories only group the
// roster for display; nothing here touches seating or capacity.
type CategoryService struct {
	categories CategoryRepositoryInterface
}

// NewCategoryService creates a new category service
func NewCategoryService(categories CategoryRepositoryInterface) *CategoryService {
	return &CategoryService{categories: categories}
}

// ListCategories retrieves all categories for an event
func (s *CategoryService) ListCategories(ctx context.Context, eventID string) ([]*model.Category, error) {
	if eventID == "" {
		return nil, ErrEventIDRequired
	}
	return s.categories.ListByEvent(ctx, eventID)
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, categoryID string) (*model.Category, error) {
	if categoryID == "" {
		return nil, ErrCategoryIDRequired
	}
	if err := requireRecordID(categoryID, "category"); err != nil {
		return nil, err
	}

	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// CreateCategory creates a new category. A missing side defaults to none.
func (s *CategoryService) CreateCategory(ctx context.Context, eventID string, req *model.CreateCategoryRequest) (*model.Category, error) {
	if eventID == "" {
		return nil, ErrEventIDRequired
	}
	if req.Name == "" {
		return nil, ErrCategoryNameRequired
	}

	side := req.Side
	if side == "" {
		side = model.CategorySideNone
	}
	if !side.IsValid() {
		return nil, ErrInvalidCategorySide
	}

	category := &model.Category{
		EventID: eventID,
		Name:    req.Name,
		Side:    side,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory applies a partial update to a category
func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req *model.UpdateCategoryRequest) (*model.Category, error) {
	if categoryID == "" {
		return nil, ErrCategoryIDRequired
	}
	if err := requireRecordID(categoryID, "category"); err != nil {
		return nil, err
	}

	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrCategoryNameRequired
		}
		updates["name"] = *req.Name
	}
	if req.Side != nil {
		if !req.Side.IsValid() {
			return nil, ErrInvalidCategorySide
		}
		updates["side"] = string(*req.Side)
	}

	if len(updates) == 0 {
		return category, nil
	}

	updated, err := s.categories.Update(ctx, category.ID, updates)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCategory removes a category; guests tagged with it fall back to
// uncategorized rather than dangling.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return ErrCategoryIDRequired
	}
	if err := requireRecordID(categoryID, "category"); err != nil {
		return err
	}

	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	return s.categories.Delete(ctx, category.ID)
}
