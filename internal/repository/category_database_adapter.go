package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
)

type CategoryDatabaseAdapter struct {
	db DBTX
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db DBTX) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories returns all categories ordered by id
func (r *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	var categories []models.Category
	query := "SELECT id, type FROM categories ORDER BY id"
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	domainCategories := make([]*domain.Category, len(categories))
	for i := range categories {
		domainCategories[i] = toDomainCategory(&categories[i])
	}
	return domainCategories, nil
}

// GetCategoryByID implements domain.CategoryRepository
func (r *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category models.Category
	query := "SELECT id, type FROM categories WHERE id = $1"
	err := GetExecutor(ctx, r.db).GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return toDomainCategory(&category), nil
}

// GetCategoryByType implements domain.CategoryRepository
func (r *CategoryDatabaseAdapter) GetCategoryByType(ctx context.Context, categoryType string) (*domain.Category, error) {
	var category models.Category
	query := "SELECT id, type FROM categories WHERE type = $1"
	err := GetExecutor(ctx, r.db).GetContext(ctx, &category, query, categoryType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %q: %w", categoryType, err)
	}
	return toDomainCategory(&category), nil
}

// SaveCategory persists a new category and sets its ID
func (r *CategoryDatabaseAdapter) SaveCategory(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return fmt.Errorf("cannot save nil category")
	}
	var id int64
	query := "INSERT INTO categories (type) VALUES ($1) RETURNING id"
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &id, query, category.Type); err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	category.ID = id
	return nil
}

func toDomainCategory(category *models.Category) *domain.Category {
	return &domain.Category{
		ID:   category.ID,
		Type: category.Type,
	}
}
