package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type CategoriesRepository struct {
	db *gorm.DB
}

var _ CategoryGateway = (*CategoriesRepository)(nil)

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

// FindAll returns every stored category ordered by id.
func (r *CategoriesRepository) FindAll() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	return categories, nil
}

func (r *CategoriesRepository) FindByID(id uint) (*Category, error) {
	var category Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}
	return &category, nil
}

func (r *CategoriesRepository) Save(category *Category) error {
	if err := r.db.Save(category).Error; err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

// Delete removes the row matching category.ID.
// ErrCategoryNotFound is returned when no row was removed.
func (r *CategoriesRepository) Delete(category *Category) error {
	res := r.db.Delete(category)
	if res.Error != nil {
		return fmt.Errorf("delete category %d: %w", category.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Flush has nothing to do: gorm sends every statement to the database as soon as it is built.
func (r *CategoriesRepository) Flush() error {
	return nil
}

func (r *CategoriesRepository) Transaction(fn func(tx CategoryGateway) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewCategoriesRepository(tx))
	})
}
