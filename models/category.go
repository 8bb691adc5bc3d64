package models

import "errors"

// Category is a named grouping of products.
// The ID is assigned by the database on insert and never changes afterwards.
type Category struct {
	ID           uint   `gorm:"primaryKey"`
	CategoryName string `gorm:"column:category_name"`
}

func (c *Category) TableName() string {
	return "categories"
}

// ErrCategoryNotFound is returned when no category matches the requested id.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryGateway is the storage contract for categories.
// Any backing store that can satisfy it can be swapped in without touching callers.
type CategoryGateway interface {
	FindAll() ([]Category, error)
	FindByID(id uint) (*Category, error)
	// Save inserts the category when its ID is zero and overwrites the whole row otherwise.
	Save(category *Category) error
	Delete(category *Category) error
	// Flush makes previously issued writes visible to subsequent reads in the same unit of work.
	Flush() error
	// Transaction runs fn against a gateway bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	Transaction(fn func(tx CategoryGateway) error) error
}
