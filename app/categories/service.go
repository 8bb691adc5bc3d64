package categories

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sm-ecommerce/category-service/models"
)

// CategoryService holds the category business rules on top of a storage gateway.
type CategoryService struct {
	store  models.CategoryGateway
	logger zerolog.Logger
}

func NewCategoryService(store models.CategoryGateway, logger zerolog.Logger) *CategoryService {
	return &CategoryService{
		store:  store,
		logger: logger.With().Str("component", "category_service").Logger(),
	}
}

func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.store.FindAll()
}

// CreateCategory always inserts: a client supplied ID is discarded and the store assigns a new one.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	category.ID = 0
	if err := s.store.Save(category); err != nil {
		return err
	}
	s.logger.Info().Uint("category_id", category.ID).Str("category_name", category.CategoryName).Msg("category created")
	return nil
}

// DeleteCategory removes the category in a single transaction.
// A missing category yields a KindNotFound error; every other failure is reported as KindInternal.
func (s *CategoryService) DeleteCategory(id uint) (string, error) {
	err := s.store.Transaction(func(tx models.CategoryGateway) error {
		category, err := tx.FindByID(id)
		if err != nil {
			return err
		}
		if err := tx.Delete(category); err != nil {
			return err
		}
		return tx.Flush()
	})
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return "", notFound(id, err)
		}
		s.logger.Error().Err(err).Uint("category_id", id).Msg("failed to delete category")
		return "", internal(fmt.Sprintf("Error deleting category with id: %d", id), err)
	}

	s.logger.Info().Uint("category_id", id).Msg("category deleted")
	return fmt.Sprintf("Category with categoryId: %d deleted successfully !!", id), nil
}

// UpdateCategory overwrites the name of an existing category. Only CategoryName is taken from category.
func (s *CategoryService) UpdateCategory(id uint, category *models.Category) (string, error) {
	err := s.store.Transaction(func(tx models.CategoryGateway) error {
		existing, err := tx.FindByID(id)
		if err != nil {
			return err
		}
		existing.CategoryName = category.CategoryName
		return tx.Save(existing)
	})
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return "", notFound(id, err)
		}
		s.logger.Error().Err(err).Uint("category_id", id).Msg("failed to update category")
		return "", internal(fmt.Sprintf("Error updating category with id: %d", id), err)
	}

	s.logger.Info().Uint("category_id", id).Str("category_name", category.CategoryName).Msg("category updated")
	return fmt.Sprintf("Category with categoryId: %d updated successfully !!", id), nil
}
