package categories

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/hlog"

	"github.com/sm-ecommerce/category-service/app/api"
	"github.com/sm-ecommerce/category-service/models"
)

type CategoryResponse struct {
	ID           uint   `json:"id"`
	CategoryName string `json:"categoryName"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
	CreateCategory(category *models.Category) error
	DeleteCategory(id uint) (string, error)
	UpdateCategory(id uint, category *models.Category) (string, error)
}

type CategoryHandler struct {
	service CategoryProvider
}

func NewCategoryHandler(s CategoryProvider) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// categoryInput is the request body for create and update.
// A pointer distinguishes a missing categoryName from an empty one.
type categoryInput struct {
	ID           uint    `json:"id"`
	CategoryName *string `json:"categoryName"`
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to fetch categories")
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			ID:           c.ID,
			CategoryName: c.CategoryName,
		}
	}

	if err := api.OKResponse(w, response); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to write categories response")
	}
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	category := &models.Category{
		ID:           input.ID,
		CategoryName: *input.CategoryName,
	}

	if err := h.service.CreateCategory(category); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to create category")
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	api.Text(w, http.StatusCreated, "Category added successfully")
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	status, err := h.service.DeleteCategory(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.Text(w, http.StatusOK, status)
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	status, err := h.service.UpdateCategory(id, &models.Category{CategoryName: *input.CategoryName})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.Text(w, http.StatusOK, status)
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid category id: %s", raw))
		return 0, false
	}
	return uint(id), true
}

func decodeInput(w http.ResponseWriter, r *http.Request) (categoryInput, bool) {
	var input categoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return input, false
	}
	if input.CategoryName == nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Missing categoryName")
		return input, false
	}
	return input, true
}

// writeServiceError sends the status and message carried by a service Error unchanged.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var serr *Error
	if errors.As(err, &serr) {
		if serr.Kind == KindInternal {
			hlog.FromRequest(r).Error().Err(serr.Err).Str("kind", serr.Kind.String()).Msg(serr.Message)
		}
		api.ErrorResponse(w, serr.Kind.Status(), serr.Message)
		return
	}
	hlog.FromRequest(r).Error().Err(err).Msg("unexpected service error")
	api.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
}
