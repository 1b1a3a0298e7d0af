package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
	"github.com/monetrix/monetrix-server/internal/services"
)

// CategoryManager defines the category operations used by these handlers.
type CategoryManager interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, name, kind string) (uuid.UUID, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, error)
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error
}

// CategoryRequest represents the JSON body for creating a category
// swagger:model CategoryRequest
type CategoryRequest struct {
	// Display name
	// required: true
	// default: Groceries
	Name string `json:"name"`

	// Category kind: income or expense
	// required: true
	// default: expense
	Kind string `json:"kind"`
}

// CategoryResponse represents a created category
// swagger:model CategoryResponse
type CategoryResponse struct {
	// Identifier of the category
	CategoryID string `json:"category_id"`
}

// NewCreateCategoryHandler returns an HTTP handler creating a category.
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body handlers.CategoryRequest true "Category"
// @Success 201 {object} handlers.CategoryResponse "Category created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid category data"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /categories [post]
// @Security BearerAuth
func NewCreateCategoryHandler(svc CategoryManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		var req CategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		categoryID, err := svc.CreateCategory(r.Context(), userID, req.Name, req.Kind)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to create category", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CategoryResponse{CategoryID: categoryID.String()})
	}
}

// NewListCategoriesHandler returns an HTTP handler listing categories.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryDB "Categories"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /categories [get]
// @Security BearerAuth
func NewListCategoriesHandler(svc CategoryManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		categories, err := svc.ListCategories(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list categories", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(categories)
	}
}

// NewDeleteCategoryHandler returns an HTTP handler removing a category.
// @Summary Delete category
// @Description Deletes a category. Transactions referencing it become uncategorized.
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 204 "Category deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Router /categories/{id} [delete]
// @Security BearerAuth
func NewDeleteCategoryHandler(svc CategoryManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authedUser(w, r, tokener)
		if !ok {
			return
		}

		categoryID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		if err := svc.DeleteCategory(r.Context(), userID, categoryID); err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Category not found"})
				return
			}
			logger.Log.Errorw("failed to delete category", "categoryID", categoryID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
