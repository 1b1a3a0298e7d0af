package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/monetrix/monetrix-server/internal/models"
	"github.com/monetrix/monetrix-server/internal/services"
)

func TestCreateCategoryHandler(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	tests := []struct {
		name               string
		requestBody        CategoryRequest
		setupMocks         func(svc *MockCategoryManager, tokener *MockTokener)
		expectedStatusCode int
	}{
		{
			name:        "created",
			requestBody: CategoryRequest{Name: "Groceries", Kind: models.CategoryExpense},
			setupMocks: func(svc *MockCategoryManager, tokener *MockTokener) {
				authOK(tokener, userID)
				svc.EXPECT().CreateCategory(gomock.Any(), userID, "Groceries", models.CategoryExpense).
					Return(categoryID, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "bad kind",
			requestBody: CategoryRequest{Name: "Groceries", Kind: "spending"},
			setupMocks: func(svc *MockCategoryManager, tokener *MockTokener) {
				authOK(tokener, userID)
				svc.EXPECT().CreateCategory(gomock.Any(), userID, "Groceries", "spending").
					Return(uuid.Nil, services.ErrValidation)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockCategoryManager(ctrl)
			tokener := NewMockTokener(ctrl)
			tt.setupMocks(svc, tokener)

			bodyBytes, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			NewCreateCategoryHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestListCategoriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	svc := NewMockCategoryManager(ctrl)
	tokener := NewMockTokener(ctrl)
	authOK(tokener, userID)
	svc.EXPECT().ListCategories(gomock.Any(), userID).
		Return([]models.CategoryDB{{Name: "Salary", Kind: models.CategoryIncome}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rr := httptest.NewRecorder()

	NewListCategoriesHandler(svc, tokener).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []models.CategoryDB
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
}

func TestDeleteCategoryHandler(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	tests := []struct {
		name               string
		serviceErr         error
		expectedStatusCode int
	}{
		{name: "deleted", expectedStatusCode: http.StatusNoContent},
		{name: "not found", serviceErr: services.ErrCategoryNotFound, expectedStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockCategoryManager(ctrl)
			tokener := NewMockTokener(ctrl)
			authOK(tokener, userID)
			svc.EXPECT().DeleteCategory(gomock.Any(), userID, categoryID).Return(tt.serviceErr)

			req := withPathID(
				httptest.NewRequest(http.MethodDelete, "/api/v1/categories/"+categoryID.String(), nil),
				categoryID.String())
			rr := httptest.NewRecorder()

			NewDeleteCategoryHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
