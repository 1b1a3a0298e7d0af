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

func TestSetBudgetHandler(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()
	budgetID := uuid.New()

	validBody := BudgetRequest{CategoryID: categoryID.String(), LimitAmount: "800.00", Month: "2026-03"}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(svc *MockBudgetManager, tokener *MockTokener)
		expectedStatusCode int
	}{
		{
			name:        "upserted",
			requestBody: validBody,
			setupMocks: func(svc *MockBudgetManager, tokener *MockTokener) {
				authOK(tokener, userID)
				svc.EXPECT().
					SetBudget(gomock.Any(), userID, categoryID.String(), "800.00", "2026-03").
					Return(budgetID, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:        "invalid body",
			requestBody: "not-json",
			setupMocks: func(svc *MockBudgetManager, tokener *MockTokener) {
				authOK(tokener, userID)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "validation error",
			requestBody: validBody,
			setupMocks: func(svc *MockBudgetManager, tokener *MockTokener) {
				authOK(tokener, userID)
				svc.EXPECT().
					SetBudget(gomock.Any(), userID, categoryID.String(), "800.00", "2026-03").
					Return(uuid.Nil, services.ErrValidation)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockBudgetManager(ctrl)
			tokener := NewMockTokener(ctrl)
			tt.setupMocks(svc, tokener)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/v1/budgets", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			NewSetBudgetHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if rr.Code == http.StatusOK {
				var resp BudgetResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, budgetID.String(), resp.BudgetID)
			}
		})
	}
}

func TestListBudgetsHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("with progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockBudgetManager(ctrl)
		tokener := NewMockTokener(ctrl)
		authOK(tokener, userID)
		svc.EXPECT().ListBudgets(gomock.Any(), userID, "2026-03").
			Return([]models.BudgetProgress{{Spent: 620.5}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets?month=2026-03", nil)
		rr := httptest.NewRecorder()

		NewListBudgetsHandler(svc, tokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []models.BudgetProgress
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
	})

	t.Run("bad month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockBudgetManager(ctrl)
		tokener := NewMockTokener(ctrl)
		authOK(tokener, userID)
		svc.EXPECT().ListBudgets(gomock.Any(), userID, "Q1").Return(nil, services.ErrValidation)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets?month=Q1", nil)
		rr := httptest.NewRecorder()

		NewListBudgetsHandler(svc, tokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteBudgetHandler(t *testing.T) {
	userID := uuid.New()
	budgetID := uuid.New()

	tests := []struct {
		name               string
		serviceErr         error
		expectedStatusCode int
	}{
		{name: "deleted", expectedStatusCode: http.StatusNoContent},
		{name: "not found", serviceErr: services.ErrBudgetNotFound, expectedStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockBudgetManager(ctrl)
			tokener := NewMockTokener(ctrl)
			authOK(tokener, userID)
			svc.EXPECT().DeleteBudget(gomock.Any(), userID, budgetID).Return(tt.serviceErr)

			req := withPathID(
				httptest.NewRequest(http.MethodDelete, "/api/v1/budgets/"+budgetID.String(), nil),
				budgetID.String())
			rr := httptest.NewRecorder()

			NewDeleteBudgetHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
