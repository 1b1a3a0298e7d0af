package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/monetrix/monetrix-server/internal/models"
)

func TestReconciliationHandler(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("drift found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockDriftChecker(ctrl)
		tokener := NewMockTokener(ctrl)
		authOK(tokener, userID)
		svc.EXPECT().Check(gomock.Any(), userID).Return([]models.AccountDrift{
			{AccountID: accountID.String(), StoredBalance: 1000, LedgerBalance: 950, Drift: 50},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/reconciliation", nil)
		rr := httptest.NewRecorder()

		NewReconciliationHandler(svc, tokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp ReconciliationResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.Drifts, 1)
		assert.Equal(t, 50.0, resp.Drifts[0].Drift)
	})

	t.Run("consistent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockDriftChecker(ctrl)
		tokener := NewMockTokener(ctrl)
		authOK(tokener, userID)
		svc.EXPECT().Check(gomock.Any(), userID).Return(nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/reconciliation", nil)
		rr := httptest.NewRecorder()

		NewReconciliationHandler(svc, tokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp ReconciliationResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.NotNil(t, resp.Drifts)
		assert.Empty(t, resp.Drifts)
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockDriftChecker(ctrl)
		tokener := NewMockTokener(ctrl)
		authOK(tokener, userID)
		svc.EXPECT().Check(gomock.Any(), userID).Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/reconciliation", nil)
		rr := httptest.NewRecorder()

		NewReconciliationHandler(svc, tokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestAuditLogHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name               string
		query              string
		setupMocks         func(repo *MockAuditLister, tokener *MockTokener)
		expectedStatusCode int
	}{
		{
			name: "default limit",
			setupMocks: func(repo *MockAuditLister, tokener *MockTokener) {
				authOK(tokener, userID)
				repo.EXPECT().ListByUserID(gomock.Any(), userID, 100).
					Return([]models.AuditEntryDB{{Action: models.AuditBalanceAdjustFailed}}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:  "custom limit",
			query: "?limit=5",
			setupMocks: func(repo *MockAuditLister, tokener *MockTokener) {
				authOK(tokener, userID)
				repo.EXPECT().ListByUserID(gomock.Any(), userID, 5).Return(nil, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:  "bad limit",
			query: "?limit=zero",
			setupMocks: func(repo *MockAuditLister, tokener *MockTokener) {
				authOK(tokener, userID)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockAuditLister(ctrl)
			tokener := NewMockTokener(ctrl)
			tt.setupMocks(repo, tokener)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/audit"+tt.query, nil)
			rr := httptest.NewRecorder()

			NewAuditLogHandler(repo, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
