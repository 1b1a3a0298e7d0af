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

func TestCreateAccountHandler(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	validBody := AccountRequest{
		Name:           "Nubank",
		Type:           models.AccountChecking,
		Currency:       "BRL",
		OpeningBalance: "1000.00",
	}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(svc *MockAccountManager, tokener *MockTokener)
		expectedStatusCode int
	}{
		{
			name:        "created",
			requestBody: validBody,
			setupMocks: func(svc *MockAccountManager, tokener *MockTokener) {
				authOK(tokener, userID)
				svc.EXPECT().
					CreateAccount(gomock.Any(), userID, "Nubank", models.AccountChecking, "BRL", "1000.00").
					Return(accountID, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "invalid body",
			requestBody: "not-json",
			setupMocks: func(svc *MockAccountManager, tokener *MockTokener) {
				authOK(tokener, userID)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "unauthorized",
			requestBody: validBody,
			setupMocks: func(svc *MockAccountManager, tokener *MockTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:        "validation error",
			requestBody: validBody,
			setupMocks: func(svc *MockAccountManager, tokener *MockTokener) {
				authOK(tokener, userID)
				svc.EXPECT().
					CreateAccount(gomock.Any(), userID, "Nubank", models.AccountChecking, "BRL", "1000.00").
					Return(uuid.Nil, services.ErrValidation)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "internal error",
			requestBody: validBody,
			setupMocks: func(svc *MockAccountManager, tokener *MockTokener) {
				authOK(tokener, userID)
				svc.EXPECT().
					CreateAccount(gomock.Any(), userID, "Nubank", models.AccountChecking, "BRL", "1000.00").
					Return(uuid.Nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockAccountManager(ctrl)
			tokener := NewMockTokener(ctrl)
			tt.setupMocks(svc, tokener)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			NewCreateAccountHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if rr.Code == http.StatusCreated {
				var resp AccountResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, accountID.String(), resp.AccountID)
			}
		})
	}
}

func TestListAccountsHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name            string
		query           string
		includeArchived bool
	}{
		{name: "active only", query: ""},
		{name: "include archived", query: "?include_archived=true", includeArchived: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockAccountManager(ctrl)
			tokener := NewMockTokener(ctrl)
			authOK(tokener, userID)
			svc.EXPECT().ListAccounts(gomock.Any(), userID, tt.includeArchived).
				Return([]models.AccountDB{{UserID: userID, Name: "Nubank"}}, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts"+tt.query, nil)
			rr := httptest.NewRecorder()

			NewListAccountsHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			var resp []models.AccountDB
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Len(t, resp, 1)
		})
	}
}

func TestGetAccountHandler(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockAccountManager(ctrl)
		tokener := NewMockTokener(ctrl)
		authOK(tokener, userID)
		svc.EXPECT().GetAccount(gomock.Any(), userID, accountID).
			Return(&models.AccountDB{AccountID: accountID, Balance: 950}, nil)

		req := withPathID(
			httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+accountID.String(), nil),
			accountID.String())
		rr := httptest.NewRecorder()

		NewGetAccountHandler(svc, tokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp models.AccountDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 950.0, resp.Balance)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockAccountManager(ctrl)
		tokener := NewMockTokener(ctrl)
		authOK(tokener, userID)
		svc.EXPECT().GetAccount(gomock.Any(), userID, accountID).
			Return(nil, services.ErrAccountNotFound)

		req := withPathID(
			httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+accountID.String(), nil),
			accountID.String())
		rr := httptest.NewRecorder()

		NewGetAccountHandler(svc, tokener).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateAccountHandler(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	body, _ := json.Marshal(AccountRequest{Name: "Renamed", Type: models.AccountSavings, Currency: "BRL"})

	tests := []struct {
		name               string
		serviceErr         error
		expectedStatusCode int
	}{
		{name: "updated", expectedStatusCode: http.StatusOK},
		{name: "validation error", serviceErr: services.ErrValidation, expectedStatusCode: http.StatusBadRequest},
		{name: "not found", serviceErr: services.ErrAccountNotFound, expectedStatusCode: http.StatusNotFound},
		{name: "internal error", serviceErr: assert.AnError, expectedStatusCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockAccountManager(ctrl)
			tokener := NewMockTokener(ctrl)
			authOK(tokener, userID)
			svc.EXPECT().
				UpdateAccount(gomock.Any(), userID, accountID, "Renamed", models.AccountSavings, "BRL").
				Return(tt.serviceErr)

			req := withPathID(
				httptest.NewRequest(http.MethodPut, "/api/v1/accounts/"+accountID.String(), bytes.NewReader(body)),
				accountID.String())
			rr := httptest.NewRecorder()

			NewUpdateAccountHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestArchiveAccountHandler(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	tests := []struct {
		name               string
		serviceErr         error
		expectedStatusCode int
	}{
		{name: "archived", expectedStatusCode: http.StatusNoContent},
		{name: "not found", serviceErr: services.ErrAccountNotFound, expectedStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockAccountManager(ctrl)
			tokener := NewMockTokener(ctrl)
			authOK(tokener, userID)
			svc.EXPECT().ArchiveAccount(gomock.Any(), userID, accountID).Return(tt.serviceErr)

			req := withPathID(
				httptest.NewRequest(http.MethodDelete, "/api/v1/accounts/"+accountID.String(), nil),
				accountID.String())
			rr := httptest.NewRecorder()

			NewArchiveAccountHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
