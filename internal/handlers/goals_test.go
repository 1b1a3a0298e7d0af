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

func TestCreateGoalHandler(t *testing.T) {
	userID := uuid.New()
	goalID := uuid.New()

	validBody := GoalRequest{Name: "Trip to Salvador", TargetAmount: "3000.00", DueDate: "2026-12-31"}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(svc *MockGoalManager, tokener *MockTokener)
		expectedStatusCode int
	}{
		{
			name:        "created",
			requestBody: validBody,
			setupMocks: func(svc *MockGoalManager, tokener *MockTokener) {
				authOK(tokener, userID)
				svc.EXPECT().
					CreateGoal(gomock.Any(), userID, "Trip to Salvador", "3000.00", "2026-12-31").
					Return(goalID, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "validation error",
			requestBody: validBody,
			setupMocks: func(svc *MockGoalManager, tokener *MockTokener) {
				authOK(tokener, userID)
				svc.EXPECT().
					CreateGoal(gomock.Any(), userID, "Trip to Salvador", "3000.00", "2026-12-31").
					Return(uuid.Nil, services.ErrValidation)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockGoalManager(ctrl)
			tokener := NewMockTokener(ctrl)
			tt.setupMocks(svc, tokener)

			bodyBytes, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/goals", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			NewCreateGoalHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestContributeHandler(t *testing.T) {
	userID := uuid.New()
	goalID := uuid.New()

	body, _ := json.Marshal(ContributeRequest{Amount: "100.00"})

	tests := []struct {
		name               string
		setupMocks         func(svc *MockGoalManager, tokener *MockTokener)
		expectedStatusCode int
	}{
		{
			name: "contributed",
			setupMocks: func(svc *MockGoalManager, tokener *MockTokener) {
				authOK(tokener, userID)
				svc.EXPECT().Contribute(gomock.Any(), userID, goalID, "100.00").
					Return(&models.GoalDB{GoalID: goalID, SavedAmount: 400, TargetAmount: 3000}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "bad amount",
			setupMocks: func(svc *MockGoalManager, tokener *MockTokener) {
				authOK(tokener, userID)
				svc.EXPECT().Contribute(gomock.Any(), userID, goalID, "100.00").
					Return(nil, services.ErrValidation)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			setupMocks: func(svc *MockGoalManager, tokener *MockTokener) {
				authOK(tokener, userID)
				svc.EXPECT().Contribute(gomock.Any(), userID, goalID, "100.00").
					Return(nil, services.ErrGoalNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockGoalManager(ctrl)
			tokener := NewMockTokener(ctrl)
			tt.setupMocks(svc, tokener)

			req := withPathID(
				httptest.NewRequest(http.MethodPost, "/api/v1/goals/"+goalID.String()+"/contribute", bytes.NewReader(body)),
				goalID.String())
			rr := httptest.NewRecorder()

			NewContributeHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if rr.Code == http.StatusOK {
				var resp models.GoalDB
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 400.0, resp.SavedAmount)
			}
		})
	}
}

func TestDeleteGoalHandler(t *testing.T) {
	userID := uuid.New()
	goalID := uuid.New()

	tests := []struct {
		name               string
		serviceErr         error
		expectedStatusCode int
	}{
		{name: "deleted", expectedStatusCode: http.StatusNoContent},
		{name: "not found", serviceErr: services.ErrGoalNotFound, expectedStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockGoalManager(ctrl)
			tokener := NewMockTokener(ctrl)
			authOK(tokener, userID)
			svc.EXPECT().DeleteGoal(gomock.Any(), userID, goalID).Return(tt.serviceErr)

			req := withPathID(
				httptest.NewRequest(http.MethodDelete, "/api/v1/goals/"+goalID.String(), nil),
				goalID.String())
			rr := httptest.NewRecorder()

			NewDeleteGoalHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
