package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		mockSetup  func(tokener *MockTokener)
		wantStatus int
		wantNext   bool
	}{
		{
			name: "valid_token",
			mockSetup: func(tokener *MockTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().Validate(gomock.Any(), "token").Return(nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name: "missing_token",
			mockSetup: func(tokener *MockTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no authorization header"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid_token",
			mockSetup: func(tokener *MockTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().Validate(gomock.Any(), "token").Return(errors.New("token expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokener := NewMockTokener(ctrl)
			tt.mockSetup(tokener)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tokener)(next)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
