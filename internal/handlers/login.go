package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: maria_says
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT bearer token
	Token string `json:"token"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Invalid username or password
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Authenticates a user and returns a JWT bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} handlers.LoginResponse "JWT token"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid username or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid request body"})
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) || errors.Is(err, services.ErrInvalidCredentials) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid username or password"})
				return
			}
			logger.Log.Errorw("failed to log in user", "username", req.Username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{Token: token})
	}
}
