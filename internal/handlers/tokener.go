package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/jwt"
	"github.com/monetrix/monetrix-server/internal/logger"
)

// Tokener extracts and validates the bearer token of a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse represents a generic error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// authedUser resolves the calling user from the bearer token, writing a
// 401 response on failure.
func authedUser(w http.ResponseWriter, r *http.Request, tokener Tokener) (uuid.UUID, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Warnw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Warnw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, false
	}

	return claims.UserID, true
}

// pathID parses a UUID path parameter, writing a 400 response on failure.
func pathID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid identifier"})
		return uuid.Nil, false
	}
	return id, true
}
