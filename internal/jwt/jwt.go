package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims holds the fields extracted from a validated token.
type Claims struct {
	UserID uuid.UUID
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	secretKey string
	exp       time.Duration
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.secretKey = secret }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.exp = exp }
}

// New creates a new JWT instance.
func New(opts ...Opt) *JWT {
	j := &JWT{
		secretKey: "secret",
		exp:       time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token carrying the given user ID.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(j.exp).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// Validate checks the token signature and expiration.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.parse(tokenString)
	return err
}

// GetClaims parses the token string and returns its claims if valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("user_id not found in token")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("invalid user_id format")
	}

	return &Claims{UserID: userID}, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

func (j *JWT) parse(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
}
