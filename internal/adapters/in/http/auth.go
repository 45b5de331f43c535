package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
)

var (
	ErrTokenIsInvalid = errors.New("token is invalid")
	ErrTokenIsExpired = errors.New("token is expired")
)

// actorContextKey is the echo context key the middleware stores the
// authenticated actor under.
const actorContextKey = "actor"

// TokenService issues and validates the bearer tokens the API accepts.
// Tokens carry the user id as subject and the role as a custom claim;
// identity itself (registration, login) is owned by a separate service
// sharing the signing key.
type TokenService struct {
	authSecretKey string
}

// NewTokenService creates a token service with the given HMAC signing key.
func NewTokenService(authSecretKey string) *TokenService {
	return &TokenService{authSecretKey: authSecretKey}
}

// GenerateToken issues a signed token for the subject with the given role,
// valid for 24 hours.
func (s *TokenService) GenerateToken(subject string, role user.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.authSecretKey))
	if err != nil {
		return "", fmt.Errorf("error while generating token: %w", err)
	}

	return tokenString, nil
}

// ParseActor validates the token and extracts the acting identity from its
// sub and role claims.
func (s *TokenService) ParseActor(tokenString string) (user.Actor, error) {
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.authSecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return user.Actor{}, ErrTokenIsExpired
		}
		return user.Actor{}, fmt.Errorf("error while validating token: %w", err)
	}
	if !parsedToken.Valid {
		return user.Actor{}, ErrTokenIsInvalid
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return user.Actor{}, ErrTokenIsInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return user.Actor{}, ErrTokenIsInvalid
	}
	actorID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return user.Actor{}, ErrTokenIsInvalid
	}

	roleClaim, ok := claims["role"].(string)
	if !ok {
		return user.Actor{}, ErrTokenIsInvalid
	}
	role, err := user.RoleFromString(roleClaim)
	if err != nil {
		return user.Actor{}, ErrTokenIsInvalid
	}

	return user.NewActor(actorID, role)
}

// AuthMiddleware authenticates requests with a bearer token and stores the
// resolved actor in the request context for handlers to pick up.
func AuthMiddleware(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Authorization header is required",
				})
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == "" || tokenString == header {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Bearer token is required",
				})
			}

			actor, err := tokens.ParseActor(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// actorFromContext returns the actor the auth middleware resolved.
func actorFromContext(c echo.Context) (user.Actor, error) {
	actor, ok := c.Get(actorContextKey).(user.Actor)
	if !ok {
		return user.Actor{}, ErrTokenIsInvalid
	}
	return actor, nil
}
