// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"errors"
	"strings"

	"lda-portal/internal/authz"
	apperrors "lda-portal/internal/errors"
	"lda-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Context keys for storing request data
const (
	ActorKey = "actor"
)

// Authenticator resolves a bearer token to a freshly loaded actor.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*authz.Actor, error)
}

// Auth returns a middleware that validates JWT tokens and stores the caller's
// actor in the context.
func Auth(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		actor, err := authn.Authenticate(ctx, parts[1])
		if err == nil && actor == nil {
			err = apperrors.ErrInvalidToken
		}
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidToken):
				response.Unauthorized(c, "invalid or expired token")
			case errors.Is(err, apperrors.ErrAccountNotApproved):
				response.Forbidden(c, apperrors.ErrAccountNotApproved.Error())
			default:
				zerolog.Ctx(ctx).Error().Err(err).Msg("authentication failed")
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		c.Set(ActorKey, actor)

		logger := zerolog.Ctx(ctx).With().
			Str("actorId", actor.ID.Hex()).
			Str("role", string(actor.Role)).
			Logger()
		c.Request = c.Request.WithContext(logger.WithContext(ctx))

		c.Next()
	}
}

// GetActor retrieves the authenticated actor from the context.
// Returns nil if the request is unauthenticated.
func GetActor(c *gin.Context) *authz.Actor {
	v, exists := c.Get(ActorKey)
	if !exists {
		return nil
	}
	actor, _ := v.(*authz.Actor)
	return actor
}
