package middleware

import (
	"errors"

	"lda-portal/internal/authz"
	apperrors "lda-portal/internal/errors"
	"lda-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys for storing LDA data
const (
	LDAIDKey = "ldaID"
)

// LDAAuthz returns a middleware that checks the caller may perform action on
// the LDA named by the :ldaId path parameter.
func LDAAuthz(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		ldaIDStr := c.Param("ldaId")
		if ldaIDStr == "" {
			response.BadRequest(c, "lda id is required")
			c.Abort()
			return
		}

		ldaID, err := primitive.ObjectIDFromHex(ldaIDStr)
		if err != nil {
			response.BadRequest(c, "invalid lda id format")
			c.Abort()
			return
		}

		if err := authz.Enforce(c.Request.Context(), actor, action, authz.LDA(ldaID)); err != nil {
			if errors.Is(err, apperrors.ErrUnauthenticated) {
				response.Unauthorized(c, "user not authenticated")
			} else {
				response.Forbidden(c, apperrors.ErrForbidden.Error())
			}
			c.Abort()
			return
		}

		c.Set(LDAIDKey, ldaID)

		c.Next()
	}
}

// LDAViewer returns a middleware that only checks view access to the LDA.
func LDAViewer() gin.HandlerFunc {
	return LDAAuthz(authz.ActionLDAView)
}

// GetLDAID retrieves the LDA id checked by LDAAuthz.
func GetLDAID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get(LDAIDKey)
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}
