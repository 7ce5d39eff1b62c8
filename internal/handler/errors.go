// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"strconv"

	apperrors "lda-portal/internal/errors"
	"lda-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	notFoundErrors = []error{
		apperrors.ErrUserNotFound,
		apperrors.ErrLDANotFound,
		apperrors.ErrFunderNotFound,
		apperrors.ErrFundNotFound,
		apperrors.ErrDocumentNotFound,
		apperrors.ErrMediaNotFound,
		apperrors.ErrContactNotFound,
	}

	badRequestErrors = []error{
		apperrors.ErrInvalidID,
		apperrors.ErrInvalidRole,
		apperrors.ErrStaffLDAScope,
		apperrors.ErrInvalidResetToken,
		apperrors.ErrUnknownLDA,
		apperrors.ErrUnknownFund,
		apperrors.ErrUnknownFunder,
		apperrors.ErrLinkRequired,
		apperrors.ErrInvalidValidity,
		apperrors.ErrContactLDARequired,
	}

	conflictErrors = []error{
		apperrors.ErrUserAlreadyExists,
		apperrors.ErrFunderHasFunds,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeError maps a service error to a response. Denials never carry detail,
// and unknown errors are logged and reported as 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated), errors.Is(err, apperrors.ErrInvalidToken):
		response.Unauthorized(c, apperrors.ErrUnauthenticated.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		response.Forbidden(c, apperrors.ErrForbidden.Error())
	case errors.Is(err, apperrors.ErrAccountNotApproved):
		response.Forbidden(c, err.Error())
	case isAny(err, notFoundErrors):
		response.NotFound(c, err.Error())
	case isAny(err, badRequestErrors):
		response.BadRequest(c, err.Error())
	case isAny(err, conflictErrors):
		response.Conflict(c, err.Error())
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).
			Str("route", c.FullPath()).
			Msg("request failed")
		response.InternalError(c)
	}
}

// pathID parses the named path parameter as an ObjectID, answering 400 on
// failure.
func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		response.BadRequest(c, apperrors.ErrInvalidID.Error())
		return primitive.NilObjectID, false
	}
	return id, true
}

// queryID parses an optional ObjectID query parameter.
func queryID(c *gin.Context, name string) (*primitive.ObjectID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		response.BadRequest(c, apperrors.ErrInvalidID.Error())
		return nil, false
	}
	return &id, true
}

// pageParams reads page and limit. Bad or missing values fall back to the
// service defaults.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}

// bindJSON binds and validates the request body, answering 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, err.Error())
		return false
	}
	return true
}
