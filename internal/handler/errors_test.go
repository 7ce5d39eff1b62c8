package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "lda-portal/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized, "authentication required"},
		{"invalid token reads as unauthenticated", apperrors.ErrInvalidToken, http.StatusUnauthorized, "authentication required"},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"wrapped forbidden keeps no detail", fmt.Errorf("contact edit: %w", apperrors.ErrForbidden), http.StatusForbidden, "forbidden"},
		{"not approved", apperrors.ErrAccountNotApproved, http.StatusForbidden, "account is awaiting approval"},
		{"lda not found", apperrors.ErrLDANotFound, http.StatusNotFound, "lda not found"},
		{"contact not found", apperrors.ErrContactNotFound, http.StatusNotFound, "contact not found"},
		{"unknown lda", apperrors.ErrUnknownLDA, http.StatusBadRequest, "one or more lda ids do not exist"},
		{"lda ids on staff account", apperrors.ErrStaffLDAScope, http.StatusBadRequest, "lda ids are only allowed for the USER role"},
		{"link required", apperrors.ErrLinkRequired, http.StatusBadRequest, "one of ldaId, fundId or funderId is required"},
		{"duplicate email", apperrors.ErrUserAlreadyExists, http.StatusConflict, "user with this email already exists"},
		{"funder has funds", apperrors.ErrFunderHasFunds, http.StatusConflict, "funder still has funds"},
		{"anything else", errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(c, tt.err)

			assertError(t, w, tt.expectedStatus, tt.expectedMessage)
		})
	}
}

func TestPathID(t *testing.T) {
	id := primitive.NewObjectID()

	w := serve(t, nil, http.MethodGet, "/things/:id", "/things/"+id.Hex(), nil, func(c *gin.Context) {
		got, ok := pathID(c, "id")
		assert.True(t, ok)
		assert.Equal(t, id, got)
		c.Status(http.StatusOK)
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(t, nil, http.MethodGet, "/things/:id", "/things/nope", nil, func(c *gin.Context) {
		_, ok := pathID(c, "id")
		assert.False(t, ok)
	})
	assertError(t, w, http.StatusBadRequest, "invalid id")
}

func TestQueryID(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name     string
		target   string
		wantOK   bool
		wantNil  bool
		expected primitive.ObjectID
	}{
		{name: "absent", target: "/x", wantOK: true, wantNil: true},
		{name: "present", target: "/x?ldaId=" + id.Hex(), wantOK: true, expected: id},
		{name: "malformed", target: "/x?ldaId=zzz", wantOK: false, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serve(t, nil, http.MethodGet, "/x", tt.target, nil, func(c *gin.Context) {
				got, ok := queryID(c, "ldaId")
				assert.Equal(t, tt.wantOK, ok)
				if tt.wantNil {
					assert.Nil(t, got)
					return
				}
				if assert.NotNil(t, got) {
					assert.Equal(t, tt.expected, *got)
				}
			})
		})
	}
}

func TestPageParams(t *testing.T) {
	serve(t, nil, http.MethodGet, "/x", "/x", nil, func(c *gin.Context) {
		page, limit := pageParams(c)
		assert.Equal(t, 1, page)
		assert.Equal(t, 20, limit)
	})
	serve(t, nil, http.MethodGet, "/x", "/x?page=3&limit=5", nil, func(c *gin.Context) {
		page, limit := pageParams(c)
		assert.Equal(t, 3, page)
		assert.Equal(t, 5, limit)
	})
}
