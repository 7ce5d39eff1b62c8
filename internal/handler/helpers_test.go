package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"lda-portal/internal/authz"
	"lda-portal/internal/middleware"
	"lda-portal/internal/models"
	"lda-portal/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

// setActor is a helper middleware that stands in for Auth.
func setActor(actor *authz.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor != nil {
			c.Set(middleware.ActorKey, actor)
		}
		c.Next()
	}
}

func superActor() *authz.Actor {
	return &authz.Actor{ID: primitive.NewObjectID(), Role: models.RoleSuperUser}
}

func ldaActor(ldaIDs ...primitive.ObjectID) *authz.Actor {
	return &authz.Actor{ID: primitive.NewObjectID(), Role: models.RoleUser, LDAIDs: ldaIDs}
}

// serve registers h under method and route behind setActor and runs one
// request against it. body is JSON-encoded unless it is already a string.
func serve(t *testing.T, actor *authz.Actor, method, route, target string, body any, h gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.Handle(method, route, setActor(actor), h)

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code)
	resp := decodeBody(t, w)
	require.Equal(t, false, resp["success"])
	if message != "" {
		require.Equal(t, message, resp["error"])
	}
}
