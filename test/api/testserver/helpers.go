//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"lda-portal/internal/models"
	"lda-portal/test/fixtures"
	"lda-portal/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CapturingNotifier records issued password reset tokens by email.
type CapturingNotifier struct {
	mu     sync.Mutex
	tokens map[string]string
}

// SendPasswordReset implements service.ResetNotifier.
func (n *CapturingNotifier) SendPasswordReset(_ context.Context, user *models.User, token string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.tokens == nil {
		n.tokens = make(map[string]string)
	}
	n.tokens[user.Email] = token
	return nil
}

// TokenFor returns the last token sent to email.
func (n *CapturingNotifier) TokenFor(email string) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	token, ok := n.tokens[email]
	return token, ok
}

// Reset forgets all captured tokens.
func (n *CapturingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.tokens = nil
}

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()

	err := ah.server.UserRepo.Create(context.Background(), user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// Login logs in a user and returns the auth response data.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "login response should be successful")
	return resp.Data
}

// GetAccessToken logs in and returns just the access token.
func (ah *AuthHelper) GetAccessToken(t *testing.T, email, password string) string {
	t.Helper()

	data := ah.Login(t, email, password)
	token, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	return token
}

// SeedAndLogin inserts the built user and returns it with an access token.
func (ah *AuthHelper) SeedAndLogin(t *testing.T, b *fixtures.UserBuilder) (*models.User, string) {
	t.Helper()

	user := ah.SeedUser(t, b.BuildPtr())
	return user, ah.GetAccessToken(t, user.Email, fixtures.DefaultPassword)
}

// Staff seeds and logs in an approved user with a staff role.
func (ah *AuthHelper) Staff(t *testing.T, role models.Role) (*models.User, string) {
	t.Helper()
	return ah.SeedAndLogin(t, fixtures.NewUser().WithRole(role))
}

// LDAUser seeds and logs in an approved LDA user linked to ldaIDs.
func (ah *AuthHelper) LDAUser(t *testing.T, ldaIDs ...primitive.ObjectID) (*models.User, string) {
	t.Helper()
	return ah.SeedAndLogin(t, fixtures.NewUser().WithLDAs(ldaIDs...))
}

// DataHelper seeds domain records directly through the repositories.
type DataHelper struct {
	server *TestServer
}

// NewDataHelper creates a new data helper.
func NewDataHelper(server *TestServer) *DataHelper {
	return &DataHelper{server: server}
}

// SeedLDA directly inserts an LDA.
func (dh *DataHelper) SeedLDA(t *testing.T, lda *models.LDA) *models.LDA {
	t.Helper()
	require.NoError(t, dh.server.LDARepo.Create(context.Background(), lda), "failed to seed LDA")
	return lda
}

// SeedContact directly inserts a contact.
func (dh *DataHelper) SeedContact(t *testing.T, contact *models.Contact) *models.Contact {
	t.Helper()
	require.NoError(t, dh.server.ContactRepo.Create(context.Background(), contact), "failed to seed contact")
	return contact
}

// SeedDocument directly inserts a document.
func (dh *DataHelper) SeedDocument(t *testing.T, doc *models.Document) *models.Document {
	t.Helper()
	require.NoError(t, dh.server.DocumentRepo.Create(context.Background(), doc), "failed to seed document")
	return doc
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data.
// It handles both direct ID fields and nested objects (auth and upload responses).
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	for _, key := range []string{"user", "document", "media"} {
		if nested, ok := data[key].(map[string]interface{}); ok {
			if id, ok := nested["id"].(string); ok {
				return id
			}
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id, document.id, media.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	oid, err := primitive.ObjectIDFromHex(GetIDFromResponse(t, data))
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}
