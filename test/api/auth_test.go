//go:build api

package api

import (
	"net/http"
	"testing"

	"lda-portal/internal/models"
	"lda-portal/test/api/testserver"
	"lda-portal/test/fixtures"
	"lda-portal/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegister tests the POST /api/v1/auth/register endpoint.
func TestRegister(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	t.Run("success - creates pending LDA user", func(t *testing.T) {
		req := models.RegisterRequest{
			Name:     "Test User",
			Email:    "Test@Example.com",
			Password: "password123",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/register", req)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		assert.Equal(t, http.StatusAccepted, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		assert.NotContains(t, resp.Data, "accessToken")

		user, err := testServer.UserRepo.FindByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, models.RoleUser, user.Role)
		assert.False(t, user.Approved)
		assert.Empty(t, user.LDAIDs)
	})

	t.Run("success - duplicate email is indistinguishable", func(t *testing.T) {
		req := models.RegisterRequest{
			Name:     "Someone Else",
			Email:    "test@example.com",
			Password: "password456",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/register", req)
		ctx, cancel := testutil.TestContext()
		defer cancel()

		assert.Equal(t, http.StatusAccepted, w.Code)

		user, err := testServer.UserRepo.FindByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Test User", user.Name)
	})

	t.Run("error - missing required fields", func(t *testing.T) {
		req := map[string]string{"email": "new@example.com"}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/register", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, testutil.ParseAPIResponse(t, w).Success)
	})

	t.Run("error - password too short", func(t *testing.T) {
		req := models.RegisterRequest{
			Name:     "Test User",
			Email:    "short@example.com",
			Password: "short",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/register", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestLogin tests the POST /api/v1/auth/login endpoint.
func TestLogin(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)

	approved := authHelper.SeedUser(t, fixtures.NewUser().WithEmail("approved@example.com").BuildPtr())
	authHelper.SeedUser(t, fixtures.NewUser().WithEmail("pending@example.com").Pending().BuildPtr())

	t.Run("success - returns access token for approved account", func(t *testing.T) {
		data := authHelper.Login(t, "approved@example.com", fixtures.DefaultPassword)

		assert.NotEmpty(t, data["accessToken"])
		assert.Greater(t, data["expiresIn"], float64(0))

		user, ok := data["user"].(map[string]interface{})
		require.True(t, ok, "user should be an object")
		assert.Equal(t, approved.ID.Hex(), user["id"])
		assert.NotContains(t, user, "password")
	})

	t.Run("error - pending account is forbidden", func(t *testing.T) {
		req := models.LoginRequest{Email: "pending@example.com", Password: fixtures.DefaultPassword}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "account is awaiting approval", testutil.ParseAPIResponse(t, w).Error)
	})

	t.Run("error - wrong password", func(t *testing.T) {
		req := models.LoginRequest{Email: "approved@example.com", Password: "wrongpassword"}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error - unknown email looks like wrong password", func(t *testing.T) {
		req := models.LoginRequest{Email: "nobody@example.com", Password: "password123"}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid email or password", testutil.ParseAPIResponse(t, w).Error)
	})

	t.Run("error - invalid email format", func(t *testing.T) {
		req := map[string]string{"email": "not-an-email", "password": "password123"}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestPasswordReset covers forgot-password followed by reset-password.
func TestPasswordReset(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)

	authHelper.SeedUser(t, fixtures.NewUser().WithEmail("reset@example.com").BuildPtr())

	t.Run("unknown email is accepted without issuing a token", func(t *testing.T) {
		req := models.ForgotPasswordRequest{Email: "nobody@example.com"}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/forgot-password", req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		_, ok := testServer.Notifier.TokenFor("nobody@example.com")
		assert.False(t, ok)
	})

	t.Run("token resets the password once", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/forgot-password",
			models.ForgotPasswordRequest{Email: "reset@example.com"})
		require.Equal(t, http.StatusAccepted, w.Code)

		token, ok := testServer.Notifier.TokenFor("reset@example.com")
		require.True(t, ok, "reset token should have been sent")

		reset := models.ResetPasswordRequest{Token: token, NewPassword: "brandnewpass"}
		w = testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/reset-password", reset)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		authHelper.Login(t, "reset@example.com", "brandnewpass")

		w = testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login",
			models.LoginRequest{Email: "reset@example.com", Password: fixtures.DefaultPassword})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/reset-password", reset)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		reset := models.ResetPasswordRequest{Token: "garbage", NewPassword: "brandnewpass"}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/reset-password", reset)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid or expired reset token", testutil.ParseAPIResponse(t, w).Error)
	})
}

// TestAccount covers the authenticated account endpoints.
func TestAccount(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)

	t.Run("error - missing token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/account", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error - invalid token", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/account", "not-a-jwt", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("success - returns own account", func(t *testing.T) {
		user, token := authHelper.Staff(t, models.RoleAdmin)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/account", token, nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, user.ID.Hex(), resp.Data["id"])
		assert.Equal(t, string(models.RoleAdmin), resp.Data["role"])
	})

	t.Run("error - revoked approval takes effect on the next request", func(t *testing.T) {
		user, token := authHelper.LDAUser(t)

		ctx, cancel := testutil.TestContext()
		defer cancel()

		approved := false
		_, err := testServer.UserRepo.Update(ctx, user.ID, &models.UserUpdate{Approved: &approved})
		require.NoError(t, err)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/account", token, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
