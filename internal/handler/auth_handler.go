package handler

import (
	"lda-portal/internal/models"
	"lda-portal/internal/service"
	"lda-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	registeredMessage     = "if the email can be registered, the account awaits approval"
	resetRequestedMessage = "if the email is registered, a reset link has been sent"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary      Register for an account
// @Description  Request an LDA user account. The account must be approved before it can sign in. The response is the same whether or not the email is already registered.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.RegisterRequest  true  "Registration details"
// @Success      202      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.Register(c.Request.Context(), &req); err != nil {
		writeError(c, err)
		return
	}

	response.Accepted(c, gin.H{"message": registeredMessage})
}

// Login godoc
// @Summary      User login
// @Description  Authenticate with email and password and return an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}

// ForgotPassword godoc
// @Summary      Request a password reset
// @Description  Issue a single-use reset token. Always answers 202 so callers cannot tell which accounts exist.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.ForgotPasswordRequest  true  "Account email"
// @Success      202      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), &req); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("forgot password failed")
	}

	response.Accepted(c, gin.H{"message": resetRequestedMessage})
}

// ResetPassword godoc
// @Summary      Reset a password
// @Description  Set a new password using a reset token. The token is consumed.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.ResetPasswordRequest  true  "Reset token and new password"
// @Success      204      "No Content"
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		writeError(c, err)
		return
	}

	response.NoContent(c)
}
