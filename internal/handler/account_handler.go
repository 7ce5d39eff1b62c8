package handler

import (
	"lda-portal/internal/middleware"
	"lda-portal/internal/models"
	"lda-portal/internal/service"
	"lda-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles the caller's own profile.
type AccountHandler struct {
	service service.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service service.AccountServicer) *AccountHandler {
	return &AccountHandler{service: service}
}

// GetAccount godoc
// @Summary      Get own account
// @Tags         account
// @Produce      json
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /account [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	user, err := h.service.Get(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, user)
}

// UpdateAccount godoc
// @Summary      Update own account
// @Description  Change the caller's name or email. Role, approval and LDA scope are managed by administrators.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request  body      models.UpdateAccountRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /account [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	var req models.UpdateAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Update(c.Request.Context(), middleware.GetActor(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, user)
}

// ChangePassword godoc
// @Summary      Change own password
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request  body      models.ChangePasswordRequest  true  "Current and new password"
// @Success      204      "No Content"
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /account/password [put]
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), middleware.GetActor(c), &req); err != nil {
		writeError(c, err)
		return
	}

	response.NoContent(c)
}
