package handler

import (
	"lda-portal/internal/middleware"
	"lda-portal/internal/models"
	"lda-portal/internal/service"
	"lda-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// LDAHandler handles HTTP requests for LDA operations.
type LDAHandler struct {
	service service.LDAServicer
}

// NewLDAHandler creates a new LDAHandler.
func NewLDAHandler(service service.LDAServicer) *LDAHandler {
	return &LDAHandler{service: service}
}

// ListLDAs godoc
// @Summary      List LDAs
// @Description  Staff see every LDA; LDA users see the LDAs they are linked to.
// @Tags         ldas
// @Produce      json
// @Param        page   query     int  false  "Page number"  default(1)
// @Param        limit  query     int  false  "Page size"    default(20)
// @Success      200    {object}  response.Response{data=models.LDAListResponse}
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /ldas [get]
func (h *LDAHandler) ListLDAs(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.service.List(c.Request.Context(), middleware.GetActor(c), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}

// GetLDA godoc
// @Summary      Get LDA by ID
// @Tags         ldas
// @Produce      json
// @Param        ldaId  path      string  true  "LDA ID"
// @Success      200    {object}  response.Response{data=models.LDA}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /ldas/{ldaId} [get]
func (h *LDAHandler) GetLDA(c *gin.Context) {
	id, ok := pathID(c, "ldaId")
	if !ok {
		return
	}

	lda, err := h.service.Get(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, lda)
}

// CreateLDA godoc
// @Summary      Create LDA
// @Tags         ldas
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateLDARequest  true  "LDA details"
// @Success      201      {object}  response.Response{data=models.LDA}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /ldas [post]
func (h *LDAHandler) CreateLDA(c *gin.Context) {
	var req models.CreateLDARequest
	if !bindJSON(c, &req) {
		return
	}

	lda, err := h.service.Create(c.Request.Context(), middleware.GetActor(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, lda)
}

// UpdateLDA godoc
// @Summary      Update LDA
// @Description  Update an LDA's details. Changing fundIds also requires fund management rights.
// @Tags         ldas
// @Accept       json
// @Produce      json
// @Param        ldaId    path      string                   true  "LDA ID"
// @Param        request  body      models.UpdateLDARequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.LDA}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /ldas/{ldaId} [put]
func (h *LDAHandler) UpdateLDA(c *gin.Context) {
	id, ok := pathID(c, "ldaId")
	if !ok {
		return
	}

	var req models.UpdateLDARequest
	if !bindJSON(c, &req) {
		return
	}

	lda, err := h.service.Update(c.Request.Context(), middleware.GetActor(c), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, lda)
}

// DeleteLDA godoc
// @Summary      Delete LDA
// @Description  Delete an LDA with its documents and media, and unlink it from users and contacts
// @Tags         ldas
// @Param        ldaId  path  string  true  "LDA ID"
// @Success      204    "No Content"
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /ldas/{ldaId} [delete]
func (h *LDAHandler) DeleteLDA(c *gin.Context) {
	id, ok := pathID(c, "ldaId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		writeError(c, err)
		return
	}

	response.NoContent(c)
}
