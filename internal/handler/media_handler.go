package handler

import (
	"lda-portal/internal/middleware"
	"lda-portal/internal/models"
	"lda-portal/internal/service"
	"lda-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// MediaHandler handles HTTP requests for media operations.
type MediaHandler struct {
	service service.MediaServicer
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(service service.MediaServicer) *MediaHandler {
	return &MediaHandler{service: service}
}

// ListLDAMedia godoc
// @Summary      List an LDA's media
// @Tags         media
// @Produce      json
// @Param        ldaId  path      string  true   "LDA ID"
// @Param        page   query     int     false  "Page number"  default(1)
// @Param        limit  query     int     false  "Page size"    default(20)
// @Success      200    {object}  response.Response{data=models.MediaListResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /ldas/{ldaId}/media [get]
func (h *MediaHandler) ListLDAMedia(c *gin.Context) {
	ldaID, ok := pathID(c, "ldaId")
	if !ok {
		return
	}
	page, limit := pageParams(c)

	result, err := h.service.ListByLDA(c.Request.Context(), middleware.GetActor(c), ldaID, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}

// GetMedia godoc
// @Summary      Get media item by ID
// @Tags         media
// @Produce      json
// @Param        id   path      string  true  "Media ID"
// @Success      200  {object}  response.Response{data=models.Media}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /media/{id} [get]
func (h *MediaHandler) GetMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, item)
}

// CreateMedia godoc
// @Summary      Create media item
// @Description  Register a photo or video and get a pre-signed URL to upload the file to
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateMediaRequest  true  "Media details"
// @Success      201      {object}  response.Response{data=models.CreateMediaResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /media [post]
func (h *MediaHandler) CreateMedia(c *gin.Context) {
	var req models.CreateMediaRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.Create(c.Request.Context(), middleware.GetActor(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateMedia godoc
// @Summary      Update media item
// @Description  Only the item's creator or a super user may edit it
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Media ID"
// @Param        request  body      models.UpdateMediaRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Media}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /media/{id} [put]
func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateMediaRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.service.Update(c.Request.Context(), middleware.GetActor(c), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, item)
}

// DeleteMedia godoc
// @Summary      Delete media item
// @Description  Super users only. The stored file is removed in the background.
// @Tags         media
// @Param        id   path  string  true  "Media ID"
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /media/{id} [delete]
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		writeError(c, err)
		return
	}

	response.NoContent(c)
}
