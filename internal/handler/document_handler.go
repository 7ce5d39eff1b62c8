package handler

import (
	"lda-portal/internal/middleware"
	"lda-portal/internal/models"
	"lda-portal/internal/service"
	"lda-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentHandler handles HTTP requests for document operations.
type DocumentHandler struct {
	service service.DocumentServicer
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(service service.DocumentServicer) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func (h *DocumentHandler) list(c *gin.Context, filter models.FileFilter) {
	page, limit := pageParams(c)

	result, err := h.service.List(c.Request.Context(), middleware.GetActor(c), filter, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}

func (h *DocumentHandler) listBy(c *gin.Context, param string, build func(*primitive.ObjectID) models.FileFilter) {
	id, ok := pathID(c, param)
	if !ok {
		return
	}
	h.list(c, build(&id))
}

// ListLDADocuments godoc
// @Summary      List an LDA's documents
// @Tags         documents
// @Produce      json
// @Param        ldaId  path      string  true   "LDA ID"
// @Param        page   query     int     false  "Page number"  default(1)
// @Param        limit  query     int     false  "Page size"    default(20)
// @Success      200    {object}  response.Response{data=models.DocumentListResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /ldas/{ldaId}/documents [get]
func (h *DocumentHandler) ListLDADocuments(c *gin.Context) {
	h.listBy(c, "ldaId", func(id *primitive.ObjectID) models.FileFilter {
		return models.FileFilter{LDAID: id}
	})
}

// ListFundDocuments godoc
// @Summary      List a fund's documents
// @Description  Staff only.
// @Tags         documents
// @Produce      json
// @Param        id     path      string  true   "Fund ID"
// @Param        page   query     int     false  "Page number"  default(1)
// @Param        limit  query     int     false  "Page size"    default(20)
// @Success      200    {object}  response.Response{data=models.DocumentListResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /funds/{id}/documents [get]
func (h *DocumentHandler) ListFundDocuments(c *gin.Context) {
	h.listBy(c, "id", func(id *primitive.ObjectID) models.FileFilter {
		return models.FileFilter{FundID: id}
	})
}

// ListFunderDocuments godoc
// @Summary      List a funder's documents
// @Description  Staff only.
// @Tags         documents
// @Produce      json
// @Param        id     path      string  true   "Funder ID"
// @Param        page   query     int     false  "Page number"  default(1)
// @Param        limit  query     int     false  "Page size"    default(20)
// @Success      200    {object}  response.Response{data=models.DocumentListResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /funders/{id}/documents [get]
func (h *DocumentHandler) ListFunderDocuments(c *gin.Context) {
	h.listBy(c, "id", func(id *primitive.ObjectID) models.FileFilter {
		return models.FileFilter{FunderID: id}
	})
}

// GetDocument godoc
// @Summary      Get document by ID
// @Description  Returns the document with a short-lived download URL
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  response.Response{data=models.Document}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	doc, err := h.service.Get(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, doc)
}

// CreateDocument godoc
// @Summary      Create document
// @Description  Register a document linked to an LDA, fund or funder and get a pre-signed URL to upload the file to
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateDocumentRequest  true  "Document details"
// @Success      201      {object}  response.Response{data=models.CreateDocumentResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req models.CreateDocumentRequest
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

// UpdateDocument godoc
// @Summary      Update document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Document ID"
// @Param        request  body      models.UpdateDocumentRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Document}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateDocumentRequest
	if !bindJSON(c, &req) {
		return
	}

	doc, err := h.service.Update(c.Request.Context(), middleware.GetActor(c), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, doc)
}

// DeleteDocument godoc
// @Summary      Delete document
// @Description  Delete a document. Its stored file is removed in the background.
// @Tags         documents
// @Param        id   path  string  true  "Document ID"
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
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
