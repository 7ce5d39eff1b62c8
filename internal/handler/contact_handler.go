package handler

import (
	"lda-portal/internal/middleware"
	"lda-portal/internal/models"
	"lda-portal/internal/service"
	"lda-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles HTTP requests for contact operations.
type ContactHandler struct {
	service service.ContactServicer
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service service.ContactServicer) *ContactHandler {
	return &ContactHandler{service: service}
}

// ListLDAContacts godoc
// @Summary      List an LDA's contacts
// @Tags         contacts
// @Produce      json
// @Param        ldaId  path      string  true   "LDA ID"
// @Param        page   query     int     false  "Page number"  default(1)
// @Param        limit  query     int     false  "Page size"    default(20)
// @Success      200    {object}  response.Response{data=models.ContactListResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /ldas/{ldaId}/contacts [get]
func (h *ContactHandler) ListLDAContacts(c *gin.Context) {
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

// GetContact godoc
// @Summary      Get contact by ID
// @Description  Staff see every contact; LDA users see contacts sharing one of their LDAs
// @Tags         contacts
// @Produce      json
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  response.Response{data=models.Contact}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	contact, err := h.service.Get(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, contact)
}

// CreateContact godoc
// @Summary      Create contact
// @Description  The caller needs access to every LDA the contact is linked to
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateContactRequest  true  "Contact details"
// @Success      201      {object}  response.Response{data=models.Contact}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req models.CreateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.service.Create(c.Request.Context(), middleware.GetActor(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, contact)
}

// UpdateContact godoc
// @Summary      Update contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Contact ID"
// @Param        request  body      models.UpdateContactRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Contact}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.service.Update(c.Request.Context(), middleware.GetActor(c), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, contact)
}

// DeleteContact godoc
// @Summary      Delete contact
// @Tags         contacts
// @Param        id   path  string  true  "Contact ID"
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
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
