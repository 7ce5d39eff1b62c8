package handler

import (
	"lda-portal/internal/middleware"
	"lda-portal/internal/models"
	"lda-portal/internal/service"
	"lda-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// FunderHandler handles HTTP requests for funder operations.
type FunderHandler struct {
	service service.FunderServicer
}

// NewFunderHandler creates a new FunderHandler.
func NewFunderHandler(service service.FunderServicer) *FunderHandler {
	return &FunderHandler{service: service}
}

// ListFunders godoc
// @Summary      List funders
// @Tags         funders
// @Produce      json
// @Param        page   query     int  false  "Page number"  default(1)
// @Param        limit  query     int  false  "Page size"    default(20)
// @Success      200    {object}  response.Response{data=models.FunderListResponse}
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /funders [get]
func (h *FunderHandler) ListFunders(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.service.List(c.Request.Context(), middleware.GetActor(c), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}

// GetFunder godoc
// @Summary      Get funder by ID
// @Tags         funders
// @Produce      json
// @Param        id   path      string  true  "Funder ID"
// @Success      200  {object}  response.Response{data=models.Funder}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /funders/{id} [get]
func (h *FunderHandler) GetFunder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	funder, err := h.service.Get(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, funder)
}

// CreateFunder godoc
// @Summary      Create funder
// @Tags         funders
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateFunderRequest  true  "Funder details"
// @Success      201      {object}  response.Response{data=models.Funder}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /funders [post]
func (h *FunderHandler) CreateFunder(c *gin.Context) {
	var req models.CreateFunderRequest
	if !bindJSON(c, &req) {
		return
	}

	funder, err := h.service.Create(c.Request.Context(), middleware.GetActor(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, funder)
}

// UpdateFunder godoc
// @Summary      Update funder
// @Tags         funders
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Funder ID"
// @Param        request  body      models.UpdateFunderRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Funder}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /funders/{id} [put]
func (h *FunderHandler) UpdateFunder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateFunderRequest
	if !bindJSON(c, &req) {
		return
	}

	funder, err := h.service.Update(c.Request.Context(), middleware.GetActor(c), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, funder)
}

// DeleteFunder godoc
// @Summary      Delete funder
// @Description  Delete a funder and its files. Fails with 409 while the funder still has funds.
// @Tags         funders
// @Param        id   path  string  true  "Funder ID"
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /funders/{id} [delete]
func (h *FunderHandler) DeleteFunder(c *gin.Context) {
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

// FundHandler handles HTTP requests for fund operations.
type FundHandler struct {
	service service.FundServicer
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(service service.FundServicer) *FundHandler {
	return &FundHandler{service: service}
}

// ListFunds godoc
// @Summary      List funds
// @Description  Admins may list every fund. Programme officers and LDA users must pass an ldaId they can view.
// @Tags         funds
// @Produce      json
// @Param        ldaId  query     string  false  "Only funds linked to this LDA"
// @Param        page   query     int     false  "Page number"  default(1)
// @Param        limit  query     int     false  "Page size"    default(20)
// @Success      200    {object}  response.Response{data=models.FundListResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /funds [get]
func (h *FundHandler) ListFunds(c *gin.Context) {
	ldaID, ok := queryID(c, "ldaId")
	if !ok {
		return
	}
	page, limit := pageParams(c)

	result, err := h.service.List(c.Request.Context(), middleware.GetActor(c), ldaID, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}

// GetFund godoc
// @Summary      Get fund by ID
// @Tags         funds
// @Produce      json
// @Param        id     path      string  true   "Fund ID"
// @Param        ldaId  query     string  false  "LDA the fund is viewed through"
// @Success      200    {object}  response.Response{data=models.Fund}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /funds/{id} [get]
func (h *FundHandler) GetFund(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ldaID, ok := queryID(c, "ldaId")
	if !ok {
		return
	}

	fund, err := h.service.Get(c.Request.Context(), middleware.GetActor(c), id, ldaID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, fund)
}

// CreateFund godoc
// @Summary      Create fund
// @Tags         funds
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateFundRequest  true  "Fund details"
// @Success      201      {object}  response.Response{data=models.Fund}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /funds [post]
func (h *FundHandler) CreateFund(c *gin.Context) {
	var req models.CreateFundRequest
	if !bindJSON(c, &req) {
		return
	}

	fund, err := h.service.Create(c.Request.Context(), middleware.GetActor(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, fund)
}

// UpdateFund godoc
// @Summary      Update fund
// @Tags         funds
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Fund ID"
// @Param        request  body      models.UpdateFundRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Fund}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /funds/{id} [put]
func (h *FundHandler) UpdateFund(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateFundRequest
	if !bindJSON(c, &req) {
		return
	}

	fund, err := h.service.Update(c.Request.Context(), middleware.GetActor(c), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, fund)
}

// DeleteFund godoc
// @Summary      Delete fund
// @Description  Delete a fund and its files, and unlink it from LDAs
// @Tags         funds
// @Param        id   path  string  true  "Fund ID"
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /funds/{id} [delete]
func (h *FundHandler) DeleteFund(c *gin.Context) {
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
