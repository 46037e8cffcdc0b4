package handler

import (
	"net/http"

	"github.com/vineethtatipatri19/PGVMS/internal/apierror"
	"github.com/vineethtatipatri19/PGVMS/internal/dto"
	"github.com/vineethtatipatri19/PGVMS/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Business returns the business-wide transaction report for a date range.
// Both boundary days are included in full.
func (h *ReportsHandler) Business(c *gin.Context) {
	var query dto.ReportQuery
	if !bindAndValidateQuery(c, &query) {
		return
	}
	resp, err := h.svc.BusinessReport(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CustomerStatement returns a single customer's statement for a date range.
func (h *ReportsHandler) CustomerStatement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid customer id"))
		return
	}
	var query dto.ReportQuery
	if !bindAndValidateQuery(c, &query) {
		return
	}
	resp, err := h.svc.CustomerStatement(c.Request.Context(), id, query)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QueueStatement enqueues asynchronous PDF rendering of a statement; the job
// id is returned immediately and the worker pool does the rest.
func (h *ReportsHandler) QueueStatement(c *gin.Context) {
	var customerID *uuid.UUID
	if raw := c.Param("id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Invalid customer id"))
			return
		}
		customerID = &id
	}
	var req dto.StatementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.QueueStatement(c.Request.Context(), customerID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusAccepted, resp)
}
