package handler

import (
	"net/http"

	"github.com/vineethtatipatri19/PGVMS/internal/apierror"
	"github.com/vineethtatipatri19/PGVMS/internal/dto"
	"github.com/vineethtatipatri19/PGVMS/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionsHandler struct{ svc service.TransactionService }

func NewTransactionsHandler(svc service.TransactionService) *TransactionsHandler {
	return &TransactionsHandler{svc: svc}
}

// Record creates a sale or payment. A sale with crates_issued > 0 also writes
// a crate issue entry dated the same day.
func (h *TransactionsHandler) Record(c *gin.Context) {
	var req dto.RecordTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Record(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List returns transactions filtered by view, customer and item substring,
// newest first.
func (h *TransactionsHandler) List(c *gin.Context) {
	var filter dto.TransactionFilter
	if !bindAndValidateQuery(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list transactions"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Replace swaps the whole transaction for the submitted one. Partial updates
// are not supported; the record is re-validated as if newly created.
func (h *TransactionsHandler) Replace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.RecordTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Replace(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransactionsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
