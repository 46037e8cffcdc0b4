package handler

import (
	"net/http"

	"github.com/vineethtatipatri19/PGVMS/internal/apierror"
	"github.com/vineethtatipatri19/PGVMS/internal/dto"
	"github.com/vineethtatipatri19/PGVMS/internal/ledger"
	"github.com/vineethtatipatri19/PGVMS/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CratesHandler struct{ svc service.CrateService }

func NewCratesHandler(svc service.CrateService) *CratesHandler {
	return &CratesHandler{svc: svc}
}

func (h *CratesHandler) Record(c *gin.Context) {
	var req dto.SaveCrateEntryRequest
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

// Ledger returns the crate movement history with running balances plus the
// per-customer summary. The view parameter narrows the list after balancing.
func (h *CratesHandler) Ledger(c *gin.Context) {
	view := ledger.CrateView(c.DefaultQuery("view", "all"))
	switch view {
	case ledger.CrateViewAll, ledger.CrateViewIssued, ledger.CrateViewReturned:
	default:
		c.JSON(http.StatusBadRequest, apierror.New("Invalid view: must be all, issued or returned"))
		return
	}
	resp, err := h.svc.Ledger(c.Request.Context(), view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load crate ledger"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CratesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.SaveCrateEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CratesHandler) Delete(c *gin.Context) {
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
