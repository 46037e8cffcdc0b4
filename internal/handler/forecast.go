package handler

import (
	"net/http"

	"github.com/vineethtatipatri19/PGVMS/internal/apierror"
	"github.com/vineethtatipatri19/PGVMS/internal/dto"
	"github.com/vineethtatipatri19/PGVMS/internal/service"

	"github.com/gin-gonic/gin"
)

type ForecastHandler struct{ svc service.ForecastService }

func NewForecastHandler(svc service.ForecastService) *ForecastHandler {
	return &ForecastHandler{svc: svc}
}

// Forecast asks the model for a per-item demand prediction built from the
// sales history plus the caller's weather and season context. One attempt
// per request; failures surface as a single error.
func (h *ForecastHandler) Forecast(c *gin.Context) {
	var req dto.ForecastRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Forecast(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
