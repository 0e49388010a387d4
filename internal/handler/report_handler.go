package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cdb-lk/cpds-api/internal/models"
	"github.com/cdb-lk/cpds-api/pkg/response"
)

type reportService interface {
	Distribution(ctx context.Context, role models.UserRole) (*models.DistributionSummary, error)
	Nurseries(ctx context.Context, role models.UserRole) (*models.NurserySummary, error)
}

// ReportHandler exposes the aggregate report endpoints.
type ReportHandler struct {
	service reportService
}

// NewReportHandler builds a new handler.
func NewReportHandler(service reportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Distribution godoc
// @Summary Division by program distribution summary
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/distribution [get]
func (h *ReportHandler) Distribution(c *gin.Context) {
	summary, err := h.service.Distribution(c.Request.Context(), roleFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// Nurseries godoc
// @Summary Nursery by program distribution summary
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/nurseries [get]
func (h *ReportHandler) Nurseries(c *gin.Context) {
	summary, err := h.service.Nurseries(c.Request.Context(), roleFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}
