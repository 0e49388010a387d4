package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cdb-lk/cpds-api/internal/models"
	"github.com/cdb-lk/cpds-api/internal/service"
	"github.com/cdb-lk/cpds-api/pkg/response"
)

type exportService interface {
	Distribution(ctx context.Context, role models.UserRole, format string) (*service.ExportResult, error)
	Nurseries(ctx context.Context, role models.UserRole, format string) (*service.ExportResult, error)
}

// ExportHandler streams rendered report files.
type ExportHandler struct {
	service exportService
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Distribution godoc
// @Summary Download the distribution report as CSV or PDF
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /reports/distribution/export [get]
func (h *ExportHandler) Distribution(c *gin.Context) {
	result, err := h.service.Distribution(c.Request.Context(), roleFromContext(c), exportFormat(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	writeExport(c, result)
}

// Nurseries godoc
// @Summary Download the nursery report as CSV or PDF
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /reports/nurseries/export [get]
func (h *ExportHandler) Nurseries(c *gin.Context) {
	result, err := h.service.Nurseries(c.Request.Context(), roleFromContext(c), exportFormat(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	writeExport(c, result)
}

func exportFormat(c *gin.Context) string {
	return c.DefaultQuery("format", service.ExportFormatCSV)
}

func writeExport(c *gin.Context, result *service.ExportResult) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
