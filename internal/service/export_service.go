package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/cdb-lk/cpds-api/internal/models"
	appErrors "github.com/cdb-lk/cpds-api/pkg/errors"
	"github.com/cdb-lk/cpds-api/pkg/export"
)

// Export formats supported by the report endpoints.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type reportProvider interface {
	Distribution(ctx context.Context, role models.UserRole) (*models.DistributionSummary, error)
	Nurseries(ctx context.Context, role models.UserRole) (*models.NurserySummary, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportConfig tunes export rendering.
type ExportConfig struct {
	FilenamePrefix string
}

// ExportResult is a rendered report ready to send inline.
type ExportResult struct {
	Payload     []byte
	Filename    string
	ContentType string
}

// ExportService renders the two aggregates into downloadable files. Rows
// and columns follow taxonomy order; the original two-level header is
// flattened to "Program - Column" labels.
type ExportService struct {
	reports reportProvider
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
	cfg     ExportConfig
	now     func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(reports reportProvider, cfg ExportConfig, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FilenamePrefix == "" {
		cfg.FilenamePrefix = "CPDS"
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{reports: reports, csv: csv, pdf: pdf, logger: logger, cfg: cfg, now: time.Now}
}

// Distribution renders the division x program report.
func (s *ExportService) Distribution(ctx context.Context, role models.UserRole, format string) (*ExportResult, error) {
	summary, err := s.reports.Distribution(ctx, role)
	if err != nil {
		return nil, err
	}
	dataset := distributionDataset(summary)
	title := fmt.Sprintf("Coconut Plant Distribution Report - %s", s.now().UTC().Format("2006-01-02"))
	return s.render(dataset, title, fmt.Sprintf("%s_Program_Report", s.cfg.FilenamePrefix), format)
}

// Nurseries renders the nursery x program report.
func (s *ExportService) Nurseries(ctx context.Context, role models.UserRole, format string) (*ExportResult, error) {
	summary, err := s.reports.Nurseries(ctx, role)
	if err != nil {
		return nil, err
	}
	dataset := nurseryDataset(summary)
	title := fmt.Sprintf("Nursery-wise Distribution Report - %s", s.now().UTC().Format("2006-01-02"))
	return s.render(dataset, title, fmt.Sprintf("%s_Nursery_Report", s.cfg.FilenamePrefix), format)
}

func (s *ExportService) render(dataset export.Dataset, title, stem, format string) (*ExportResult, error) {
	var payload []byte
	var contentType string
	var err error

	switch format {
	case ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	filename := fmt.Sprintf("%s_%s.%s", stem, s.now().UTC().Format("2006-01-02"), format)
	return &ExportResult{Payload: payload, Filename: filename, ContentType: contentType}, nil
}

func distributionDataset(summary *models.DistributionSummary) export.Dataset {
	headers := []string{"CDO Division"}
	for _, program := range summary.Programs {
		headers = append(headers,
			program+" - Total",
			program+" - Issued",
			program+" - Receipts",
			program+" - Balance",
		)
	}

	rows := make([]map[string]string, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		record := map[string]string{"CDO Division": row.CDODivision}
		for _, cell := range row.Cells {
			record[cell.Program+" - Total"] = strconv.Itoa(cell.Total)
			record[cell.Program+" - Issued"] = strconv.Itoa(cell.Issued)
			record[cell.Program+" - Receipts"] = strconv.Itoa(cell.Receipts)
			record[cell.Program+" - Balance"] = strconv.Itoa(cell.Balance)
		}
		rows = append(rows, record)
	}

	return export.Dataset{Headers: headers, Rows: rows}
}

func nurseryDataset(summary *models.NurserySummary) export.Dataset {
	headers := []string{"Program"}
	for _, nursery := range summary.Nurseries {
		headers = append(headers,
			nursery+" - Total",
			nursery+" - Issued",
			nursery+" - Balance",
		)
	}

	rows := make([]map[string]string, 0, len(summary.Rows)+1)
	for _, row := range summary.Rows {
		record := map[string]string{"Program": row.Program}
		for _, cell := range row.Cells {
			record[cell.Nursery+" - Total"] = strconv.Itoa(cell.Total)
			record[cell.Nursery+" - Issued"] = strconv.Itoa(cell.Issued)
			record[cell.Nursery+" - Balance"] = strconv.Itoa(cell.Balance)
		}
		rows = append(rows, record)
	}

	grand := map[string]string{"Program": "Grand Total"}
	for _, cell := range summary.GrandTotals {
		grand[cell.Nursery+" - Total"] = strconv.Itoa(cell.Total)
		grand[cell.Nursery+" - Issued"] = strconv.Itoa(cell.Issued)
		grand[cell.Nursery+" - Balance"] = strconv.Itoa(cell.Balance)
	}
	rows = append(rows, grand)

	return export.Dataset{Headers: headers, Rows: rows}
}
