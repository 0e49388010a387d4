package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdb-lk/cpds-api/internal/models"
	appErrors "github.com/cdb-lk/cpds-api/pkg/errors"
)

type reportProviderStub struct {
	distribution *models.DistributionSummary
	nurseries    *models.NurserySummary
}

func (s *reportProviderStub) Distribution(context.Context, models.UserRole) (*models.DistributionSummary, error) {
	return s.distribution, nil
}

func (s *reportProviderStub) Nurseries(context.Context, models.UserRole) (*models.NurserySummary, error) {
	return s.nurseries, nil
}

func exportFixture() *reportProviderStub {
	return &reportProviderStub{
		distribution: &models.DistributionSummary{
			Programs: []string{"P1"},
			Rows: []models.DistributionRow{
				{CDODivision: "North", Cells: []models.DistributionCell{
					{Program: "P1", Total: 100, Issued: 40, Receipts: 30, Balance: 70},
				}},
			},
		},
		nurseries: &models.NurserySummary{
			Nurseries: []string{models.NurseryHadpanagala, models.NurseryWalipitiya},
			Rows: []models.NurseryRow{
				{Program: "P1", Cells: []models.NurseryCell{
					{Nursery: models.NurseryHadpanagala, Total: 100, Issued: 40, Balance: 60},
					{Nursery: models.NurseryWalipitiya, Total: 50, Issued: 50, Balance: 0},
				}},
			},
			GrandTotals: []models.NurseryCell{
				{Nursery: models.NurseryHadpanagala, Total: 100, Issued: 40, Balance: 60},
				{Nursery: models.NurseryWalipitiya, Total: 50, Issued: 50, Balance: 0},
			},
		},
	}
}

func testExportService(reports reportProvider) *ExportService {
	svc := NewExportService(reports, ExportConfig{}, nil, nil, nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestExportServiceDistributionCSV(t *testing.T) {
	svc := testExportService(exportFixture())

	result, err := svc.Distribution(context.Background(), models.RoleAdmin, ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "CPDS_Program_Report_2026-03-14.csv", result.Filename)
	assert.Equal(t, "text/csv", result.ContentType)

	lines := strings.Split(strings.TrimSpace(string(result.Payload)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "CDO Division,P1 - Total,P1 - Issued,P1 - Receipts,P1 - Balance", lines[0])
	assert.Equal(t, "North,100,40,30,70", lines[1])
}

func TestExportServiceNurseriesCSVIncludesGrandTotal(t *testing.T) {
	svc := testExportService(exportFixture())

	result, err := svc.Nurseries(context.Background(), models.RoleAdmin, ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "CPDS_Nursery_Report_2026-03-14.csv", result.Filename)

	lines := strings.Split(strings.TrimSpace(string(result.Payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Program,Hadpanagal - Total,Hadpanagal - Issued,Hadpanagal - Balance,Walipitiya - Total,Walipitiya - Issued,Walipitiya - Balance", lines[0])
	assert.Equal(t, "P1,100,40,60,50,50,0", lines[1])
	assert.Equal(t, "Grand Total,100,40,60,50,50,0", lines[2])
}

func TestExportServicePDF(t *testing.T) {
	svc := testExportService(exportFixture())

	result, err := svc.Distribution(context.Background(), models.RoleAdmin, ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "CPDS_Program_Report_2026-03-14.pdf", result.Filename)
	assert.True(t, strings.HasPrefix(string(result.Payload), "%PDF"))
}

func TestExportServiceUnsupportedFormat(t *testing.T) {
	svc := testExportService(exportFixture())

	_, err := svc.Distribution(context.Background(), models.RoleAdmin, "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
