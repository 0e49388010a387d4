package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/cdb-lk/cpds-api/internal/models"
)

type reportAnnouncementRepository interface {
	List(ctx context.Context) ([]models.Announcement, error)
}

type reportSettingsRepository interface {
	Get(ctx context.Context) (*models.SettingsData, error)
}

var primaryNurseries = []string{models.NurseryHadpanagala, models.NurseryWalipitiya}

// ReportService rolls the announcement collection into the two cross-tab
// aggregates. Both are recomputed from scratch on every call: the
// collection stays small and a cache would only add staleness concerns.
type ReportService struct {
	announcements reportAnnouncementRepository
	settings      reportSettingsRepository
	logger        *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(announcements reportAnnouncementRepository, settings reportSettingsRepository, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{announcements: announcements, settings: settings, logger: logger}
}

// Distribution returns the division x program aggregate over the subset of
// announcements the role may see.
func (s *ReportService) Distribution(ctx context.Context, role models.UserRole) (*models.DistributionSummary, error) {
	list, settings, err := s.inputs(ctx, role)
	if err != nil {
		return nil, err
	}
	return BuildDistributionSummary(list, settings), nil
}

// Nurseries returns the nursery x program aggregate over the subset of
// announcements the role may see.
func (s *ReportService) Nurseries(ctx context.Context, role models.UserRole) (*models.NurserySummary, error) {
	list, settings, err := s.inputs(ctx, role)
	if err != nil {
		return nil, err
	}
	return BuildNurserySummary(list, settings), nil
}

func (s *ReportService) inputs(ctx context.Context, role models.UserRole) ([]models.Announcement, *models.SettingsData, error) {
	list, err := s.announcements.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	return VisibleAnnouncements(role, list), settings, nil
}

type distributionTotals struct {
	total    int
	issued   int
	receipts int
}

// BuildDistributionSummary folds announcements into zero-initialized
// (division, program) cells. Records referencing a division or program
// missing from the current taxonomy are silently dropped, not an error.
// Duplicate taxonomy names collapse onto a single accumulation cell, so a
// record is never counted twice; the duplicate still renders as its own row
// in list order.
func BuildDistributionSummary(list []models.Announcement, settings *models.SettingsData) *models.DistributionSummary {
	cells := make(map[string]map[string]*distributionTotals, len(settings.CDODivisions))
	for _, cdo := range settings.CDODivisions {
		byProgram := make(map[string]*distributionTotals, len(settings.Programs))
		for _, program := range settings.Programs {
			byProgram[program] = &distributionTotals{}
		}
		cells[cdo] = byProgram
	}

	for _, ann := range list {
		byProgram, ok := cells[ann.CDODivision]
		if !ok {
			continue
		}
		cell, ok := byProgram[ann.Program]
		if !ok {
			continue
		}
		cell.total += ann.Quantity
		cell.issued += ann.IssuedCount
		cell.receipts += ann.ReceivedReceipts
	}

	rows := make([]models.DistributionRow, 0, len(settings.CDODivisions))
	for _, cdo := range settings.CDODivisions {
		row := models.DistributionRow{
			CDODivision: cdo,
			Cells:       make([]models.DistributionCell, 0, len(settings.Programs)),
		}
		for _, program := range settings.Programs {
			cell := cells[cdo][program]
			row.Cells = append(row.Cells, models.DistributionCell{
				Program:  program,
				Total:    cell.total,
				Issued:   cell.issued,
				Receipts: cell.receipts,
				Balance:  cell.total - cell.receipts,
			})
		}
		rows = append(rows, row)
	}

	programs := make([]string, len(settings.Programs))
	copy(programs, settings.Programs)

	return &models.DistributionSummary{Programs: programs, Rows: rows}
}

type nurseryTotals struct {
	total  int
	issued int
}

// BuildNurserySummary folds announcements into program x nursery cells for
// the two primary nurseries only; external-nursery records never match a
// cell. Balance subtracts issued, not receipts.
func BuildNurserySummary(list []models.Announcement, settings *models.SettingsData) *models.NurserySummary {
	cells := make(map[string]map[string]*nurseryTotals, len(settings.Programs))
	for _, program := range settings.Programs {
		byNursery := make(map[string]*nurseryTotals, len(primaryNurseries))
		for _, nursery := range primaryNurseries {
			byNursery[nursery] = &nurseryTotals{}
		}
		cells[program] = byNursery
	}

	for _, ann := range list {
		byNursery, ok := cells[ann.Program]
		if !ok {
			continue
		}
		cell, ok := byNursery[ann.Nursery]
		if !ok {
			continue
		}
		cell.total += ann.Quantity
		cell.issued += ann.IssuedCount
	}

	grand := make(map[string]*nurseryTotals, len(primaryNurseries))
	for _, nursery := range primaryNurseries {
		grand[nursery] = &nurseryTotals{}
	}

	rows := make([]models.NurseryRow, 0, len(settings.Programs))
	for _, program := range settings.Programs {
		row := models.NurseryRow{
			Program: program,
			Cells:   make([]models.NurseryCell, 0, len(primaryNurseries)),
		}
		for _, nursery := range primaryNurseries {
			cell := cells[program][nursery]
			row.Cells = append(row.Cells, models.NurseryCell{
				Nursery: nursery,
				Total:   cell.total,
				Issued:  cell.issued,
				Balance: cell.total - cell.issued,
			})
			grand[nursery].total += cell.total
			grand[nursery].issued += cell.issued
		}
		rows = append(rows, row)
	}

	grandTotals := make([]models.NurseryCell, 0, len(primaryNurseries))
	for _, nursery := range primaryNurseries {
		cell := grand[nursery]
		grandTotals = append(grandTotals, models.NurseryCell{
			Nursery: nursery,
			Total:   cell.total,
			Issued:  cell.issued,
			Balance: cell.total - cell.issued,
		})
	}

	nurseries := make([]string, len(primaryNurseries))
	copy(nurseries, primaryNurseries)

	return &models.NurserySummary{Nurseries: nurseries, Rows: rows, GrandTotals: grandTotals}
}
