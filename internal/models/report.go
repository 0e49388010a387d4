package models

// DistributionCell is one (division, program) cell of the distribution
// summary. Balance is derived as Total - Receipts, never stored.
type DistributionCell struct {
	Program  string `json:"program"`
	Total    int    `json:"total"`
	Issued   int    `json:"issued"`
	Receipts int    `json:"receipts"`
	Balance  int    `json:"balance"`
}

// DistributionRow aggregates one CDO division across every program.
type DistributionRow struct {
	CDODivision string             `json:"cdoDivision"`
	Cells       []DistributionCell `json:"cells"`
}

// DistributionSummary is the division x program aggregate. Rows follow the
// taxonomy's division order, cells its program order.
type DistributionSummary struct {
	Programs []string          `json:"programs"`
	Rows     []DistributionRow `json:"rows"`
}

// NurseryCell is one (program, nursery) cell of the nursery summary.
// Balance here is Total - Issued, a different subtraction than the
// distribution report's.
type NurseryCell struct {
	Nursery string `json:"nursery"`
	Total   int    `json:"total"`
	Issued  int    `json:"issued"`
	Balance int    `json:"balance"`
}

// NurseryRow aggregates one program across the primary nurseries.
type NurseryRow struct {
	Program string        `json:"program"`
	Cells   []NurseryCell `json:"cells"`
}

// NurserySummary is the nursery x program aggregate over the two primary
// nurseries only; external-nursery records never contribute.
type NurserySummary struct {
	Nurseries   []string      `json:"nurseries"`
	Rows        []NurseryRow  `json:"rows"`
	GrandTotals []NurseryCell `json:"grandTotals"`
}
