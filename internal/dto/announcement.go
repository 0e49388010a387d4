package dto

import "github.com/cdb-lk/cpds-api/internal/models"

// CreateAnnouncementRequest carries a new announcement. Only the presence
// of the tracking numbers and a non-zero quantity is checked at this
// boundary; the core stores whatever else it is given.
type CreateAnnouncementRequest struct {
	Date           string           `json:"date"`
	AnnouncementNo string           `json:"announcementNo" validate:"required"`
	ReceiptNo      string           `json:"receiptNo" validate:"required"`
	PlantType      models.PlantType `json:"plantType"`
	JournalPrice   string           `json:"journalPrice"`
	Quantity       int              `json:"quantity" validate:"required"`
	Program        string           `json:"program"`
	CDODivision    string           `json:"cdoDivision"`
	GNDivision     string           `json:"gnDivision"`
	Nursery        string           `json:"nursery"`
	IssuedCount    int              `json:"issuedCount"`
	IsOtherNursery bool             `json:"isOtherNursery"`
}

// Draft maps the request onto the repository's draft shape.
func (r CreateAnnouncementRequest) Draft() models.AnnouncementDraft {
	return models.AnnouncementDraft{
		Date:           r.Date,
		AnnouncementNo: r.AnnouncementNo,
		ReceiptNo:      r.ReceiptNo,
		PlantType:      r.PlantType,
		JournalPrice:   r.JournalPrice,
		Quantity:       r.Quantity,
		Program:        r.Program,
		CDODivision:    r.CDODivision,
		GNDivision:     r.GNDivision,
		Nursery:        r.Nursery,
		IssuedCount:    r.IssuedCount,
		IsOtherNursery: r.IsOtherNursery,
	}
}

// UpdateReceiptsRequest overwrites the reconciled receipt count of the
// record matched by number and scope. The count is absolute.
type UpdateReceiptsRequest struct {
	AnnouncementNo string `json:"announcementNo" validate:"required"`
	IsOtherNursery bool   `json:"isOtherNursery"`
	Count          int    `json:"count"`
}

// AddIssuedRequest adds a delta to the issued counter of the first record
// matching the number.
type AddIssuedRequest struct {
	AnnouncementNo  string `json:"announcementNo" validate:"required"`
	AdditionalCount int    `json:"additionalCount"`
}

// ListAnnouncementsQuery narrows the role-visible list. Scope selects the
// primary or external partition; search matches the announcement number or
// CDO division, case-insensitively.
type ListAnnouncementsQuery struct {
	Search string `form:"search"`
	Scope  string `form:"scope"`
}
