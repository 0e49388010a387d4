package models

// PlantType distinguishes ground-planted and potted coconut plants.
type PlantType string

const (
	PlantTypeBim   PlantType = "BIM"
	PlantTypeBadun PlantType = "BADUN"
)

// Announcement is one planned distribution event for coconut plants. The JSON
// field names match the documents the legacy system persisted, so existing
// data loads unchanged.
//
// AnnouncementNo is not globally unique: the same number may exist once in
// the primary-nursery partition and once in the external partition, which is
// why lookups carry IsOtherNursery as a second key. ID is the only globally
// unique field.
type Announcement struct {
	ID               string    `json:"id"`
	Date             string    `json:"date"`
	AnnouncementNo   string    `json:"announcementNo"`
	ReceiptNo        string    `json:"receiptNo"`
	PlantType        PlantType `json:"plantType"`
	JournalPrice     string    `json:"journalPrice"`
	Quantity         int       `json:"quantity"`
	Program          string    `json:"program"`
	CDODivision      string    `json:"cdoDivision"`
	GNDivision       string    `json:"gnDivision"`
	Nursery          string    `json:"nursery"`
	ReceivedReceipts int       `json:"receivedReceipts"`
	IssuedCount      int       `json:"issuedCount"`
	IsOtherNursery   bool      `json:"isOtherNursery"`
}

// AnnouncementDraft carries the caller-supplied fields for a new record.
// The repository assigns ID and zeroes ReceivedReceipts; IssuedCount may be
// pre-seeded when stock was issued before the record was entered.
type AnnouncementDraft struct {
	Date           string    `json:"date"`
	AnnouncementNo string    `json:"announcementNo"`
	ReceiptNo      string    `json:"receiptNo"`
	PlantType      PlantType `json:"plantType"`
	JournalPrice   string    `json:"journalPrice"`
	Quantity       int       `json:"quantity"`
	Program        string    `json:"program"`
	CDODivision    string    `json:"cdoDivision"`
	GNDivision     string    `json:"gnDivision"`
	Nursery        string    `json:"nursery"`
	IssuedCount    int       `json:"issuedCount"`
	IsOtherNursery bool      `json:"isOtherNursery"`
}
