package models

// JournalPrice is one entry of the administrator-maintained price list.
type JournalPrice struct {
	ID          string `json:"id"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// SettingsData holds the taxonomies that label and constrain announcements.
// List order is insertion order and drives report row/column order, so it is
// preserved through every mutation. Entries are plain strings; nothing
// referentially protects announcements that name a removed entry.
type SettingsData struct {
	CDODivisions   []string       `json:"cdoDivisions"`
	GNDivisions    []string       `json:"gnDivisions"`
	Programs       []string       `json:"programs"`
	OtherNurseries []string       `json:"otherNurseries"`
	JournalPrices  []JournalPrice `json:"journalPrices"`
}

// Named taxonomy lists addressable through the settings API.
const (
	ListCDODivisions   = "cdoDivisions"
	ListGNDivisions    = "gnDivisions"
	ListPrograms       = "programs"
	ListOtherNurseries = "otherNurseries"
)

// DefaultSettings returns the seed taxonomy used until an administrator
// saves their own. Values carried over from the legacy deployment.
func DefaultSettings() *SettingsData {
	return &SettingsData{
		CDODivisions:   []string{"Colombo North", "Colombo South"},
		GNDivisions:    []string{"Division 01", "Division 02"},
		Programs:       []string{"Standard Program", "Special Subsidy"},
		OtherNurseries: []string{"Nursery A", "Nursery B"},
		JournalPrices: []JournalPrice{
			{ID: "1", Price: "500.00", Description: "Standard Price"},
		},
	}
}
