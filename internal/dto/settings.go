package dto

// AddListItemRequest appends one entry to a named taxonomy list.
type AddListItemRequest struct {
	Value string `json:"value" validate:"required"`
}

// AddJournalPriceRequest appends one price-list entry.
type AddJournalPriceRequest struct {
	Price       string `json:"price" validate:"required"`
	Description string `json:"description"`
}
