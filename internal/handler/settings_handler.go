package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cdb-lk/cpds-api/internal/dto"
	"github.com/cdb-lk/cpds-api/internal/models"
	appErrors "github.com/cdb-lk/cpds-api/pkg/errors"
	"github.com/cdb-lk/cpds-api/pkg/response"
)

type settingsService interface {
	Get(ctx context.Context) (*models.SettingsData, error)
	Save(ctx context.Context, settings *models.SettingsData) (*models.SettingsData, error)
	AddListItem(ctx context.Context, list string, req dto.AddListItemRequest) (*models.SettingsData, error)
	RemoveListItem(ctx context.Context, list string, index int) (*models.SettingsData, error)
	AddJournalPrice(ctx context.Context, req dto.AddJournalPriceRequest) (*models.SettingsData, error)
	RemoveJournalPrice(ctx context.Context, id string) (*models.SettingsData, error)
}

// SettingsHandler exposes the taxonomy and price-list endpoints.
type SettingsHandler struct {
	service settingsService
}

// NewSettingsHandler builds a new handler.
func NewSettingsHandler(service settingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get godoc
// @Summary Fetch the full settings document
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

// Save godoc
// @Summary Replace the settings document wholesale
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body models.SettingsData true "Full settings document"
// @Success 200 {object} response.Envelope
// @Router /settings [put]
func (h *SettingsHandler) Save(c *gin.Context) {
	var settings models.SettingsData
	if err := c.ShouldBindJSON(&settings); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid settings payload"))
		return
	}
	saved, err := h.service.Save(c.Request.Context(), &settings)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved)
}

// AddListItem godoc
// @Summary Append a value to a named taxonomy list
// @Tags Settings
// @Accept json
// @Produce json
// @Param list path string true "List name (cdoDivisions, gnDivisions, programs, otherNurseries)"
// @Param payload body dto.AddListItemRequest true "Value to append"
// @Success 200 {object} response.Envelope
// @Router /settings/lists/{list}/items [post]
func (h *SettingsHandler) AddListItem(c *gin.Context) {
	var req dto.AddListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid list item payload"))
		return
	}
	settings, err := h.service.AddListItem(c.Request.Context(), c.Param("list"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

// RemoveListItem godoc
// @Summary Remove the value at a position of a named taxonomy list
// @Tags Settings
// @Produce json
// @Param list path string true "List name"
// @Param index path int true "Zero-based position"
// @Success 200 {object} response.Envelope
// @Router /settings/lists/{list}/items/{index} [delete]
func (h *SettingsHandler) RemoveListItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "index must be an integer"))
		return
	}
	settings, err := h.service.RemoveListItem(c.Request.Context(), c.Param("list"), index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

// AddPrice godoc
// @Summary Append a journal price entry
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body dto.AddJournalPriceRequest true "Price entry"
// @Success 200 {object} response.Envelope
// @Router /settings/prices [post]
func (h *SettingsHandler) AddPrice(c *gin.Context) {
	var req dto.AddJournalPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid price payload"))
		return
	}
	settings, err := h.service.AddJournalPrice(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

// RemovePrice godoc
// @Summary Remove a journal price entry by id
// @Tags Settings
// @Produce json
// @Param id path string true "Price entry id"
// @Success 200 {object} response.Envelope
// @Router /settings/prices/{id} [delete]
func (h *SettingsHandler) RemovePrice(c *gin.Context) {
	settings, err := h.service.RemoveJournalPrice(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}
