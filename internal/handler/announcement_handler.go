package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cdb-lk/cpds-api/internal/dto"
	"github.com/cdb-lk/cpds-api/internal/models"
	appErrors "github.com/cdb-lk/cpds-api/pkg/errors"
	"github.com/cdb-lk/cpds-api/pkg/response"
)

type announcementService interface {
	List(ctx context.Context, role models.UserRole, query dto.ListAnnouncementsQuery) ([]models.Announcement, error)
	Create(ctx context.Context, req dto.CreateAnnouncementRequest, forceOther bool) (*models.Announcement, error)
	Update(ctx context.Context, ann models.Announcement) (*models.Announcement, error)
	Delete(ctx context.Context, id string) error
	FindReceiptTarget(ctx context.Context, announcementNo string, isOtherNursery bool) (*models.Announcement, error)
	FindForManagement(ctx context.Context, announcementNo string) (*models.Announcement, error)
	SetReceivedReceipts(ctx context.Context, req dto.UpdateReceiptsRequest) error
	AddIssuedPlants(ctx context.Context, req dto.AddIssuedRequest) (*models.Announcement, error)
}

// AnnouncementHandler exposes the announcement ledger endpoints.
type AnnouncementHandler struct {
	service announcementService
}

// NewAnnouncementHandler builds a new handler.
func NewAnnouncementHandler(service announcementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// List godoc
// @Summary List announcements visible to the caller
// @Tags Announcements
// @Produce json
// @Param search query string false "Match announcement number or CDO division"
// @Param scope query string false "main or external"
// @Success 200 {object} response.Envelope
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	var query dto.ListAnnouncementsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return
	}
	list, err := h.service.List(c.Request.Context(), roleFromContext(c), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list)
}

// Create godoc
// @Summary Record a new announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body dto.CreateAnnouncementRequest true "Announcement draft"
// @Success 201 {object} response.Envelope
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	h.create(c, false)
}

// CreateExternal godoc
// @Summary Record an announcement for an external nursery
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body dto.CreateAnnouncementRequest true "Announcement draft"
// @Success 201 {object} response.Envelope
// @Router /announcements/external [post]
func (h *AnnouncementHandler) CreateExternal(c *gin.Context) {
	h.create(c, true)
}

func (h *AnnouncementHandler) create(c *gin.Context, forceOther bool) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
		return
	}
	ann, err := h.service.Create(c.Request.Context(), req, forceOther)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, ann)
}

// Update godoc
// @Summary Replace an announcement wholesale
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement id"
// @Param payload body models.Announcement true "Full record"
// @Success 200 {object} response.Envelope
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var ann models.Announcement
	if err := c.ShouldBindJSON(&ann); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
		return
	}
	if ann.ID == "" {
		ann.ID = c.Param("id")
	}
	if ann.ID != c.Param("id") {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id mismatch between path and body"))
		return
	}
	updated, err := h.service.Update(c.Request.Context(), ann)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an announcement
// @Tags Announcements
// @Produce json
// @Param id path string true "Announcement id"
// @Success 204
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// LookupReceiptTarget godoc
// @Summary Find the announcement a receipt update would touch
// @Tags Announcements
// @Produce json
// @Param announcementNo query string true "Announcement number"
// @Param isOtherNursery query bool false "External partition"
// @Success 200 {object} response.Envelope
// @Router /announcements/lookup [get]
func (h *AnnouncementHandler) LookupReceiptTarget(c *gin.Context) {
	announcementNo := c.Query("announcementNo")
	if announcementNo == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "announcementNo is required"))
		return
	}
	isOther := c.Query("isOtherNursery") == "true"
	ann, err := h.service.FindReceiptTarget(c.Request.Context(), announcementNo, isOther)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ann)
}

// LookupForManagement godoc
// @Summary Find an announcement by number alone
// @Tags Announcements
// @Produce json
// @Param announcementNo query string true "Announcement number"
// @Success 200 {object} response.Envelope
// @Router /announcements/manage [get]
func (h *AnnouncementHandler) LookupForManagement(c *gin.Context) {
	announcementNo := c.Query("announcementNo")
	if announcementNo == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "announcementNo is required"))
		return
	}
	ann, err := h.service.FindForManagement(c.Request.Context(), announcementNo)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ann)
}

// UpdateReceipts godoc
// @Summary Overwrite the reconciled receipt count
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body dto.UpdateReceiptsRequest true "Receipt count"
// @Success 204
// @Router /announcements/receipts [put]
func (h *AnnouncementHandler) UpdateReceipts(c *gin.Context) {
	var req dto.UpdateReceiptsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid receipts payload"))
		return
	}
	if err := h.service.SetReceivedReceipts(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddIssued godoc
// @Summary Add issued plants to an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body dto.AddIssuedRequest true "Issued delta"
// @Success 200 {object} response.Envelope
// @Router /announcements/issued [post]
func (h *AnnouncementHandler) AddIssued(c *gin.Context) {
	var req dto.AddIssuedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid issued payload"))
		return
	}
	ann, err := h.service.AddIssuedPlants(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ann)
}
