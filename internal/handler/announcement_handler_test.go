package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdb-lk/cpds-api/internal/dto"
	"github.com/cdb-lk/cpds-api/internal/middleware"
	"github.com/cdb-lk/cpds-api/internal/models"
	appErrors "github.com/cdb-lk/cpds-api/pkg/errors"
)

type announcementServiceMock struct {
	listResp   []models.Announcement
	created    *models.Announcement
	lookupResp *models.Announcement
	lookupErr  error
	lastForce  bool
	lastRole   models.UserRole
}

func (m *announcementServiceMock) List(_ context.Context, role models.UserRole, _ dto.ListAnnouncementsQuery) ([]models.Announcement, error) {
	m.lastRole = role
	return m.listResp, nil
}

func (m *announcementServiceMock) Create(_ context.Context, req dto.CreateAnnouncementRequest, forceOther bool) (*models.Announcement, error) {
	m.lastForce = forceOther
	if m.created != nil {
		return m.created, nil
	}
	ann := models.Announcement{ID: "new", AnnouncementNo: req.AnnouncementNo, IsOtherNursery: forceOther || req.IsOtherNursery}
	return &ann, nil
}

func (m *announcementServiceMock) Update(_ context.Context, ann models.Announcement) (*models.Announcement, error) {
	return &ann, nil
}

func (m *announcementServiceMock) Delete(context.Context, string) error {
	return nil
}

func (m *announcementServiceMock) FindReceiptTarget(context.Context, string, bool) (*models.Announcement, error) {
	return m.lookupResp, m.lookupErr
}

func (m *announcementServiceMock) FindForManagement(context.Context, string) (*models.Announcement, error) {
	return m.lookupResp, m.lookupErr
}

func (m *announcementServiceMock) SetReceivedReceipts(context.Context, dto.UpdateReceiptsRequest) error {
	return nil
}

func (m *announcementServiceMock) AddIssuedPlants(context.Context, dto.AddIssuedRequest) (*models.Announcement, error) {
	return m.lookupResp, m.lookupErr
}

func testContext(t *testing.T, method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestAnnouncementHandlerListUsesCallerRole(t *testing.T) {
	mock := &announcementServiceMock{listResp: []models.Announcement{{ID: "1"}}}
	h := NewAnnouncementHandler(mock)

	c, w := testContext(t, http.MethodGet, "/announcements?scope=main", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{Role: models.RoleHadpanagala})

	h.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleHadpanagala, mock.lastRole)
}

func TestAnnouncementHandlerCreateExternalForcesFlag(t *testing.T) {
	mock := &announcementServiceMock{}
	h := NewAnnouncementHandler(mock)

	c, w := testContext(t, http.MethodPost, "/announcements/external", dto.CreateAnnouncementRequest{
		AnnouncementNo: "A-1",
		ReceiptNo:      "R-1",
		Quantity:       10,
	})

	h.CreateExternal(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mock.lastForce)
}

func TestAnnouncementHandlerCreateInvalidBody(t *testing.T) {
	h := NewAnnouncementHandler(&announcementServiceMock{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/announcements", bytes.NewReader([]byte(`not json`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnnouncementHandlerUpdateIDMismatch(t *testing.T) {
	h := NewAnnouncementHandler(&announcementServiceMock{})

	c, w := testContext(t, http.MethodPut, "/announcements/other", models.Announcement{ID: "1"})
	c.Params = gin.Params{{Key: "id", Value: "other"}}

	h.Update(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnnouncementHandlerLookupRequiresNumber(t *testing.T) {
	h := NewAnnouncementHandler(&announcementServiceMock{})

	c, w := testContext(t, http.MethodGet, "/announcements/lookup", nil)
	h.LookupReceiptTarget(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = testContext(t, http.MethodGet, "/announcements/manage", nil)
	h.LookupForManagement(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnnouncementHandlerLookupNotFound(t *testing.T) {
	mock := &announcementServiceMock{lookupErr: appErrors.Clone(appErrors.ErrNotFound, "no announcement with that number")}
	h := NewAnnouncementHandler(mock)

	c, w := testContext(t, http.MethodGet, "/announcements/lookup?announcementNo=A-404", nil)
	h.LookupReceiptTarget(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnnouncementHandlerDelete(t *testing.T) {
	h := NewAnnouncementHandler(&announcementServiceMock{})

	c, w := testContext(t, http.MethodDelete, "/announcements/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	h.Delete(c)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
