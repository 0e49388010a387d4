package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cdb-lk/cpds-api/internal/models"
)

func TestNurseryForRole(t *testing.T) {
	nursery, scoped := NurseryForRole(models.RoleHadpanagala)
	assert.True(t, scoped)
	assert.Equal(t, models.NurseryHadpanagala, nursery)

	nursery, scoped = NurseryForRole(models.RoleWalipitiya)
	assert.True(t, scoped)
	assert.Equal(t, models.NurseryWalipitiya, nursery)

	_, scoped = NurseryForRole(models.RoleAdmin)
	assert.False(t, scoped)
}

func TestVisibleAnnouncements(t *testing.T) {
	list := []models.Announcement{
		{ID: "1", Nursery: models.NurseryHadpanagala},
		{ID: "2", Nursery: models.NurseryWalipitiya},
		{ID: "3", Nursery: "Nursery A", IsOtherNursery: true},
		{ID: "4", Nursery: models.NurseryHadpanagala, IsOtherNursery: true},
	}

	admin := VisibleAnnouncements(models.RoleAdmin, list)
	assert.Len(t, admin, 4)

	hadpanagala := VisibleAnnouncements(models.RoleHadpanagala, list)
	// The match is on the nursery name alone; the external flag does not
	// hide a record from its nursery's operator.
	assert.Len(t, hadpanagala, 2)
	assert.Equal(t, "1", hadpanagala[0].ID)
	assert.Equal(t, "4", hadpanagala[1].ID)

	walipitiya := VisibleAnnouncements(models.RoleWalipitiya, list)
	assert.Len(t, walipitiya, 1)
	assert.Equal(t, "2", walipitiya[0].ID)
}
