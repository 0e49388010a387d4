package service

import (
	"github.com/cdb-lk/cpds-api/internal/models"
)

// NurseryForRole returns the nursery a role is bound to. The binding is
// fixed at account provisioning; only the two operator roles are scoped.
func NurseryForRole(role models.UserRole) (string, bool) {
	switch role {
	case models.RoleHadpanagala:
		return models.NurseryHadpanagala, true
	case models.RoleWalipitiya:
		return models.NurseryWalipitiya, true
	default:
		return "", false
	}
}

// VisibleAnnouncements filters the collection down to what a role may see:
// the administrator sees everything, an operator only announcements whose
// nursery exactly equals the bound name. Relative order is preserved and
// the external flag plays no part in visibility.
func VisibleAnnouncements(role models.UserRole, list []models.Announcement) []models.Announcement {
	nursery, scoped := NurseryForRole(role)
	if !scoped {
		return list
	}
	visible := make([]models.Announcement, 0, len(list))
	for _, ann := range list {
		if ann.Nursery == nursery {
			visible = append(visible, ann)
		}
	}
	return visible
}
