package database

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

const (
	RoleOwner        = "owner"
	RoleCollaborator = "collaborator"
	RoleViewer       = "viewer"
)

// Collaboration grants a user a role on a project they do not own. At most one
// row exists per (user, project); granting again updates the role in place.
type Collaboration struct {
	Model
	Role        string          `json:"role"`
	Permissions json.RawMessage `json:"permissions,omitempty"`
	UserId      uint            `json:"-" gorm:"uniqueIndex:idx_user_project;index"`
	User        User            `json:"-" gorm:"foreignKey:UserId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	ProjectId   uint            `json:"-" gorm:"uniqueIndex:idx_user_project;index"`
	Project     Project         `json:"-" gorm:"foreignKey:ProjectId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
}

func GrantCollaboration(DB *gorm.DB, user *User, project *Project, role string, permissions json.RawMessage) (*Collaboration, error) {
	var existing Collaboration
	q := DB.First(&existing, "user_id = ? AND project_id = ?", user.ID, project.ID)

	if q.Error == nil {
		existing.Role = role
		if permissions != nil {
			existing.Permissions = permissions
		}
		if q := DB.Save(&existing); q.Error != nil {
			return nil, q.Error
		}
		return &existing, nil
	}
	if !errors.Is(q.Error, gorm.ErrRecordNotFound) {
		return nil, q.Error
	}

	collaboration := Collaboration{
		Role:        role,
		Permissions: permissions,
		UserId:      user.ID,
		ProjectId:   project.ID,
	}

	if q := DB.Create(&collaboration); q.Error != nil {
		return nil, q.Error
	}

	return &collaboration, nil
}

func collaborationFor(DB *gorm.DB, user *User, project *Project) (*Collaboration, error) {
	var collaboration Collaboration
	q := DB.First(&collaboration, "user_id = ? AND project_id = ?", user.ID, project.ID)

	if q.Error != nil {
		if errors.Is(q.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, q.Error
	}

	return &collaboration, nil
}

// CanView is true for the owner and for any collaboration role.
func CanView(DB *gorm.DB, user *User, project *Project) (bool, error) {
	if user.ID == project.OwnerId {
		return true, nil
	}

	collaboration, err := collaborationFor(DB, user, project)
	if err != nil {
		return false, err
	}
	return collaboration != nil, nil
}

// CanEdit is true for the owner and for owner/collaborator grants. Viewers are
// read-only.
func CanEdit(DB *gorm.DB, user *User, project *Project) (bool, error) {
	if user.ID == project.OwnerId {
		return true, nil
	}

	collaboration, err := collaborationFor(DB, user, project)
	if err != nil {
		return false, err
	}
	if collaboration == nil {
		return false, nil
	}
	return collaboration.Role == RoleOwner || collaboration.Role == RoleCollaborator, nil
}
