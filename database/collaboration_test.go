package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func makeProject(t *testing.T, db *gorm.DB, owner *User) *Project {
	t.Helper()
	project, err := CreateProject(context.Background(), db, testGateway(), owner, "demo", "python", "")
	require.NoError(t, err)
	return project
}

func TestAccess_Owner(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")
	project := makeProject(t, db, alice)

	canView, err := CanView(db, alice, project)
	require.NoError(t, err)
	assert.True(t, canView)

	canEdit, err := CanEdit(db, alice, project)
	require.NoError(t, err)
	assert.True(t, canEdit)
}

func TestAccess_Stranger(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")
	bob := registerTestUser(t, db, "bob", "b@x.com")
	project := makeProject(t, db, alice)

	canView, err := CanView(db, bob, project)
	require.NoError(t, err)
	assert.False(t, canView)

	canEdit, err := CanEdit(db, bob, project)
	require.NoError(t, err)
	assert.False(t, canEdit)
}

func TestAccess_Collaborator(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")
	bob := registerTestUser(t, db, "bob", "b@x.com")
	project := makeProject(t, db, alice)

	_, err := GrantCollaboration(db, bob, project, RoleCollaborator, nil)
	require.NoError(t, err)

	canView, err := CanView(db, bob, project)
	require.NoError(t, err)
	assert.True(t, canView)

	canEdit, err := CanEdit(db, bob, project)
	require.NoError(t, err)
	assert.True(t, canEdit)
}

func TestAccess_ViewerIsReadOnly(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")
	bob := registerTestUser(t, db, "bob", "b@x.com")
	project := makeProject(t, db, alice)

	_, err := GrantCollaboration(db, bob, project, RoleViewer, nil)
	require.NoError(t, err)

	canView, err := CanView(db, bob, project)
	require.NoError(t, err)
	assert.True(t, canView)

	canEdit, err := CanEdit(db, bob, project)
	require.NoError(t, err)
	assert.False(t, canEdit)
}

func TestGrantCollaboration_OneRowPerUserAndProject(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")
	bob := registerTestUser(t, db, "bob", "b@x.com")
	project := makeProject(t, db, alice)

	first, err := GrantCollaboration(db, bob, project, RoleViewer, nil)
	require.NoError(t, err)

	// a second grant updates the role instead of inserting a duplicate
	second, err := GrantCollaboration(db, bob, project, RoleCollaborator, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, RoleCollaborator, second.Role)

	var count int64
	require.NoError(t, db.Model(&Collaboration{}).Where("user_id = ? AND project_id = ?", bob.ID, project.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
