package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamcatcher/generator"
)

func TestCreateProject_Scaffold(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")

	project, err := CreateProject(context.Background(), db, testGateway(), alice, "demo", "python", "")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, project.OwnerId)
	assert.Equal(t, "active", project.Status)

	files, err := ListProjectFiles(db, project)
	require.NoError(t, err)
	require.NotEmpty(t, files)

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Filename)
	}
	assert.Contains(t, names, "README.md")
	assert.Contains(t, names, "main.py")

	for _, f := range files {
		assert.Equal(t, "/demo/"+f.Filename, f.Filepath)
		assert.Equal(t, len(f.Content), f.Size)
	}
}

func TestCreateProject_FileTypes(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")

	project, err := CreateProject(context.Background(), db, testGateway(), alice, "demo", "python", "flask")
	require.NoError(t, err)

	files, err := ListProjectFiles(db, project)
	require.NoError(t, err)

	types := map[string]string{}
	for _, f := range files {
		types[f.Filename] = f.FileType
	}
	assert.Equal(t, "md", types["README.md"])
	assert.Equal(t, "py", types["main.py"])
	assert.Equal(t, "txt", types["requirements.txt"])
}

func TestCreateProject_GeneratorFailureLeavesNothing(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")

	gateway := generator.NewGateway(failingGenerator{}, time.Second)
	_, err := CreateProject(context.Background(), db, gateway, alice, "demo", "python", "")
	assert.ErrorIs(t, err, generator.ErrGeneratorUnavailable)

	var count int64
	require.NoError(t, db.Model(&Project{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&ProjectFile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListProjects_OwnerOnly(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")
	bob := registerTestUser(t, db, "bob", "b@x.com")

	project, err := CreateProject(context.Background(), db, testGateway(), alice, "demo", "python", "")
	require.NoError(t, err)

	_, err = GrantCollaboration(db, bob, project, RoleCollaborator, nil)
	require.NoError(t, err)

	owned, err := ListProjects(db, alice)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	// collaborated-on projects are not listed
	shared, err := ListProjects(db, bob)
	require.NoError(t, err)
	assert.Empty(t, shared)
}

func TestGetProjectByUUID(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")

	project, err := CreateProject(context.Background(), db, testGateway(), alice, "demo", "go", "")
	require.NoError(t, err)

	loaded, err := GetProjectByUUID(db, project.UUID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, loaded.ID)

	_, err = GetProjectByUUID(db, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProject_Cascades(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")
	bob := registerTestUser(t, db, "bob", "b@x.com")

	project, err := CreateProject(context.Background(), db, testGateway(), alice, "demo", "python", "")
	require.NoError(t, err)

	_, err = GrantCollaboration(db, bob, project, RoleViewer, nil)
	require.NoError(t, err)

	session, err := StartAISession(db, project, "first", "qwen2.5-coder:7b", nil)
	require.NoError(t, err)
	_, err = RecordInteraction(db, session, "make it", "done", InteractionCodeGeneration)
	require.NoError(t, err)

	require.NoError(t, DeleteProject(db, project.ID))

	_, err = GetProject(db, project.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&ProjectFile{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&Collaboration{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&AISession{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&AIInteraction{}).Where("session_id = ?", session.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteProject_NotFound(t *testing.T) {
	db := setupTestDB(t)

	err := DeleteProject(db, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}
