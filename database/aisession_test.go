package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAISession(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")
	project := makeProject(t, db, alice)

	session, err := StartAISession(db, project, "first", "qwen2.5-coder:7b", []byte(`{"scope":"demo"}`))
	require.NoError(t, err)
	assert.Equal(t, project.ID, session.ProjectId)
	assert.Equal(t, "first", session.SessionName)

	loaded, err := GetAISessionByUUID(db, session.UUID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)

	_, err = GetAISessionByUUID(db, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionHistory_Ordered(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")
	project := makeProject(t, db, alice)

	session, err := StartAISession(db, project, "first", "qwen2.5-coder:7b", nil)
	require.NoError(t, err)

	inputs := []string{"one", "two", "three"}
	for _, input := range inputs {
		_, err := RecordInteraction(db, session, input, "resp-"+input, InteractionCodeGeneration)
		require.NoError(t, err)
	}

	history, err := SessionHistory(db, session)
	require.NoError(t, err)
	require.Len(t, history, 3)

	for i, interaction := range history {
		assert.Equal(t, inputs[i], interaction.UserInput)
		if i > 0 {
			assert.False(t, interaction.Timestamp.Before(history[i-1].Timestamp))
		}
	}
}

func TestRecordInteraction_AppendOnly(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")
	project := makeProject(t, db, alice)

	session, err := StartAISession(db, project, "first", "qwen2.5-coder:7b", nil)
	require.NoError(t, err)

	first, err := RecordInteraction(db, session, "make it", "done", InteractionCodeGeneration)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = RecordInteraction(db, session, "more", "sure", InteractionCompletion)
	require.NoError(t, err)

	// the earlier interaction is untouched by later appends
	var reloaded AIInteraction
	require.NoError(t, db.First(&reloaded, "id = ?", first.ID).Error)
	assert.Equal(t, "make it", reloaded.UserInput)
	assert.Equal(t, "done", reloaded.AIResponse)

	history, err := SessionHistory(db, session)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
