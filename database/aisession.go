package database

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	InteractionCodeGeneration = "code_generation"
	InteractionCompletion     = "completion"
	InteractionRefactoring    = "refactoring"
)

type AISession struct {
	Model
	SessionName string          `json:"session_name"`
	ModelUsed   string          `json:"model_used"`
	Context     json.RawMessage `json:"context,omitempty"`
	ProjectId   uint            `json:"-" gorm:"index"`
	Project     Project         `json:"-" gorm:"foreignKey:ProjectId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
}

// AIInteraction is append-only: rows are created, never updated.
type AIInteraction struct {
	Model
	UserInput       string    `json:"user_input"`
	AIResponse      string    `json:"ai_response"`
	InteractionType string    `json:"interaction_type"`
	Timestamp       time.Time `json:"timestamp" gorm:"index"`
	SessionId       uint      `json:"-" gorm:"index"`
	Session         AISession `json:"-" gorm:"foreignKey:SessionId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
}

func StartAISession(DB *gorm.DB, project *Project, name string, model string, context json.RawMessage) (*AISession, error) {
	session := AISession{
		SessionName: name,
		ModelUsed:   model,
		Context:     context,
		ProjectId:   project.ID,
	}

	if q := DB.Create(&session); q.Error != nil {
		return nil, q.Error
	}

	return &session, nil
}

func GetAISessionByUUID(DB *gorm.DB, uuid string) (*AISession, error) {
	var session AISession
	q := DB.First(&session, "uuid = ?", uuid)

	if q.Error != nil {
		if errors.Is(q.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, q.Error
	}

	return &session, nil
}

func RecordInteraction(DB *gorm.DB, session *AISession, userInput string, aiResponse string, interactionType string) (*AIInteraction, error) {
	interaction := AIInteraction{
		UserInput:       userInput,
		AIResponse:      aiResponse,
		InteractionType: interactionType,
		Timestamp:       time.Now(),
		SessionId:       session.ID,
	}

	if q := DB.Create(&interaction); q.Error != nil {
		return nil, q.Error
	}

	return &interaction, nil
}

// SessionHistory returns a session's interactions oldest first.
func SessionHistory(DB *gorm.DB, session *AISession) ([]AIInteraction, error) {
	var interactions []AIInteraction
	if err := DB.Where("session_id = ?", session.ID).Order("timestamp ASC, id ASC").Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}
