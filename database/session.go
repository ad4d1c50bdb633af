package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Session backs the cookie-based sign-in surface. Token issuance lives in the
// api package; this table only stores and resolves them.
type Session struct {
	gorm.Model
	UserId uint      `json:"-" gorm:"index"`
	User   User      `json:"-" gorm:"foreignKey:UserId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Token  string    `gorm:"column:token;uniqueIndex;type:varchar(64)"`
	Expiry time.Time `gorm:"column:expiry;index"`
}

func CreateSession(DB *gorm.DB, user *User, token string, expiry time.Time) (*Session, error) {
	session := Session{
		UserId: user.ID,
		Token:  token,
		Expiry: expiry,
	}

	if q := DB.Create(&session); q.Error != nil {
		return nil, q.Error
	}

	return &session, nil
}

// UserForToken resolves a session token to its user, rejecting expired rows.
func UserForToken(DB *gorm.DB, token string) (*User, error) {
	var session Session
	q := DB.First(&session, "token = ? AND expiry > ?", token, time.Now())

	if q.Error != nil {
		if errors.Is(q.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, q.Error
	}

	return GetUserById(DB, session.UserId)
}

func DeleteSession(DB *gorm.DB, token string) error {
	return DB.Where("token = ?", token).Delete(&Session{}).Error
}

// PurgeExpiredSessions removes sessions past their expiry, returning how many
// rows went away. Run periodically by the scheduler.
func PurgeExpiredSessions(DB *gorm.DB) (int64, error) {
	q := DB.Where("expiry <= ?", time.Now()).Delete(&Session{})
	return q.RowsAffected, q.Error
}
