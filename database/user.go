package database

import (
	"errors"
	"net/mail"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	Model
	Username     string `json:"username" gorm:"unique"`
	Email        string `json:"-" gorm:"unique"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	IsAdmin      bool   `json:"-" gorm:"default:false"`
}

// RegisterUser creates a new account with a bcrypt-hashed credential.
// Username and email are checked before insert so the caller gets a distinct
// error kind instead of a raw unique-constraint violation.
func RegisterUser(DB *gorm.DB, username string, email string, password []byte) (*User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, err
	}

	var existing User
	if q := DB.First(&existing, "username = ?", username); q.Error == nil {
		return nil, ErrDuplicateUsername
	}
	if q := DB.First(&existing, "email = ?", email); q.Error == nil {
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}

	if q := DB.Create(&user); q.Error != nil {
		return nil, q.Error
	}

	return &user, nil
}

// AuthenticateUser looks a user up by username and verifies the credential.
// Lookup failure and hash mismatch collapse into the same error so callers
// cannot probe which usernames exist.
func AuthenticateUser(DB *gorm.DB, username string, password []byte) (*User, error) {
	var user User
	q := DB.First(&user, "username = ?", username)

	if q.Error != nil {
		if errors.Is(q.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, q.Error
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GetUserById rehydrates an identity from a persisted session reference.
func GetUserById(DB *gorm.DB, id uint) (*User, error) {
	var user User
	q := DB.First(&user, "id = ?", id)

	if q.Error != nil {
		if errors.Is(q.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, q.Error
	}

	return &user, nil
}
