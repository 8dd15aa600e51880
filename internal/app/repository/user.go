package repository

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/joshzacharytan/about-me/internal/app/ds"
)

var ErrDuplicateUsername = errors.New("username already registered")

// dummyHash is compared against when the username does not exist, so a
// failed login costs the same whether the user or the password was
// wrong. The comparison result is discarded.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (r *Repository) GetUserByUsername(username string) (ds.User, error) {
	var user ds.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return ds.User{}, err
	}
	return user, nil
}

func (r *Repository) GetUserByID(id uint) (ds.User, error) {
	var user ds.User
	err := r.db.Where("user_id = ?", id).First(&user).Error
	if err != nil {
		return ds.User{}, err
	}
	return user, nil
}

// CreateUser hashes the password and inserts the user. The plaintext is
// never stored. Returns ErrDuplicateUsername when the username is taken,
// including when two registrations race on the unique index.
func (r *Repository) CreateUser(username, password string) (ds.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ds.User{}, err
	}

	user := ds.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := r.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ds.User{}, ErrDuplicateUsername
		}
		return ds.User{}, err
	}
	return user, nil
}

// CheckCredentials reports whether the username/password pair is valid.
// An unknown username and a wrong password are indistinguishable to the
// caller: both return false after a bcrypt comparison.
func (r *Repository) CheckCredentials(username, password string) bool {
	user, err := r.GetUserByUsername(username)
	if err != nil {
		bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
