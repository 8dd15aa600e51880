package ds

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;column:user_id"`
	Username     string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}
