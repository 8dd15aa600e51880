package ds

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey;column:comment_id"`
	Text      string    `gorm:"size:4096;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UserID    uint      `gorm:"column:user_id;not null"`
	Author    User      `gorm:"foreignKey:UserID;references:ID"`
}
