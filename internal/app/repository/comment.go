package repository

import (
	"time"

	"github.com/joshzacharytan/about-me/internal/app/ds"
)

// GetComments returns all comments newest first, each with its author
// joined for display.
func (r *Repository) GetComments() ([]ds.Comment, error) {
	var comments []ds.Comment
	err := r.db.Preload("Author").Order("created_at DESC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment inserts a comment owned by the given user. Callers are
// expected to have authenticated the author already.
func (r *Repository) CreateComment(userID uint, text string) (ds.Comment, error) {
	comment := ds.Comment{
		Text:      text,
		CreatedAt: time.Now().UTC(),
		UserID:    userID,
	}

	if err := r.db.Create(&comment).Error; err != nil {
		return ds.Comment{}, err
	}
	return comment, nil
}

func (r *Repository) CountComments() (int64, error) {
	var count int64
	err := r.db.Model(&ds.Comment{}).Count(&count).Error
	return count, err
}
