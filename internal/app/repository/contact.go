package repository

import "github.com/joshzacharytan/about-me/internal/app/ds"

func (r *Repository) CreateContactEntry(name, email, message string) (ds.ContactFormEntry, error) {
	entry := ds.ContactFormEntry{
		Name:    name,
		Email:   email,
		Message: message,
	}

	if err := r.db.Create(&entry).Error; err != nil {
		return ds.ContactFormEntry{}, err
	}
	return entry, nil
}
