package ds

type ContactFormEntry struct {
	ID      uint   `gorm:"primaryKey;column:entry_id"`
	Name    string `gorm:"size:255;not null"`
	Email   string `gorm:"size:255;not null"`
	Message string `gorm:"size:4096;not null"`
}

func (ContactFormEntry) TableName() string {
	return "contact_form_entries"
}
