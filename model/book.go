package model

import "time"

type Book struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	// Filename is the sanitized blob name; the raw client name never
	// reaches the database or the filesystem.
	Filename string `gorm:"column:filename;size:255;not null" json:"filename"`

	OwnerID uint64 `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (Book) TableName() string {
	return "books"
}
