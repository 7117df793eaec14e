package model

import "time"

type User struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Username string `gorm:"column:username;type:varchar(50);not null;uniqueIndex" json:"username"`

	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (User) TableName() string {
	return "users"
}
