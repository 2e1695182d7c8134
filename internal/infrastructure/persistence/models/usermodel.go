package models

import "time"

// UserModel is the persistence model for the users table.
type UserModel struct {
	ID           uint      `gorm:"primaryKey;column:id"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}
