package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"` // Don't expose password hash in JSON
	IsAdmin   bool           `gorm:"not null;default:false" json:"is_admin"`

	Reports      []Report      `json:"-" gorm:"foreignKey:UserID"`
	NewsArticles []NewsArticle `json:"-" gorm:"foreignKey:AuthorID"`
}
