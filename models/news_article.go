package models

import (
	"time"

	"gorm.io/gorm"
)

type NewsArticle struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title         string    `gorm:"not null" json:"title"`
	Content       string    `gorm:"not null;type:text" json:"content"`
	Source        *string   `json:"source"`
	ReadMoreLink  *string   `json:"read_more_link"`
	PublishedDate time.Time `gorm:"not null;index" json:"published_date"`

	AuthorID uint `gorm:"not null" json:"author_id"`
	Author   User `gorm:"foreignKey:AuthorID" json:"-"`
}
