package models

import (
	"time"
)

// AdminLog is an append-only audit record. Entries are created inside the same
// transaction as the administrative mutation they describe and are never
// updated or deleted.
type AdminLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	AdminID uint   `gorm:"not null;index" json:"admin_id"`
	Admin   User   `gorm:"foreignKey:AdminID" json:"-"`
	Action  string `gorm:"not null;type:text" json:"action"`
}
