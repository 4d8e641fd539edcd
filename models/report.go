package models

import (
	"encoding/json"
	"time"
)

// Report status transitions are admin-only: Pending -> Verified | Rejected.
const (
	ReportStatusPending  = "Pending"
	ReportStatusVerified = "Verified"
	ReportStatusRejected = "Rejected"
)

type Report struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title          string    `gorm:"not null" json:"title"`
	Description    string    `gorm:"not null;type:text" json:"description"`
	Location       *string   `json:"location"`
	IsAnonymous    bool      `gorm:"not null;default:false" json:"is_anonymous"`
	PhotoURL       *string   `json:"photo_url"`
	Status         string    `gorm:"not null;default:'Pending'" json:"status"`
	DateOfIncident time.Time `gorm:"not null;index" json:"date_of_incident"`

	UserID uint `gorm:"not null" json:"-"`
	User   User `gorm:"foreignKey:UserID" json:"-"`
}

// MarshalJSON hides the author reference on anonymous reports. The user_id
// column is always populated; anonymity only affects what readers see.
func (r Report) MarshalJSON() ([]byte, error) {
	type reportAlias Report
	out := struct {
		reportAlias
		UserID *uint `json:"user_id"`
	}{reportAlias: reportAlias(r)}
	if !r.IsAnonymous {
		out.UserID = &r.UserID
	}
	return json.Marshal(out)
}
