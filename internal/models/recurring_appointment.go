package models

import (
	"time"

	"gorm.io/gorm"
)

// RecurringAppointment is a template describing a repeating pattern for a
// client. It never materializes concrete Appointment rows.
type RecurringAppointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	StartDate time.Time `gorm:"not null" json:"start_date"`
	StartTime string    `gorm:"size:20;not null" json:"start_time"`

	// weekly or monthly
	Interval        string `gorm:"size:20;not null" json:"interval"`
	DurationMinutes int    `gorm:"not null" json:"duration_minutes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
