package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName  string `gorm:"size:100;not null" json:"first_name"`
	MiddleName string `gorm:"size:100;not null" json:"middle_name"`
	LastName   string `gorm:"size:100;not null" json:"last_name"`

	EmergencyNumber string    `gorm:"size:20;not null" json:"emergency_number"`
	BirthDate       time.Time `json:"birth_date"`

	// Bookkeeping column kept from the legacy schema; callers maintain it,
	// appointment writes never touch it.
	TotalAppointments int `gorm:"default:0" json:"total_appointments"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Client) FullName() string {
	parts := []string{c.FirstName, c.MiddleName, c.LastName}
	fields := parts[:0]
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	return strings.Join(fields, " ")
}
