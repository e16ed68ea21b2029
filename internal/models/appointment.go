package models

import (
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// AppointmentDate is stored as an instant but always truncated to the
	// start of a clinic-local calendar day before persistence.
	AppointmentDate time.Time `gorm:"not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:20;not null" json:"appointment_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
