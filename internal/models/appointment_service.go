package models

import "time"

// AppointmentService is the many-to-many join between appointments and
// services. The composite primary key guarantees one row per pair. Links are
// hard-deleted when removed.
type AppointmentService struct {
	AppointmentID uint        `gorm:"primaryKey" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"primaryKey" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
