package models

import (
	"time"

	"gorm.io/gorm"
)

// AppointmentSupply records supply consumption for an appointment. The live
// (appointment, supply) pair is unique; rows are soft-deleted so usage stays
// auditable. QuantityUsed never writes back to Supply.Quantity.
type AppointmentSupply struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"not null;index:idx_appointment_supply" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	SupplyID uint   `gorm:"not null;index:idx_appointment_supply" json:"supply_id"`
	Supply   Supply `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	QuantityUsed int `gorm:"not null" json:"quantity_used"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
