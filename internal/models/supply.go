package models

import (
	"time"

	"gorm.io/gorm"
)

type Supply struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string    `gorm:"size:100;not null" json:"name"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	ExpirationDate time.Time `json:"expiration_date"`
	Price          float64   `gorm:"not null" json:"price"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
