package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseDetails tracks one validity window per user plus an append-only
// purchase history.
type CourseDetails struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      string    `gorm:"size:10;not null;unique" json:"user_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	CourseName  string    `gorm:"size:255" json:"course_name"`
	PackageName string    `gorm:"size:255" json:"package_name"`

	ValidityStart *time.Time `json:"validity_start"`
	ValidityEnd   *time.Time `json:"validity_end"`

	PurchaseHistory []Purchase `gorm:"foreignKey:CourseDetailsID" json:"purchase_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Purchase struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseDetailsID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	CourseName      string    `gorm:"size:255;not null" json:"course_name"`
	PackageName     string    `gorm:"size:255;not null" json:"package_name"`
	Amount          float64   `gorm:"not null" json:"amount"`
	Date            time.Time `gorm:"not null" json:"date"`
	Status          string    `gorm:"size:20;not null;default:'completed'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
