package models

import (
	"time"

	"github.com/google/uuid"
)

// Payout is the per-user settlement ledger. TotalPoints accumulates across
// payout runs; ReferredPoints and DirectReferredPoints hold the last computed
// snapshot and are reset to zero on every settlement.
type Payout struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID               string    `gorm:"size:10;not null;unique" json:"user_id"`
	Name                 string    `gorm:"size:255;not null" json:"name"`
	TotalPoints          float64   `gorm:"default:0" json:"total_points"`
	ReferredPoints       float64   `gorm:"default:0" json:"referred_points"`
	DirectReferredPoints float64   `gorm:"default:0" json:"direct_referred_points"`

	Entries []PayoutEntry `gorm:"foreignKey:PayoutID" json:"payouts"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PayoutEntry struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PayoutID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Amount       float64   `gorm:"not null" json:"amount"`
	PayoutAmount float64   `gorm:"not null" json:"payout_amount"`
	Status       string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Date         time.Time `gorm:"not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
