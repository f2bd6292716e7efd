package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  string    `gorm:"size:10;not null;unique" json:"user_id"`
	Name    string    `gorm:"size:255;not null" json:"name"`
	Phone   string    `gorm:"size:20;not null;unique" json:"phone"`
	Email   string    `gorm:"size:255;not null;unique" json:"email"`
	Address string    `gorm:"type:text;not null" json:"address"`

	AadharNo         string `gorm:"size:20;not null;unique" json:"aadhar_no"`
	AadharPhotoFront string `gorm:"size:512" json:"aadhar_photo_front"`
	AadharPhotoBack  string `gorm:"size:512" json:"aadhar_photo_back"`
	PanNo            string `gorm:"size:20;not null;unique" json:"pan_no"`
	PanPhoto         string `gorm:"size:512" json:"pan_photo"`

	Password     string `gorm:"not null" json:"-"`
	ReferralLink string `gorm:"size:255;not null;unique" json:"referral_link"`

	// ParentID holds the public userId of the referrer, nil for root users.
	// Direct children are derived via parent_id in creation order.
	ParentID *string `gorm:"size:10;index" json:"parent_id"`

	SelfPoints      float64 `gorm:"default:0" json:"self_points"`
	TotalSelfPoints float64 `gorm:"default:0" json:"total_self_points"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`
	Role   string `gorm:"size:20;not null;default:'user'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
