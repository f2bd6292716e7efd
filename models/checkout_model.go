package models

import (
	"time"

	"github.com/google/uuid"
)

// Checkout stores one verified gateway payment per row.
type Checkout struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName    string    `gorm:"size:255;not null" json:"fullname"`
	UserID      string    `gorm:"size:10;not null;index" json:"user_id"`
	PhoneNo     string    `gorm:"size:20;not null" json:"phoneno"`
	Address     string    `gorm:"type:text;not null" json:"address"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	PackageName string    `gorm:"size:255;not null" json:"package_name"`
	CourseName  string    `gorm:"size:255;not null" json:"course_name"`
	Amount      float64   `gorm:"not null" json:"amount"`

	RazorpayOrderID   string `gorm:"size:255;not null" json:"razorpay_order_id"`
	RazorpayPaymentID string `gorm:"size:255;not null" json:"razorpay_payment_id"`
	RazorpaySignature string `gorm:"size:255;not null" json:"razorpay_signature"`

	CreatedAt time.Time `json:"created_at"`
}
