package models

import (
	"time"

	"github.com/google/uuid"
)

// BankDetails is the KYC record. Payout entries can only be marked paid while
// Status is "verified".
type BankDetails struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID             string    `gorm:"size:10;not null;unique" json:"user_id"`
	Name               string    `gorm:"size:255;not null" json:"name"`
	NameAsPerDocument  string    `gorm:"size:255;not null" json:"name_as_per_document"`
	BankName           string    `gorm:"size:255;not null" json:"bank_name"`
	BranchName         string    `gorm:"size:255;not null" json:"branch_name"`
	AccountNo          string    `gorm:"size:30;not null" json:"account_no"`
	IFSCCode           string    `gorm:"size:15;not null" json:"ifsc_code"`
	PassbookPhoto      string    `gorm:"size:512;not null" json:"passbook_photo"`
	Status             string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
