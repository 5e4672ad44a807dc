package models

import (
	"time"

	"gorm.io/gorm"
)

// BankDetails model. A complete record is required before a withdrawal
// request is accepted.
type BankDetails struct {
	gorm.Model
	UserID      uint       `gorm:"not null;uniqueIndex"`
	BankName    string     `gorm:"default:''"`
	AccountNo   string     `gorm:"default:''"`
	HolderName  string     `gorm:"default:''"`
	IFSCCode    string     `gorm:"default:''"`
	BranchName  string     `gorm:"default:''"`
	AccountType string     `gorm:"type:text;default:'savings'"`
	IsVerified  bool       `gorm:"default:false" json:"isVerified"`
	VerifiedAt  *time.Time `json:"verifiedAt"`
	IsDeleted   bool       `gorm:"default:false"`
}

// Complete reports whether every field needed to pay out a withdrawal is set.
func (b *BankDetails) Complete() bool {
	return b.BankName != "" && b.AccountNo != "" && b.HolderName != "" && b.IFSCCode != ""
}
