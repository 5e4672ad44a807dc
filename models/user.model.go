package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"default:''"`
	Email    string `gorm:"unique;not null"`
	Mobile   string `gorm:"unique;not null"`
	Role     string `gorm:"default:'USER'"` // USER, ADMIN
	Password string `gorm:"not null"`

	// Wallet balance in rupees. Never written directly; every change goes
	// through the ledger as an atomic increment tied to a transaction or order.
	Balance float64 `gorm:"not null;default:0"`

	// ReferralCode is this user's own shareable code. ReferredBy stores the
	// referrer's code string captured once at signup, not a foreign key.
	ReferralCode        string  `gorm:"type:varchar(8);uniqueIndex;not null"`
	ReferredBy          *string `gorm:"type:varchar(8)"`
	HasPlacedFirstOrder bool    `gorm:"default:false"`

	LastLogin time.Time `gorm:"default:NULL"`
	IsBlocked bool      `gorm:"default:false"`
	IsDeleted bool      `gorm:"default:false"`
}
