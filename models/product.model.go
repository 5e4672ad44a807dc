package models

import (
	"gorm.io/gorm"
)

// Product is a catalog entry for an earning plan. Orders copy PerDayEarning
// and ValidityDays by value at purchase, so an admin edit never changes an
// in-flight order.
type Product struct {
	gorm.Model
	Name          string  `gorm:"not null" json:"name"`
	Description   string  `gorm:"type:text" json:"description"`
	Image         string  `gorm:"default:''" json:"image"`
	Price         float64 `gorm:"not null" json:"price"`
	PerDayEarning float64 `gorm:"not null" json:"perDayEarning"`
	ValidityDays  int     `gorm:"not null" json:"validityDays"`
	IsActive      bool    `gorm:"default:true" json:"isActive"`
	IsDeleted     bool    `gorm:"default:false" json:"isDeleted"`
}
