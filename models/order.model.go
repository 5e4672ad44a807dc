package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus defines the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "ACTIVE"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// Order is a purchased earning plan. PerDayEarning and Validity are copied
// from the product at purchase time; the settlement job is the only writer
// after creation.
type Order struct {
	gorm.Model
	UserID    uint        `gorm:"not null;index" json:"userId"`
	ProductID uint        `gorm:"not null;index" json:"productId"`
	StartDate time.Time   `gorm:"not null" json:"startDate"`
	EndDate   time.Time   `gorm:"not null" json:"endDate"`

	// Validity is the remaining whole days, decremented once per settlement
	// cycle. Status flips to COMPLETED exactly when it reaches 0.
	// InitialValidity never changes after creation; EndDate is rewritten at
	// completion, so elapsed days must be derived from this pair.
	Validity        int     `gorm:"not null" json:"validity"`
	InitialValidity int     `gorm:"not null" json:"initialValidity"`
	PerDayEarning   float64 `gorm:"not null" json:"perDayEarning"`

	Status OrderStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index" json:"status"`

	// LastSettledOn records the YYYY-MM-DD date of the last settlement credit
	// so a re-run of the job in the same cycle is a no-op.
	LastSettledOn *string `gorm:"type:varchar(10)" json:"lastSettledOn"`

	IsDeleted bool `gorm:"default:false" json:"isDeleted"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}
