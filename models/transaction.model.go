package models

import (
	"gorm.io/gorm"
)

// TransactionType defines the type of wallet transaction
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// TransactionStatus defines the status of a transaction
type TransactionStatus string

const (
	// TransactionStatusPending is the only creation state. Transitions are
	// one-way; a resolved transaction never becomes pending again.
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusApproved TransactionStatus = "APPROVED"
	TransactionStatusRejected TransactionStatus = "REJECTED"
	TransactionStatusSuccess  TransactionStatus = "SUCCESS"
)

// Transaction tracks every deposit and withdrawal. Rows are never deleted.
type Transaction struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`

	// TransactionID is the generated public identifier
	// (type prefix + timestamp + random suffix).
	TransactionID string `gorm:"type:varchar(64);uniqueIndex;not null" json:"transactionId"`

	Type   TransactionType   `gorm:"type:varchar(20);not null" json:"type"`
	Amount float64           `gorm:"not null" json:"amount"`
	Status TransactionStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`

	AdminNotes *string `gorm:"type:text" json:"adminNotes"`
	AdminID    uint    `gorm:"default:0" json:"adminId"`

	// Deposit-only fields. GatewayRef carries the admission lease id the
	// deposit was initiated under; the webhook reconciler matches on it.
	// UTR is the bank settlement reference a user submits as manual proof
	// when the gateway callback never arrived.
	PaymentMethod string  `gorm:"type:varchar(50)" json:"paymentMethod"`
	GatewayRef    string  `gorm:"type:varchar(64);index" json:"gatewayRef"`
	UTR           *string `gorm:"type:varchar(64)" json:"utr"`

	IsDeleted bool `gorm:"default:false" json:"isDeleted"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
