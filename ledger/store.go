package ledger

import (
	"earnbox/models"
	"errors"

	"gorm.io/gorm"
)

// Store is the ledger entry point. Every balance, order and transaction
// mutation in the system goes through it so that multi-entity changes commit
// or roll back together.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for read-only queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// WithAtomicUnit runs fn inside a database transaction. An error from fn
// rolls back every effect; nil commits them all.
func (s *Store) WithAtomicUnit(fn func(tx *gorm.DB) error) error {
	return s.db.Transaction(fn)
}

// ApplyBalanceDelta adds delta to the user's balance as a single guarded
// UPDATE. Debits carry a balance >= -delta condition, so a committed balance
// can never go negative and concurrent deltas compose without lost updates.
func ApplyBalanceDelta(tx *gorm.DB, userID uint, delta float64) error {
	query := tx.Model(&models.User{}).Where("id = ? AND is_deleted = false", userID)
	if delta < 0 {
		query = query.Where("balance >= ?", -delta)
	}

	result := query.Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Zero rows means either no such user or the debit guard failed.
	var user models.User
	if err := tx.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return &InsufficientBalanceError{Required: -delta, Available: user.Balance}
}
