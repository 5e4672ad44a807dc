package ledger

import (
	"earnbox/models"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateTransactionID builds the public transaction identifier:
// type prefix + nanosecond timestamp + random suffix. The unique index on
// transactions.transaction_id backstops the unlikely collision.
func GenerateTransactionID(txnType models.TransactionType) string {
	prefix := "DEP"
	if txnType == models.TransactionTypeWithdrawal {
		prefix = "WDL"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s%d%s", prefix, time.Now().UnixNano(), strings.ToUpper(suffix))
}

// RequestDeposit records a pending deposit initiated under the given gateway
// lease. No balance change happens until the webhook reconciles it or an
// admin approves the manual proof.
func (s *Store) RequestDeposit(userID uint, amount float64, paymentMethod, leaseID string) (*models.Transaction, error) {
	var user models.User
	if err := s.db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	txn := models.Transaction{
		UserID:        userID,
		TransactionID: GenerateTransactionID(models.TransactionTypeDeposit),
		Type:          models.TransactionTypeDeposit,
		Amount:        amount,
		Status:        models.TransactionStatusPending,
		PaymentMethod: paymentMethod,
		GatewayRef:    leaseID,
	}
	if err := s.db.Create(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// RequestWithdrawal reserves the funds immediately: the debit happens at
// request time, not at approval, so a user cannot over-request across several
// pending withdrawals. Rejection is the only path that re-credits.
func (s *Store) RequestWithdrawal(userID uint, amount float64) (*models.Transaction, error) {
	var txn models.Transaction

	err := s.WithAtomicUnit(func(tx *gorm.DB) error {
		var bank models.BankDetails
		if err := tx.Where("user_id = ? AND is_deleted = false", userID).First(&bank).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBankDetailsMissing
			}
			return err
		}
		if !bank.Complete() {
			return ErrBankDetailsMissing
		}

		if err := ApplyBalanceDelta(tx, userID, -amount); err != nil {
			return err
		}

		txn = models.Transaction{
			UserID:        userID,
			TransactionID: GenerateTransactionID(models.TransactionTypeWithdrawal),
			Type:          models.TransactionTypeWithdrawal,
			Amount:        amount,
			Status:        models.TransactionStatusPending,
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ApproveTransaction resolves a pending transaction. A deposit approval
// credits the balance inside the same unit as the status write and lands on
// SUCCESS; a withdrawal approval is status-only (the debit already happened
// at request time) and lands on APPROVED.
func (s *Store) ApproveTransaction(transactionID string, adminID uint, notes string) (*models.Transaction, error) {
	var txn models.Transaction

	err := s.WithAtomicUnit(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", transactionID).First(&txn).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}

		target := models.TransactionStatusApproved
		if txn.Type == models.TransactionTypeDeposit {
			target = models.TransactionStatusSuccess
		}

		// Status-guarded write: two concurrent admin actions on the same id
		// race on this UPDATE and exactly one wins.
		result := tx.Model(&models.Transaction{}).
			Where("transaction_id = ? AND status = ?", transactionID, models.TransactionStatusPending).
			Updates(map[string]interface{}{
				"status":      target,
				"admin_id":    adminID,
				"admin_notes": notes,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyProcessed
		}

		if txn.Type == models.TransactionTypeDeposit {
			if err := ApplyBalanceDelta(tx, txn.UserID, txn.Amount); err != nil {
				return err
			}
		}

		txn.Status = target
		txn.AdminID = adminID
		txn.AdminNotes = &notes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// RejectTransaction resolves a pending transaction to REJECTED. A rejected
// withdrawal re-credits the reserved amount inside the same unit.
func (s *Store) RejectTransaction(transactionID string, adminID uint, notes string) (*models.Transaction, error) {
	var txn models.Transaction

	err := s.WithAtomicUnit(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", transactionID).First(&txn).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}

		result := tx.Model(&models.Transaction{}).
			Where("transaction_id = ? AND status = ?", transactionID, models.TransactionStatusPending).
			Updates(map[string]interface{}{
				"status":      models.TransactionStatusRejected,
				"admin_id":    adminID,
				"admin_notes": notes,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyProcessed
		}

		if txn.Type == models.TransactionTypeWithdrawal {
			if err := ApplyBalanceDelta(tx, txn.UserID, txn.Amount); err != nil {
				return err
			}
		}

		txn.Status = models.TransactionStatusRejected
		txn.AdminID = adminID
		txn.AdminNotes = &notes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// SubmitUTR attaches a bank settlement reference to the user's own pending
// deposit so an admin can resolve it manually after a lost gateway callback.
func (s *Store) SubmitUTR(userID uint, transactionID, utr string) error {
	result := s.db.Model(&models.Transaction{}).
		Where("transaction_id = ? AND user_id = ? AND type = ? AND status = ?",
			transactionID, userID, models.TransactionTypeDeposit, models.TransactionStatusPending).
		Update("utr", utr)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var txn models.Transaction
	err := s.db.Where("transaction_id = ? AND user_id = ?", transactionID, userID).First(&txn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTransactionNotFound
	}
	if err != nil {
		return err
	}
	return ErrAlreadyProcessed
}
