package ledger

import (
	"earnbox/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTransactionIDPrefixes(t *testing.T) {
	dep := GenerateTransactionID(models.TransactionTypeDeposit)
	wdl := GenerateTransactionID(models.TransactionTypeWithdrawal)

	assert.True(t, strings.HasPrefix(dep, "DEP"))
	assert.True(t, strings.HasPrefix(wdl, "WDL"))
	assert.NotEqual(t, GenerateTransactionID(models.TransactionTypeDeposit), dep)
}

func TestRequestDepositCreatesPendingWithoutBalanceChange(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, 0, nil)

	txn, err := s.RequestDeposit(user.ID, 500, "UPI", "lease-1")
	require.NoError(t, err)

	assert.Equal(t, models.TransactionStatusPending, txn.Status)
	assert.Equal(t, models.TransactionTypeDeposit, txn.Type)
	assert.Equal(t, "lease-1", txn.GatewayRef)
	assert.Equal(t, 0.0, reloadUser(t, s, user.ID).Balance)
}

func TestRequestWithdrawalDebitsAtRequestTime(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, 1000, nil)
	seedBankDetails(t, s, user.ID)

	txn, err := s.RequestWithdrawal(user.ID, 400)
	require.NoError(t, err)

	assert.Equal(t, models.TransactionStatusPending, txn.Status)
	assert.Equal(t, 600.0, reloadUser(t, s, user.ID).Balance)

	// Reserved funds cannot be over-requested by a second withdrawal.
	_, err = s.RequestWithdrawal(user.ID, 700)
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 600.0, reloadUser(t, s, user.ID).Balance)
}

func TestRequestWithdrawalNeedsBankDetails(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, 1000, nil)

	_, err := s.RequestWithdrawal(user.ID, 400)
	require.ErrorIs(t, err, ErrBankDetailsMissing)

	// The debit rolled back with the unit.
	assert.Equal(t, 1000.0, reloadUser(t, s, user.ID).Balance)
}

// Pins the withdrawal lifecycle to exactly one debit: request debits,
// approval is status-only, rejection restores.
func TestWithdrawalLifecycleSingleDebit(t *testing.T) {
	t.Run("approve leaves the request-time debit in place", func(t *testing.T) {
		s := newTestStore(t)
		user := seedUser(t, s, 1000, nil)
		seedBankDetails(t, s, user.ID)

		txn, err := s.RequestWithdrawal(user.ID, 400)
		require.NoError(t, err)
		require.Equal(t, 600.0, reloadUser(t, s, user.ID).Balance)

		approved, err := s.ApproveTransaction(txn.TransactionID, 1, "paid via NEFT")
		require.NoError(t, err)

		assert.Equal(t, models.TransactionStatusApproved, approved.Status)
		assert.Equal(t, 600.0, reloadUser(t, s, user.ID).Balance)
	})

	t.Run("reject restores the reserved amount", func(t *testing.T) {
		s := newTestStore(t)
		user := seedUser(t, s, 1000, nil)
		seedBankDetails(t, s, user.ID)

		txn, err := s.RequestWithdrawal(user.ID, 400)
		require.NoError(t, err)

		rejected, err := s.RejectTransaction(txn.TransactionID, 1, "name mismatch on account")
		require.NoError(t, err)

		assert.Equal(t, models.TransactionStatusRejected, rejected.Status)
		assert.Equal(t, 1000.0, reloadUser(t, s, user.ID).Balance)
	})
}

func TestApproveDepositCreditsBalance(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, 0, nil)

	txn, err := s.RequestDeposit(user.ID, 500, "UPI", "lease-1")
	require.NoError(t, err)

	approved, err := s.ApproveTransaction(txn.TransactionID, 1, "UTR verified")
	require.NoError(t, err)

	assert.Equal(t, models.TransactionStatusSuccess, approved.Status)
	assert.Equal(t, 500.0, reloadUser(t, s, user.ID).Balance)
}

func TestResolvedTransactionCannotBeReprocessed(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, 0, nil)

	txn, err := s.RequestDeposit(user.ID, 500, "UPI", "lease-1")
	require.NoError(t, err)

	_, err = s.ApproveTransaction(txn.TransactionID, 1, "ok")
	require.NoError(t, err)

	// A second approval must not double-credit.
	_, err = s.ApproveTransaction(txn.TransactionID, 2, "again")
	require.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.Equal(t, 500.0, reloadUser(t, s, user.ID).Balance)

	// Nor can it be rejected afterwards.
	_, err = s.RejectTransaction(txn.TransactionID, 2, "never mind")
	require.ErrorIs(t, err, ErrAlreadyProcessed)

	var stored models.Transaction
	require.NoError(t, s.db.Where("transaction_id = ?", txn.TransactionID).First(&stored).Error)
	assert.Equal(t, models.TransactionStatusSuccess, stored.Status)
}

func TestRejectedWithdrawalCannotBeApprovedLater(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, 1000, nil)
	seedBankDetails(t, s, user.ID)

	txn, err := s.RequestWithdrawal(user.ID, 400)
	require.NoError(t, err)

	_, err = s.RejectTransaction(txn.TransactionID, 1, "")
	require.NoError(t, err)
	require.Equal(t, 1000.0, reloadUser(t, s, user.ID).Balance)

	// A late approval must not re-debit or flip status.
	_, err = s.ApproveTransaction(txn.TransactionID, 2, "")
	require.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.Equal(t, 1000.0, reloadUser(t, s, user.ID).Balance)
}

func TestProcessUnknownTransaction(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ApproveTransaction("DEP000NOPE", 1, "")
	require.ErrorIs(t, err, ErrTransactionNotFound)

	_, err = s.RejectTransaction("DEP000NOPE", 1, "")
	require.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestSubmitUTR(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, 0, nil)

	txn, err := s.RequestDeposit(user.ID, 500, "UPI", "lease-1")
	require.NoError(t, err)

	require.NoError(t, s.SubmitUTR(user.ID, txn.TransactionID, "UTR123456789012"))

	var stored models.Transaction
	require.NoError(t, s.db.Where("transaction_id = ?", txn.TransactionID).First(&stored).Error)
	require.NotNil(t, stored.UTR)
	assert.Equal(t, "UTR123456789012", *stored.UTR)

	// Another user cannot attach proof to someone else's transaction.
	other := seedUser(t, s, 0, nil)
	require.ErrorIs(t, s.SubmitUTR(other.ID, txn.TransactionID, "UTR999999999999"), ErrTransactionNotFound)

	// Once resolved, proof submission is refused.
	_, err = s.ApproveTransaction(txn.TransactionID, 1, "ok")
	require.NoError(t, err)
	require.ErrorIs(t, s.SubmitUTR(user.ID, txn.TransactionID, "UTR000000000000"), ErrAlreadyProcessed)
}
