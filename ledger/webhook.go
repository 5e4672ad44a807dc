package ledger

import (
	"crypto/hmac"
	"crypto/sha256"
	"earnbox/models"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"
)

// webhookEvent mirrors the gateway's notification shape. Amount arrives in
// minor units (paise).
type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID       string `json:"id"`
				Amount   int64  `json:"amount"`
				Currency string `json:"currency"`
				Status   string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// VerifyWebhookSignature recomputes HMAC-SHA256 over the exact raw request
// bytes and compares hex digests in constant time. The body must be the
// byte-identical payload the gateway signed, never a re-serialized parse.
func VerifyWebhookSignature(rawBody []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// HandleWebhook reconciles a gateway notification against the outstanding
// deposit lease. Only a bad signature is an error; every other outcome —
// unknown event, stale lease, amount mismatch, duplicate delivery — is a safe
// no-op so the gateway's retries always get an acknowledgement.
func (s *Store) HandleWebhook(gateway *AdmissionController, rawBody []byte, signature, secret string) error {
	if !VerifyWebhookSignature(rawBody, signature, secret) {
		return ErrInvalidSignature
	}

	var event webhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		log.Printf("[WEBHOOK] Unparseable event body: %v", err)
		return nil
	}
	if event.Event != "payment.captured" {
		return nil
	}

	leaseID, _, held := gateway.Current()
	if !held {
		// Late callback after lease expiry. The user keeps their pending
		// transaction and can submit a UTR for manual resolution.
		log.Printf("[WEBHOOK] payment.captured with no outstanding lease, ignoring (payment %s)", event.Payload.Payment.Entity.ID)
		return nil
	}

	// Minor units to rupees before matching against the ledger amount.
	amount := float64(event.Payload.Payment.Entity.Amount) / 100

	reconciled := false
	err := s.WithAtomicUnit(func(tx *gorm.DB) error {
		var txn models.Transaction
		err := tx.Where("gateway_ref = ? AND type = ? AND status = ? AND amount = ?",
			leaseID, models.TransactionTypeDeposit, models.TransactionStatusPending, amount).
			First(&txn).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		// Guarded flip: a duplicate delivery races here and only one credits.
		result := tx.Model(&models.Transaction{}).
			Where("id = ? AND status = ?", txn.ID, models.TransactionStatusPending).
			Update("status", models.TransactionStatusSuccess)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if err := ApplyBalanceDelta(tx, txn.UserID, txn.Amount); err != nil {
			return err
		}
		reconciled = true
		return nil
	})
	if err != nil {
		log.Printf("[WEBHOOK] Reconciliation failed for lease %s: %v", leaseID, err)
		return nil
	}

	if reconciled {
		gateway.Release(leaseID)
	}
	return nil
}
