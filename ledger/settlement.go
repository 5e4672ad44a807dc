package ledger

import (
	"earnbox/models"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

// SettleOrder credits one day's earning for a single order in its own atomic
// unit: credit per-day earning, decrement validity, stamp last_settled_on,
// and flip to COMPLETED when the countdown reaches zero. Re-running in the
// same cycle is a no-op thanks to the date stamp.
func (s *Store) SettleOrder(orderID uint, now time.Time) error {
	today := now.Format("2006-01-02")

	return s.WithAtomicUnit(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Where("id = ? AND is_deleted = false", orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.Status != models.OrderStatusActive {
			return nil
		}

		// Guarded countdown: the status, validity and date conditions make a
		// duplicate run (or a racing job instance) a zero-row no-op.
		result := tx.Model(&models.Order{}).
			Where("id = ? AND status = ? AND validity > 0 AND (last_settled_on IS NULL OR last_settled_on <> ?)",
				orderID, models.OrderStatusActive, today).
			Updates(map[string]interface{}{
				"validity":        gorm.Expr("validity - 1"),
				"last_settled_on": today,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if err := ApplyBalanceDelta(tx, order.UserID, order.PerDayEarning); err != nil {
			return err
		}

		// Retire the order once validity hits zero.
		return tx.Model(&models.Order{}).
			Where("id = ? AND validity = 0 AND status = ?", orderID, models.OrderStatusActive).
			Updates(map[string]interface{}{
				"status":   models.OrderStatusCompleted,
				"end_date": now,
			}).Error
	})
}

// SettleActiveOrders runs the daily payout over every active order. Each
// order settles in its own unit so one failure never blocks the rest; a
// failed order stays active with a stale stamp and is retried next run.
func (s *Store) SettleActiveOrders(now time.Time) (settled, failed int) {
	var orderIDs []uint
	if err := s.db.Model(&models.Order{}).
		Where("status = ? AND is_deleted = false", models.OrderStatusActive).
		Pluck("id", &orderIDs).Error; err != nil {
		log.Printf("[SETTLEMENT] Error fetching active orders: %v", err)
		return 0, 0
	}

	log.Printf("[SETTLEMENT] Found %d active orders", len(orderIDs))

	for _, id := range orderIDs {
		if err := s.SettleOrder(id, now); err != nil {
			log.Printf("[SETTLEMENT] Order %d failed, will retry next run: %v", id, err)
			failed++
			continue
		}
		settled++
	}

	log.Printf("[SETTLEMENT] Run complete: %d settled, %d failed", settled, failed)
	return settled, failed
}
