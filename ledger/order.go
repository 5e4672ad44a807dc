package ledger

import (
	"earnbox/config"
	"earnbox/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

// CalculateReferralBonus returns the fixed amount credited to a referrer when
// a user they referred places their first order.
func CalculateReferralBonus() float64 {
	return config.AppConfig.ReferralBonus
}

// CreateOrder purchases a product for the user. Debit, order insert,
// first-order flip and referral bonus all commit in one atomic unit; a
// failure part-way leaves none of them applied.
func (s *Store) CreateOrder(userID, productID uint) (*models.Order, error) {
	var order models.Order

	err := s.WithAtomicUnit(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Where("id = ? AND is_deleted = false", productID).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if !product.IsActive {
			return ErrProductInactive
		}

		var user models.User
		if err := tx.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := ApplyBalanceDelta(tx, userID, -product.Price); err != nil {
			return err
		}

		now := time.Now()
		order = models.Order{
			UserID:          userID,
			ProductID:       product.ID,
			StartDate:       now,
			EndDate:         now.AddDate(0, 0, product.ValidityDays),
			Validity:        product.ValidityDays,
			InitialValidity: product.ValidityDays,
			PerDayEarning:   product.PerDayEarning,
			Status:          models.OrderStatusActive,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Guarded first-order flip: two concurrent first purchases race here
		// and only one triggers the referral bonus.
		result := tx.Model(&models.User{}).
			Where("id = ? AND has_placed_first_order = false", userID).
			Update("has_placed_first_order", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if user.ReferredBy == nil || *user.ReferredBy == "" {
			return nil
		}

		var referrer models.User
		err := tx.Where("referral_code = ? AND is_deleted = false", *user.ReferredBy).First(&referrer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown code: no bonus, no error. The code string was captured
			// at signup and is resolved only now.
			return nil
		}
		if err != nil {
			return err
		}
		return ApplyBalanceDelta(tx, referrer.ID, CalculateReferralBonus())
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
