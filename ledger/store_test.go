package ledger

import (
	"earnbox/config"
	"earnbox/models"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		ReferralBonus:          100,
		GatewayLeaseTimeoutMin: 10,
		MinDeposit:             100,
		MinWithdrawal:          200,
		SaltRound:              10,
	}
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(uuid.NewString(), "-", ""))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the shared in-memory database alive and
	// serializes writers, which sqlite needs under concurrent tests.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.BankDetails{},
		&models.Product{},
		&models.Order{},
		&models.Transaction{},
	))

	return NewStore(db)
}

func seedUser(t *testing.T, s *Store, balance float64, referredBy *string) *models.User {
	t.Helper()

	tag := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	user := models.User{
		Name:         "Test User " + tag,
		Email:        tag + "@example.com",
		Mobile:       tag,
		Password:     "not-a-real-hash",
		Balance:      balance,
		ReferralCode: strings.ToUpper(tag[:8]),
		ReferredBy:   referredBy,
	}
	require.NoError(t, s.db.Create(&user).Error)
	return &user
}

func seedBankDetails(t *testing.T, s *Store, userID uint) {
	t.Helper()

	bank := models.BankDetails{
		UserID:     userID,
		BankName:   "State Bank of India",
		AccountNo:  "123456789012",
		HolderName: "Test User",
		IFSCCode:   "SBIN0001234",
	}
	require.NoError(t, s.db.Create(&bank).Error)
}

func seedProduct(t *testing.T, s *Store, price, perDay float64, validityDays int) *models.Product {
	t.Helper()

	product := models.Product{
		Name:          "Daily Earner",
		Price:         price,
		PerDayEarning: perDay,
		ValidityDays:  validityDays,
		IsActive:      true,
	}
	require.NoError(t, s.db.Create(&product).Error)
	return &product
}

func reloadUser(t *testing.T, s *Store, id uint) *models.User {
	t.Helper()

	var user models.User
	require.NoError(t, s.db.First(&user, id).Error)
	return &user
}

func TestApplyBalanceDeltaCreditAndDebit(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, 500, nil)

	require.NoError(t, s.WithAtomicUnit(func(tx *gorm.DB) error {
		return ApplyBalanceDelta(tx, user.ID, 250)
	}))
	assert.Equal(t, 750.0, reloadUser(t, s, user.ID).Balance)

	require.NoError(t, s.WithAtomicUnit(func(tx *gorm.DB) error {
		return ApplyBalanceDelta(tx, user.ID, -750)
	}))
	assert.Equal(t, 0.0, reloadUser(t, s, user.ID).Balance)
}

func TestApplyBalanceDeltaInsufficient(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, 100, nil)

	err := s.WithAtomicUnit(func(tx *gorm.DB) error {
		return ApplyBalanceDelta(tx, user.ID, -100.01)
	})
	require.ErrorIs(t, err, ErrInsufficientBalance)

	var detail *InsufficientBalanceError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, 100.01, detail.Required)
	assert.Equal(t, 100.0, detail.Available)

	// Nothing changed
	assert.Equal(t, 100.0, reloadUser(t, s, user.ID).Balance)
}

func TestApplyBalanceDeltaUnknownUser(t *testing.T) {
	s := newTestStore(t)

	err := s.WithAtomicUnit(func(tx *gorm.DB) error {
		return ApplyBalanceDelta(tx, 9999, 50)
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestConcurrentDeltasConserveBalance(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, 1000, nil)

	const workers = 40
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		delta := 10.0
		if i%2 == 1 {
			delta = -5.0
		}
		wg.Add(1)
		go func(d float64) {
			defer wg.Done()
			errs <- s.WithAtomicUnit(func(tx *gorm.DB) error {
				return ApplyBalanceDelta(tx, user.ID, d)
			})
		}(delta)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// 20 credits of 10 and 20 debits of 5: no lost updates.
	assert.Equal(t, 1000.0+20*10-20*5, reloadUser(t, s, user.ID).Balance)
}

func TestConcurrentDebitsNeverGoNegative(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, 100, nil)

	const workers = 10
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.WithAtomicUnit(func(tx *gorm.DB) error {
				return ApplyBalanceDelta(tx, user.ID, -30)
			})
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, ErrInsufficientBalance)
		}
	}

	final := reloadUser(t, s, user.ID).Balance
	assert.Equal(t, 100.0-30*float64(succeeded), final)
	assert.GreaterOrEqual(t, final, 0.0)
}

func TestAtomicUnitRollsBackAllEffects(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, 500, nil)

	boom := fmt.Errorf("boom")
	err := s.WithAtomicUnit(func(tx *gorm.DB) error {
		if err := ApplyBalanceDelta(tx, user.ID, -200); err != nil {
			return err
		}
		if err := tx.Create(&models.Transaction{
			UserID:        user.ID,
			TransactionID: GenerateTransactionID(models.TransactionTypeWithdrawal),
			Type:          models.TransactionTypeWithdrawal,
			Amount:        200,
			Status:        models.TransactionStatusPending,
		}).Error; err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, 500.0, reloadUser(t, s, user.ID).Balance)

	var count int64
	s.db.Model(&models.Transaction{}).Count(&count)
	assert.Zero(t, count)
}
