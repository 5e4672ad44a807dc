package orderController

import (
	"earnbox/config"
	"earnbox/database"
	"earnbox/ledger"
	"earnbox/models"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		ReferralBonus: 100,
	}
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(uuid.NewString(), "-", ""))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
	))

	database.Database.Db = db
	return db
}

func seedUser(t *testing.T, db *gorm.DB, balance float64) *models.User {
	t.Helper()

	tag := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	user := models.User{
		Name:         "Test User " + tag,
		Email:        tag + "@example.com",
		Mobile:       tag,
		Password:     "not-a-real-hash",
		Balance:      balance,
		ReferralCode: strings.ToUpper(tag[:8]),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedProduct(t *testing.T, db *gorm.DB, price, perDay float64, validityDays int) *models.Product {
	t.Helper()

	product := models.Product{
		Name:          "Daily Earner",
		Price:         price,
		PerDayEarning: perDay,
		ValidityDays:  validityDays,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func newOrdersApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Get("/order/my-orders", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return MyOrders(c)
	})
	return app
}

type orderListBody struct {
	Status bool `json:"status"`
	Data   struct {
		Orders []struct {
			Status      string  `json:"status"`
			Validity    int     `json:"validity"`
			TotalEarned float64 `json:"totalEarned"`
			DaysElapsed int     `json:"daysElapsed"`
		} `json:"orders"`
	} `json:"data"`
}

func fetchOrders(t *testing.T, app *fiber.App) orderListBody {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/order/my-orders", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body orderListBody
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestMyOrdersDerivedEarningsMidway(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 500)
	product := seedProduct(t, db, 500, 50, 2)

	s := ledger.NewStore(db)
	_, err := s.CreateOrder(user.ID, product.ID)
	require.NoError(t, err)

	day1 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	settled, failed := s.SettleActiveOrders(day1)
	require.Equal(t, 1, settled)
	require.Zero(t, failed)

	body := fetchOrders(t, newOrdersApp(user.ID))
	require.Len(t, body.Data.Orders, 1)

	got := body.Data.Orders[0]
	assert.Equal(t, string(models.OrderStatusActive), got.Status)
	assert.Equal(t, 1, got.DaysElapsed)
	assert.Equal(t, 50.0, got.TotalEarned)
}

// A completed order reports the full purchased duration: the settlement job
// rewrites EndDate at completion, so earnings derive from the stored initial
// validity instead.
func TestMyOrdersDerivedEarningsAfterCompletion(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, 500)
	product := seedProduct(t, db, 500, 50, 2)

	s := ledger.NewStore(db)
	_, err := s.CreateOrder(user.ID, product.ID)
	require.NoError(t, err)

	day1 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s.SettleActiveOrders(day1)
	s.SettleActiveOrders(day1.AddDate(0, 0, 1))

	var balance models.User
	require.NoError(t, db.First(&balance, user.ID).Error)
	require.Equal(t, 100.0, balance.Balance)

	body := fetchOrders(t, newOrdersApp(user.ID))
	require.Len(t, body.Data.Orders, 1)

	got := body.Data.Orders[0]
	assert.Equal(t, string(models.OrderStatusCompleted), got.Status)
	assert.Equal(t, 0, got.Validity)
	assert.Equal(t, 2, got.DaysElapsed)
	assert.Equal(t, 100.0, got.TotalEarned)
}
