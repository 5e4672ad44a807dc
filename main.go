package main

import (
	"earnbox/config"
	"earnbox/database"
	"earnbox/ledger"
	adminRoutes "earnbox/routers/adminRoutes"
	authRoutes "earnbox/routers/authRoutes"
	bankRoutes "earnbox/routers/bankRoutes"
	orderRoutes "earnbox/routers/orderRoutes"
	productRoutes "earnbox/routers/productRoutes"
	walletRoutes "earnbox/routers/walletRoutes"
	"earnbox/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// The payment rail exposes a single collection QR, so deposit admission
	// is one process-wide lease.
	ledger.InitGateway(time.Duration(config.AppConfig.GatewayLeaseTimeoutMin) * time.Minute)

	store := ledger.NewStore(database.Database.Db)
	utils.InitializeSettlementScheduler(store)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",                            // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization,X-Razorpay-Signature", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	walletRoutes.SetupWalletRoutes(app)
	orderRoutes.SetupOrderRoutes(app)
	productRoutes.SetupProductRoutes(app)
	bankRoutes.SetupBankRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
