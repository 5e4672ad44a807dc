package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	// Razorpay webhook shared secret (HMAC-SHA256 over the raw body)
	RazorpayWebhookSecret string

	// Gateway admission lease lifetime in minutes. The collection QR supports
	// one outstanding payment reference at a time, so this bounds how long a
	// lost callback can hold the slot.
	GatewayLeaseTimeoutMin int

	ReferralBonus float64
	MinDeposit    float64
	MinWithdrawal float64

	// Daily settlement schedule
	SettlementHour int
	SettlementTZ   string

	EmailSender string
	Password    string // SMTP Password
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		RazorpayWebhookSecret:  getEnv("RAZORPAY_WEBHOOK_SECRET", "defaultSecret"),
		GatewayLeaseTimeoutMin: getEnvInt("GATEWAY_LEASE_TIMEOUT_MIN", 10),

		ReferralBonus: getEnvFloat("REFERRAL_BONUS", 100),
		MinDeposit:    getEnvFloat("MIN_DEPOSIT", 100),
		MinWithdrawal: getEnvFloat("MIN_WITHDRAWAL", 200),

		SettlementHour: getEnvInt("SETTLEMENT_HOUR", 9),
		SettlementTZ:   getEnv("SETTLEMENT_TZ", "Asia/Kolkata"),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.RazorpayWebhookSecret == "defaultSecret" {
		log.Println("Warning: Using default RAZORPAY_WEBHOOK_SECRET. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}
