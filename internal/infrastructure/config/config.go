package config

import (
	"os"
	"strings"
)

// Tables holds the DynamoDB table names. Every name can be overridden
// through its own env var.
type Tables struct {
	Customers        string
	Technicians      string
	Parts            string
	KanbanColumns    string
	ServiceOrders    string
	StageTransitions string
	Attachments      string
	Budgets          string
	BudgetItems      string
	BudgetPayments   string
	Counters         string
}

type DynamoDB struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// Storage configures the S3-compatible bucket that receives uploads.
type Storage struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
	UsePathStyle    bool
}

// Payments configures the Mercado Pago gateway. The test payer fields fill
// sandbox payloads that do not name a payer.
type Payments struct {
	AccessToken     string
	Mock            bool
	TestPayerEmail  string
	TestPayerUserID string
}

// Config centralises all environment and runtime configuration.
type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	LogFormat   string
	SeedColumns bool

	DynamoDB DynamoDB
	Tables   Tables
	Storage  Storage
	Payments Payments
}

// Load builds the Config struct from the environment.
func Load() *Config {
	return &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		GinMode:     os.Getenv("GIN_MODE"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "json"),
		SeedColumns: parseBoolEnv(getEnvOrDefault("SEED_KANBAN_COLUMNS", "true")),
		DynamoDB: DynamoDB{
			Region:          getEnvOrDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Tables: Tables{
			Customers:        getEnvOrDefault("CUSTOMERS_TABLE", "customers"),
			Technicians:      getEnvOrDefault("TECHNICIANS_TABLE", "technicians"),
			Parts:            getEnvOrDefault("PARTS_TABLE", "parts"),
			KanbanColumns:    getEnvOrDefault("KANBAN_COLUMNS_TABLE", "kanban_columns"),
			ServiceOrders:    getEnvOrDefault("SERVICE_ORDERS_TABLE", "service_orders"),
			StageTransitions: getEnvOrDefault("STAGE_TRANSITIONS_TABLE", "stage_transitions"),
			Attachments:      getEnvOrDefault("ATTACHMENTS_TABLE", "attachments"),
			Budgets:          getEnvOrDefault("BUDGETS_TABLE", "budgets"),
			BudgetItems:      getEnvOrDefault("BUDGET_ITEMS_TABLE", "budget_items"),
			BudgetPayments:   getEnvOrDefault("BUDGET_PAYMENTS_TABLE", "budget_payments"),
			Counters:         getEnvOrDefault("COUNTERS_TABLE", "counters"),
		},
		Storage: Storage{
			Endpoint:        os.Getenv("STORAGE_ENDPOINT"),
			Region:          getEnvOrDefault("STORAGE_REGION", getEnvOrDefault("AWS_REGION", "us-east-1")),
			Bucket:          getEnvOrDefault("STORAGE_BUCKET", "service-orders"),
			AccessKeyID:     os.Getenv("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("STORAGE_SECRET_ACCESS_KEY"),
			PublicBaseURL:   strings.TrimRight(os.Getenv("STORAGE_PUBLIC_BASE_URL"), "/"),
			UsePathStyle:    parseBoolEnv(getEnvOrDefault("STORAGE_USE_PATH_STYLE", "true")),
		},
		Payments: Payments{
			AccessToken:     strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:            parseBoolEnv(os.Getenv("PAYMENT_GATEWAY_MOCK")) || parseBoolEnv(os.Getenv("MERCADOPAGO_MOCK")),
			TestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
			TestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		},
	}
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func parseBoolEnv(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on", "mock":
		return true
	default:
		return false
	}
}
