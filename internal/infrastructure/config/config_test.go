package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BUDGETS_TABLE", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "budgets", cfg.Tables.Budgets)
	assert.Equal(t, "service_orders", cfg.Tables.ServiceOrders)
	assert.False(t, cfg.Payments.Mock)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BUDGETS_TABLE", "oficina-budgets")
	t.Setenv("MERCADOPAGO_MOCK", "on")
	t.Setenv("STORAGE_PUBLIC_BASE_URL", "https://cdn.example.com/")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "oficina-budgets", cfg.Tables.Budgets)
	assert.True(t, cfg.Payments.Mock)
	assert.Equal(t, "https://cdn.example.com", cfg.Storage.PublicBaseURL)
}

func TestParseBoolEnv(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on ", "mock"} {
		assert.True(t, parseBoolEnv(v), v)
	}
	for _, v := range []string{"", "0", "false", "off", "nope"} {
		assert.False(t, parseBoolEnv(v), v)
	}
}
