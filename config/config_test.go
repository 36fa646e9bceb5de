package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, 20, AppConfig.FreePlanInvoiceLimit)
	// Rupees, not paise: the Stripe boundary multiplies by 100.
	assert.Equal(t, int64(499), AppConfig.ProPlanAmountINR)
}

func TestIsProduction(t *testing.T) {
	orig := AppConfig.Env
	defer func() { AppConfig.Env = orig }()

	AppConfig.Env = "development"
	assert.False(t, IsProduction())

	AppConfig.Env = "production"
	assert.True(t, IsProduction())
}
