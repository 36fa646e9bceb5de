package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swiftbill/config"
)

func TestProPlanAmountPaise(t *testing.T) {
	orig := config.AppConfig.ProPlanAmountINR
	defer func() { config.AppConfig.ProPlanAmountINR = orig }()

	// A ₹499 plan charges 49900 paise, converted exactly once.
	config.AppConfig.ProPlanAmountINR = 499
	assert.Equal(t, int64(49900), proPlanAmountPaise())

	config.AppConfig.ProPlanAmountINR = 1
	assert.Equal(t, int64(100), proPlanAmountPaise())
}
