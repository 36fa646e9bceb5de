package subscription

import (
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"swiftbill/config"
	"swiftbill/models"
	"swiftbill/services/user"
	"swiftbill/utils"
)

var (
	ErrAlreadyPro       = errors.New("account is already on the pro plan")
	ErrNoUpgradePending = errors.New("no upgrade payment is pending for this account")
	ErrPaymentNotDone   = errors.New("payment has not completed")
)

// SubscriptionService handles the free-to-pro plan upgrade flow.
type SubscriptionService interface {
	// StartUpgrade creates a Stripe PaymentIntent for the pro plan fee
	// and returns its client secret for the frontend to confirm.
	StartUpgrade(userID string) (*UpgradeSession, error)
	// ConfirmUpgrade verifies the pending PaymentIntent succeeded and
	// switches the account to the pro plan.
	ConfirmUpgrade(userID string) (*models.User, error)
}

// UpgradeSession is returned to the client to drive the Stripe checkout.
type UpgradeSession struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// DefaultSubscriptionService is the production implementation.
type DefaultSubscriptionService struct {
	Users user.UserService
}

// proPlanAmountPaise converts the configured rupee price to the
// smallest currency unit Stripe expects.
func proPlanAmountPaise() int64 {
	return config.AppConfig.ProPlanAmountINR * 100
}

func (s *DefaultSubscriptionService) StartUpgrade(userID string) (*UpgradeSession, error) {
	logger := utils.GetLogger().Sugar()

	u, err := s.Users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if u.Plan == models.PlanPro {
		return nil, ErrAlreadyPro
	}

	amount := proPlanAmountPaise()
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyINR)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("userId", u.ID)
	params.AddMetadata("plan", string(models.PlanPro))

	intent, err := paymentintent.New(params)
	if err != nil {
		logger.Errorf("Failed to create payment intent for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to start upgrade payment: %w", err)
	}

	if err := s.Users.SetUpgradeIntent(userID, intent.ID); err != nil {
		return nil, err
	}

	logger.Infof("Created upgrade payment intent %s for user %s", intent.ID, userID)
	return &UpgradeSession{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
		Currency:     string(stripe.CurrencyINR),
	}, nil
}

func (s *DefaultSubscriptionService) ConfirmUpgrade(userID string) (*models.User, error) {
	logger := utils.GetLogger().Sugar()

	u, err := s.Users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if u.Plan == models.PlanPro {
		return u, nil
	}
	if u.UpgradeIntentID == "" {
		return nil, ErrNoUpgradePending
	}

	intent, err := paymentintent.Get(u.UpgradeIntentID, nil)
	if err != nil {
		logger.Errorf("Failed to fetch payment intent %s: %v", u.UpgradeIntentID, err)
		return nil, fmt.Errorf("failed to verify upgrade payment: %w", err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, ErrPaymentNotDone
	}

	if err := s.Users.SetPlan(userID, models.PlanPro); err != nil {
		return nil, err
	}
	if err := s.Users.SetUpgradeIntent(userID, ""); err != nil {
		logger.Warnf("Failed to clear upgrade intent for user %s: %v", userID, err)
	}

	logger.Infof("User %s upgraded to pro plan", userID)
	return s.Users.GetUserByID(userID)
}
