package user

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"swiftbill/config"
	"swiftbill/models"
	"swiftbill/utils"
)

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// UpdateProfile applies the mutable profile fields and returns the
// updated record.
func (s *DefaultUserService) UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error) {
	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Company != "" {
		update["company"] = req.Company
	}
	if req.Phone != "" {
		update["phone"] = req.Phone
	}
	if req.BusinessName != "" {
		update["businessName"] = req.BusinessName
	}
	if req.BusinessGST != "" {
		update["businessGst"] = req.BusinessGST
	}
	if req.BusinessAddress != "" {
		update["businessAddress"] = req.BusinessAddress
	}
	if req.DefaultTaxRate != nil {
		allowed := false
		for _, r := range models.AllowedTaxRates {
			if *req.DefaultTaxRate == r {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("default tax rate must be one of %v", models.AllowedTaxRates)
		}
		update["defaultTaxRate"] = *req.DefaultTaxRate
	}

	if len(update) > 0 {
		if err := s.Repo.UpdateSet(userID, update); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByID(userID)
}

// UpdatePassword verifies the current password, re-hashes the new one
// and revokes the outstanding token so other sessions drop.
func (s *DefaultUserService) UpdatePassword(userID, currentPassword, newPassword string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("UpdatePassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("password change failed, please try again")
	}

	if err := s.Repo.UpdateSet(userID, bson.M{"passwordHash": string(hashed)}); err != nil {
		return err
	}
	return s.RevokeAuthToken(userID)
}

// DeleteUser removes the account and revokes its token.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.RevokeAuthToken(userID); err != nil {
		utils.GetLogger().Warn("DeleteUser: failed to revoke token", zap.Error(err))
	}
	return s.Repo.Delete(userID)
}

// CanCreateInvoice enforces the free-plan invoice quota. Pro accounts
// are unlimited.
func (s *DefaultUserService) CanCreateInvoice(userID string) (bool, error) {
	usr, err := s.Repo.GetByIDWithProjection(userID, bson.M{"plan": 1, "invoiceCount": 1})
	if err != nil {
		return false, err
	}
	if usr.Plan == models.PlanPro {
		return true, nil
	}
	return usr.InvoiceCount < config.AppConfig.FreePlanInvoiceLimit, nil
}

// IncrementInvoiceCount bumps the user's lifetime invoice counter.
func (s *DefaultUserService) IncrementInvoiceCount(userID string) error {
	usr, err := s.Repo.GetByIDWithProjection(userID, bson.M{"invoiceCount": 1})
	if err != nil {
		return err
	}
	return s.Repo.UpdateSet(userID, bson.M{"invoiceCount": usr.InvoiceCount + 1})
}

// SetPlan switches the user's subscription tier.
func (s *DefaultUserService) SetPlan(userID string, plan models.Plan) error {
	if plan != models.PlanFree && plan != models.PlanPro {
		return fmt.Errorf("unknown plan %q", plan)
	}
	return s.Repo.UpdateSet(userID, bson.M{"plan": plan, "upgradeIntentId": ""})
}

// SetUpgradeIntent records the Stripe PaymentIntent backing a pending
// pro upgrade.
func (s *DefaultUserService) SetUpgradeIntent(userID, intentID string) error {
	return s.Repo.UpdateSet(userID, bson.M{"upgradeIntentId": intentID})
}
