package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "swiftbill/database/repository/user"
	"swiftbill/models"
	"swiftbill/utils"
)

// RegisterUser validates basic data, checks for duplicates and persists
// a new free-plan account. No token is issued on registration; the user
// must log in.
func (s *DefaultUserService) RegisterUser(req RegistrationRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, userRepo.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Email:          email,
		PasswordHash:   string(hashedPassword),
		Company:        req.Company,
		Phone:          req.Phone,
		DefaultTaxRate: 18,
		Plan:           models.PlanFree,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.Repo.Create(&userObj); err != nil {
		if err == userRepo.ErrDuplicateEmail {
			return nil, err
		}
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &userObj, nil
}
