package user

import (
	userRepo "swiftbill/database/repository/user"
	"swiftbill/models"
)

// UserService defines account management for SwiftBill users.
type UserService interface {
	// Registration & authentication
	RegisterUser(req RegistrationRequest) (*models.User, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)

	// Account management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error)
	UpdatePassword(userID, currentPassword, newPassword string) error
	DeleteUser(userID string) error
	RevokeAuthToken(userID string) error

	// Plan & quota
	CanCreateInvoice(userID string) (bool, error)
	IncrementInvoiceCount(userID string) error
	SetPlan(userID string, plan models.Plan) error
	SetUpgradeIntent(userID, intentID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegistrationRequest carries the fields a new account needs.
type RegistrationRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
}

// ProfileUpdateRequest carries the mutable profile fields.
type ProfileUpdateRequest struct {
	Name            string `json:"name"`
	Company         string `json:"company"`
	Phone           string `json:"phone"`
	BusinessName    string `json:"businessName"`
	BusinessGST     string `json:"businessGST"`
	BusinessAddress string `json:"businessAddress"`
	DefaultTaxRate  *int   `json:"defaultTaxRate"`
}

// AuthResponse contains the user's ID, bearer token and profile details.
type AuthResponse struct {
	ID      string       `json:"id"`
	Token   string       `json:"token"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Company string       `json:"company,omitempty"`
	Phone   string       `json:"phone,omitempty"`
	Plan    models.Plan  `json:"plan"`
	User    *models.User `json:"user,omitempty"`
}
