package userRepo

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"swiftbill/models"
)

// ErrNotFound is returned when no user matches the query.
var ErrNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when an insert collides with the unique
// email index.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its (lowercased) email address,
	// or nil when no such user exists.
	GetByEmail(email string) (*models.User, error)
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateSet applies a partial $set update to a user document.
	UpdateSet(id string, updateDoc bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
}
