package user

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"swiftbill/utils"
)

// AuthenticateUser verifies credentials and issues a 24-hour bearer
// token. Only the token's SHA-256 hash is stored: on the user record
// for revocation, and in the auth cache for fast middleware checks.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSet(userRec.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, utils.TokenTTL).Err(); err != nil {
		// Cache failure only slows the first authenticated request down.
		utils.GetLogger().Warn("AuthenticateUser: failed to cache token hash", zap.Error(err))
	}

	return &AuthResponse{
		ID:      userRec.ID,
		Token:   token,
		Name:    userRec.Name,
		Email:   userRec.Email,
		Company: userRec.Company,
		Phone:   userRec.Phone,
		Plan:    userRec.Plan,
	}, nil
}

// RevokeAuthToken invalidates the user's current bearer token.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateSet(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("RevokeAuthToken: failed to clear auth cache", zap.Error(err))
	}
	return nil
}
