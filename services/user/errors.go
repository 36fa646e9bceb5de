package user

import "errors"

// ErrInvalidCredentials covers both unknown email and wrong password so
// a caller cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUserNotFound is returned when the requested account does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrWeakPassword is returned when a password fails the complexity check.
var ErrWeakPassword = errors.New("password must be at least 8 characters and contain a letter and a digit")
