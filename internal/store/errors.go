package store

import "errors"

var (
	ErrInvalidRate         = errors.New("rate must be positive")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidPrice        = errors.New("minimum price must be positive")
	ErrEmptyReason         = errors.New("reason must not be empty")
	ErrInvalidEmail        = errors.New("email must not be empty")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInsufficientBalance = errors.New("insufficient RBQ balance")
	ErrOrderNotFound       = errors.New("sell order not found")
	ErrOrderNotActive      = errors.New("sell order is not active")
	ErrRecordNotFound      = errors.New("withdrawal record not found")
)
