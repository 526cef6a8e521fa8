package services

import "errors"

// Error taxonomy shared by services and mapped to HTTP statuses at the
// controller boundary with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyCompleted  = errors.New("problem already completed")
	ErrAlreadyPurchased  = errors.New("theme already purchased")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrUpstream          = errors.New("upstream request failed")
)
