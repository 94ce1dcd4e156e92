package domain

import "errors"

// Sentinel errors for the board domain. Use errors.Is() to check these.
var (
	// ErrCardNotFound indicates the requested card does not exist.
	ErrCardNotFound = errors.New("card not found")

	// ErrCardAlreadyExists indicates a card with the same (owner, category, title)
	// natural key already exists.
	ErrCardAlreadyExists = errors.New("card already exists")

	// ErrInvalidCardTitle indicates the card title violates domain constraints.
	ErrInvalidCardTitle = errors.New("invalid card title")

	// ErrInvalidCategory indicates the category is not a member of the closed set.
	ErrInvalidCategory = errors.New("invalid category")
)
