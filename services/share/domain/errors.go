package domain

import "errors"

// Sentinel errors for the share domain. Use errors.Is() to check these.
// Card resolution failures surface the board domain's ErrCardNotFound.
var (
	// ErrSelfShare indicates an owner tried to share a card with themselves.
	ErrSelfShare = errors.New("cannot share a card with yourself")

	// ErrUnknownRecipient indicates the recipient username is not registered.
	ErrUnknownRecipient = errors.New("recipient does not exist")

	// ErrDuplicateShare indicates a share already exists for the
	// (recipient, card) pair, in either status.
	ErrDuplicateShare = errors.New("card already shared with this user")

	// ErrShareNotFound indicates no matching share row exists.
	ErrShareNotFound = errors.New("share not found")
)
