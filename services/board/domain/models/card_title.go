package models

import "fmt"

// CardTitle is a value object representing a valid card title.
// Titles are part of the card's natural key (owner, category, title), so
// structural constraints are enforced at construction: 1 <= len <= 255.
type CardTitle string

const (
	minCardTitleLength = 1
	maxCardTitleLength = 255
)

// NewCardTitle constructs a valid CardTitle or returns an error if constraints are violated.
func NewCardTitle(s string) (CardTitle, error) {
	if len(s) < minCardTitleLength {
		return "", fmt.Errorf("card title must be at least %d character", minCardTitleLength)
	}
	if len(s) > maxCardTitleLength {
		return "", fmt.Errorf("card title must not exceed %d characters", maxCardTitleLength)
	}
	return CardTitle(s), nil
}

// String returns the underlying string value.
func (t CardTitle) String() string {
	return string(t)
}
