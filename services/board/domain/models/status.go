package models

import "fmt"

// CardStatus is the completion state of a card.
type CardStatus string

const (
	StatusDone    CardStatus = "done"
	StatusNotDone CardStatus = "not_done"
)

// ParseCardStatus converts a raw string into a CardStatus.
func ParseCardStatus(s string) (CardStatus, error) {
	switch CardStatus(s) {
	case StatusDone, StatusNotDone:
		return CardStatus(s), nil
	}
	return "", fmt.Errorf("unknown card status %q", s)
}

// String returns the underlying string value.
func (s CardStatus) String() string {
	return string(s)
}
