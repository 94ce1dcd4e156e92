// Package services contains stateless domain services for the board bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/taskdeck/services/board/domain/models"
)

// ValidateTitle enforces business rules for CardTitle beyond the structural
// constraints enforced by the CardTitle constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace (the title is a lookup key)
//   - No control characters (Unicode category Cc)
//   - Must not be only whitespace characters
func ValidateTitle(title models.CardTitle) error {
	s := title.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("card title must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("card title must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("card title must not contain control characters")
		}
	}

	return nil
}

// ValidateColor checks that a color is an RGB hex triplet like "FFAA00".
// An empty color is allowed; the model default applies.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if len(color) != 6 {
		return fmt.Errorf("color must be a 6-digit hex triplet")
	}
	for _, r := range color {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("color must contain only hex digits")
		}
	}
	return nil
}

// ValidateCardForCreation performs cross-field validation on a fully-constructed
// Card aggregate before it is persisted. It assumes the Card was built via
// models.NewCard (so structural constraints are already satisfied) and
// adds business-level checks that span multiple fields.
func ValidateCardForCreation(card *models.Card) error {
	if card == nil {
		return fmt.Errorf("card cannot be nil")
	}

	if err := ValidateTitle(card.Title); err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}

	if err := ValidateColor(card.Color); err != nil {
		return fmt.Errorf("invalid color: %w", err)
	}

	if card.Owner == "" {
		return fmt.Errorf("owner must be set")
	}

	if !card.Category.Valid() {
		return fmt.Errorf("category %q is not valid", card.Category)
	}

	if card.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	return nil
}
