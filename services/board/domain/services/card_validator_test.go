package services

import (
	"testing"

	"github.com/ghuser/taskdeck/services/board/domain/models"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"plain", "Quarterly report", false},
		{"unicode", "réunion café", false},
		{"leading space", " report", true},
		{"trailing space", "report ", true},
		{"only whitespace", "   ", true},
		{"tab control char", "re\tport", true},
		{"newline", "re\nport", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(models.CardTitle(tt.title))
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %q", tt.title)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.title, err)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{"empty uses default", "", false},
		{"uppercase hex", "FFAA00", false},
		{"lowercase hex", "ffaa00", false},
		{"too short", "FFF", true},
		{"too long", "FFAA001", true},
		{"non-hex", "GGAA00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.color)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %q", tt.color)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.color, err)
			}
		})
	}
}

func TestValidateCardForCreation(t *testing.T) {
	valid := func() *models.Card {
		title, _ := models.NewCardTitle("task")
		card, _ := models.NewCard("alice", models.CategoryWork, title)
		return card
	}

	t.Run("valid card", func(t *testing.T) {
		if err := ValidateCardForCreation(valid()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nil card", func(t *testing.T) {
		if err := ValidateCardForCreation(nil); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("missing owner", func(t *testing.T) {
		card := valid()
		card.Owner = ""
		if err := ValidateCardForCreation(card); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("bad category", func(t *testing.T) {
		card := valid()
		card.Category = "hobbies"
		if err := ValidateCardForCreation(card); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("bad color", func(t *testing.T) {
		card := valid()
		card.Color = "red"
		if err := ValidateCardForCreation(card); err == nil {
			t.Fatal("expected error")
		}
	})
}
