package models

import (
	"strings"
	"testing"
)

func TestNewCardTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Quarterly report", false},
		{"single character", "x", false},
		{"max length", strings.Repeat("a", 255), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 256), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, err := NewCardTitle(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if title.String() != tt.input {
				t.Fatalf("expected %q, got %q", tt.input, title.String())
			}
		})
	}
}

func TestNewCard_Defaults(t *testing.T) {
	title, err := NewCardTitle("task")
	if err != nil {
		t.Fatalf("new title: %v", err)
	}
	card, err := NewCard("alice", CategoryWork, title)
	if err != nil {
		t.Fatalf("new card: %v", err)
	}

	if card.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected generated ID")
	}
	if card.Status != StatusNotDone {
		t.Fatalf("expected not_done, got %s", card.Status)
	}
	if card.Color != "FFFFFF" {
		t.Fatalf("expected default color FFFFFF, got %q", card.Color)
	}
	if card.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}
