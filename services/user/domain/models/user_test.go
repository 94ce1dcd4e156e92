package models

import (
	"strings"
	"testing"
)

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already lower", "alice", "alice"},
		{"mixed case", "Alice", "alice"},
		{"all caps", "ALICE", "alice"},
		{"surrounding whitespace", "  alice  ", "alice"},
		{"mixed case and whitespace", " Bob\t", "bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeUsername(tt.input); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewUser(t *testing.T) {
	hash := []byte("$2a$10$fakehash")

	tests := []struct {
		name     string
		username string
		want     string
		wantErr  bool
	}{
		{"valid", "alice", "alice", false},
		{"normalized", " Alice ", "alice", false},
		{"minimum length", "bob", "bob", false},
		{"too short", "ab", "", true},
		{"too long", strings.Repeat("a", 65), "", true},
		{"inner whitespace", "ali ce", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.username, hash)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.username)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.Username != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, user.Username)
			}
			if user.CreatedAt.IsZero() {
				t.Fatal("expected CreatedAt to be set")
			}
		})
	}
}
