package models

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{"work", "work", CategoryWork, false},
		{"university", "university", CategoryUniversity, false},
		{"free_time", "free_time", CategoryFreeTime, false},
		{"unknown", "hobbies", "", true},
		{"empty", "", "", true},
		{"wrong case", "Work", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCategories_Closed(t *testing.T) {
	all := Categories()
	if len(all) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(all))
	}
	for _, c := range all {
		if !c.Valid() {
			t.Fatalf("category %s should be valid", c)
		}
	}
	if Category("other").Valid() {
		t.Fatal("arbitrary category should not be valid")
	}
}

func TestParseCardStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CardStatus
		wantErr bool
	}{
		{"done", "done", StatusDone, false},
		{"not_done", "not_done", StatusNotDone, false},
		{"unknown", "finished", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCardStatus(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
