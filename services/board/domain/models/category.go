package models

import "fmt"

// Category is one of the three fixed board groupings. The set is closed;
// ParseCategory rejects anything else.
type Category string

const (
	CategoryWork       Category = "work"
	CategoryUniversity Category = "university"
	CategoryFreeTime   Category = "free_time"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryWork, CategoryUniversity, CategoryFreeTime}
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryWork, CategoryUniversity, CategoryFreeTime:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// String returns the underlying string value.
func (c Category) String() string {
	return string(c)
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}
