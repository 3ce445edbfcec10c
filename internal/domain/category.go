package domain

import (
	"fmt"
	"strings"
)

// ItemCategory tags an item for slot compatibility checks. CategoryNone is the
// wildcard: it matches every restriction and every restriction matches it.
type ItemCategory uint8

const (
	CategoryNone ItemCategory = iota
	CategoryResource
	CategoryHeadgear
	CategoryChestgear
	CategoryLegging
	CategoryFootgear
)

var categoryNames = [...]string{
	CategoryNone:      "none",
	CategoryResource:  "resource",
	CategoryHeadgear:  "headgear",
	CategoryChestgear: "chestgear",
	CategoryLegging:   "legging",
	CategoryFootgear:  "footgear",
}

// ItemCategories lists every known category in declaration order.
func ItemCategories() []ItemCategory {
	out := make([]ItemCategory, len(categoryNames))
	for i := range categoryNames {
		out[i] = ItemCategory(i)
	}
	return out
}

// String returns the lowercase name used in catalog files and API payloads.
func (c ItemCategory) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Valid reports whether c is one of the declared categories.
func (c ItemCategory) Valid() bool {
	return int(c) < len(categoryNames)
}

// ParseItemCategory converts a category name (case-insensitive) into an
// ItemCategory. An empty string parses as CategoryNone.
func ParseItemCategory(s string) (ItemCategory, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryNone, nil
	}
	for i, name := range categoryNames {
		if name == s {
			return ItemCategory(i), nil
		}
	}
	return CategoryNone, fmt.Errorf("%w: unknown category %q", ErrInvalidCategory, s)
}

func (c ItemCategory) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *ItemCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseItemCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
