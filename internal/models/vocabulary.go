// Package models defines data structures for the bowlink vocabulary linker.
package models

import "fmt"

// Category classifies a vocabulary item into one of the four bowtie roles.
type Category string

const (
	CategoryActivity    Category = "activity"
	CategoryPressure    Category = "pressure"
	CategoryConsequence Category = "consequence"
	CategoryControl     Category = "control"
)

// ParseCategory converts a string into a Category.
// Returns an error for unknown values so typos fail at the boundary
// instead of silently breaking the cross-category filter.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryActivity, CategoryPressure, CategoryConsequence, CategoryControl:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// VocabularyItem is a single curated term. Name is free text
// (human-authored, arbitrary casing and punctuation).
type VocabularyItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// Vocabulary holds the four independently curated term lists.
type Vocabulary struct {
	Activities   []VocabularyItem `json:"activities"`
	Pressures    []VocabularyItem `json:"pressures"`
	Consequences []VocabularyItem `json:"consequences"`
	Controls     []VocabularyItem `json:"controls"`
}

// Items returns all items flattened in fixed category order
// (activities, pressures, consequences, controls).
func (v Vocabulary) Items() []VocabularyItem {
	items := make([]VocabularyItem, 0, v.Len())
	items = append(items, v.Activities...)
	items = append(items, v.Pressures...)
	items = append(items, v.Consequences...)
	items = append(items, v.Controls...)
	return items
}

// Len returns the total item count across all categories.
func (v Vocabulary) Len() int {
	return len(v.Activities) + len(v.Pressures) + len(v.Consequences) + len(v.Controls)
}

// Find returns the item with the given ID, searching all categories.
func (v Vocabulary) Find(id string) (VocabularyItem, bool) {
	for _, item := range v.Items() {
		if item.ID == id {
			return item, true
		}
	}
	return VocabularyItem{}, false
}
