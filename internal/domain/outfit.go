package domain

import (
	"strings"
	"time"
)

// Outfit is a named, ordered collection of clothing item references plus
// descriptive metadata. Like ClothingItem it is read-only to the engine.
//
// Occasions is always a set: an outfit that carried only the legacy single
// "occasion" field has it coerced into a one-element set at the catalog
// boundary, so nothing downstream branches on representation.
type Outfit struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	ItemIDs   []string   `json:"item_ids"`
	Seasons   []string   `json:"seasons,omitempty"`
	Occasions []string   `json:"occasions,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Favorite  bool       `json:"favorite"`
	TimesWorn int        `json:"times_worn"`
	LastWorn  *time.Time `json:"last_worn,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// HasTagContaining reports whether any tag case-insensitively contains word.
func (o *Outfit) HasTagContaining(word string) bool {
	if word == "" {
		return false
	}
	word = strings.ToLower(word)
	for _, tag := range o.Tags {
		if strings.Contains(strings.ToLower(tag), word) {
			return true
		}
	}
	return false
}
