package domain

import (
	"encoding/json"
	"strings"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FlexibleStrings is a string set that tolerates both a single JSON string and
// a JSON array of strings on the wire. Wardrobe exports produced over the years
// store "season"/"occasion" either way; everything past the catalog boundary
// sees a plain []string.
type FlexibleStrings []string

func (f *FlexibleStrings) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*f = nil
		} else {
			*f = FlexibleStrings{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*f = FlexibleStrings(many)
	return nil
}

// Strings returns the underlying slice.
func (f FlexibleStrings) Strings() []string { return []string(f) }

// MergeOccasions combines an occasion set with a legacy single occasion field,
// without introducing duplicates. Order is: set first, then the legacy value.
func MergeOccasions(set []string, legacy string) []string {
	if legacy == "" {
		return set
	}
	for _, o := range set {
		if strings.EqualFold(o, legacy) {
			return set
		}
	}
	out := make([]string, 0, len(set)+1)
	out = append(out, set...)
	return append(out, legacy)
}
