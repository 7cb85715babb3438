package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"trims and lowercases", "  Date Night  ", "date night"},
		{"compresses spaces", "smart   casual", "smart casual"},
		{"keeps hyphens", "All-Day", "all-day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.in); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFlexibleStrings_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
		want []string
	}{
		{"single string", `"summer"`, []string{"summer"}},
		{"array", `["summer","winter"]`, []string{"summer", "winter"}},
		{"empty string", `""`, nil},
		{"empty array", `[]`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexibleStrings
			if err := json.Unmarshal([]byte(tt.json), &f); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(f.Strings(), tt.want) {
				t.Errorf("got %#v, want %#v", f.Strings(), tt.want)
			}
		})
	}
}

func TestFlexibleStrings_UnmarshalJSON_Invalid(t *testing.T) {
	t.Parallel()

	var f FlexibleStrings
	if err := json.Unmarshal([]byte(`42`), &f); err == nil {
		t.Fatal("expected error for non-string JSON")
	}
}

func TestMergeOccasions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		set    []string
		legacy string
		want   []string
	}{
		{"no legacy", []string{"work"}, "", []string{"work"}},
		{"legacy appended", []string{"work"}, "party", []string{"work", "party"}},
		{"legacy duplicate ignored", []string{"Work"}, "work", []string{"Work"}},
		{"legacy only", nil, "casual", []string{"casual"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeOccasions(tt.set, tt.legacy); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeOccasions(%v, %q) = %v, want %v", tt.set, tt.legacy, got, tt.want)
			}
		})
	}
}
