package domain

import "testing"

func TestOutfitLog_EffectiveActivity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		log  OutfitLog
		want string
	}{
		{"plain activity", OutfitLog{Activity: "work"}, "work"},
		{"other substitutes custom", OutfitLog{Activity: "other", CustomActivity: "hiking"}, "hiking"},
		{"other without custom stays other", OutfitLog{Activity: "other"}, "other"},
		{"no activity", OutfitLog{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.log.EffectiveActivity(); got != tt.want {
				t.Errorf("EffectiveActivity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutfitLog_IsActivity(t *testing.T) {
	t.Parallel()

	if !(&OutfitLog{OutfitID: ActivityOutfitID}).IsActivity() {
		t.Error("sentinel OutfitID should mark an activity log")
	}
	if (&OutfitLog{OutfitID: "o1"}).IsActivity() {
		t.Error("regular OutfitID should not mark an activity log")
	}
}

func TestOutfit_HasTagContaining(t *testing.T) {
	t.Parallel()

	o := &Outfit{Tags: []string{"Bold", "evening-wear"}}

	if !o.HasTagContaining("bold") {
		t.Error("expected case-insensitive match on tag 'Bold'")
	}
	if !o.HasTagContaining("evening") {
		t.Error("expected substring match on tag 'evening-wear'")
	}
	if o.HasTagContaining("formal") {
		t.Error("did not expect a match for 'formal'")
	}
	if o.HasTagContaining("") {
		t.Error("empty word must never match")
	}
}
