package pronounce

import "testing"

func TestClassify(t *testing.T) {
	th := DefaultThresholds()

	cases := []struct {
		score float64
		want  Tier
	}{
		{100, TierGood},
		{91.5, TierGood},
		{85, TierGood}, // boundary is inclusive
		{84.9, TierIntermediate},
		{70, TierIntermediate},
		{69.9, TierWrong},
		{0, TierWrong},
	}
	for _, tc := range cases {
		if got := Classify(tc.score, th); got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestClassify_ConfigurableCutoffs(t *testing.T) {
	th := Thresholds{Good: 90, Intermediate: 50}

	if got := Classify(87, th); got != TierIntermediate {
		t.Errorf("Classify(87) = %q, want intermediate under custom cutoffs", got)
	}
	if got := Classify(49, th); got != TierWrong {
		t.Errorf("Classify(49) = %q, want wrong under custom cutoffs", got)
	}
}

func TestMessage_FixedPerTier(t *testing.T) {
	for _, kind := range []TargetKind{TargetWord, TargetAyah, TargetSurah} {
		for _, tier := range []Tier{TierGood, TierIntermediate, TierWrong} {
			first := Message(kind, tier)
			if first == "" {
				t.Errorf("Message(%q, %q) is empty", kind, tier)
			}
			if second := Message(kind, tier); second != first {
				t.Errorf("Message(%q, %q) not deterministic", kind, tier)
			}
		}
	}
}
