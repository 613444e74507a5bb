package pronounce

// Tier is the three-bucket classification of a pronunciation score.
type Tier string

const (
	TierGood         Tier = "good"
	TierIntermediate Tier = "intermediate"
	TierWrong        Tier = "wrong"
)

// Thresholds are the tier cutoffs on the 0-100 score scale. They are
// configuration, not business logic baked into the code.
type Thresholds struct {
	Good         float64
	Intermediate float64
}

// DefaultThresholds mirror the evaluation service's own labeling.
func DefaultThresholds() Thresholds {
	return Thresholds{Good: 85, Intermediate: 70}
}

// Classify buckets a numeric score into a Tier.
func Classify(score float64, t Thresholds) Tier {
	switch {
	case score >= t.Good:
		return TierGood
	case score >= t.Intermediate:
		return TierIntermediate
	default:
		return TierWrong
	}
}

// messages maps target kind and tier to the fixed feedback line. One
// string per tier, deterministic, no randomness.
var messages = map[TargetKind]map[Tier]string{
	TargetWord: {
		TierGood:         "Excellent pronunciation! Mashallah!",
		TierIntermediate: "Good attempt! Keep practicing.",
		TierWrong:        "Try again. Focus on the Tajweed rules.",
	},
	TargetAyah: {
		TierGood:         "Excellent recitation! Mashallah!",
		TierIntermediate: "Good attempt! Keep practicing the ayah.",
		TierWrong:        "Try again. Focus on the pronunciation.",
	},
	TargetSurah: {
		TierGood:         "Excellent surah recitation! Mashallah!",
		TierIntermediate: "Good attempt! Keep practicing.",
		TierWrong:        "Try again. Focus on your recitation.",
	},
}

// Message returns the fixed human feedback line for a tier.
func Message(kind TargetKind, tier Tier) string {
	return messages[kind][tier]
}
