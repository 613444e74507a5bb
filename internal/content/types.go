// Package content talks to the learning content service, which serves
// ayah text, word glosses, the word lexicon, and study-order navigation
// for the supported surahs.
package content

import "fmt"

// Supported surah range. The content service only carries the last three
// surahs of the Quran.
const (
	MinSurah = 112
	MaxSurah = 114
)

// Word is one word of an ayah with its gloss and transliteration.
type Word struct {
	Arabic          string `json:"arabic"`
	English         string `json:"english"`
	Transliteration string `json:"transliteration"`
}

// Ayah is a full verse payload.
type Ayah struct {
	Arabic  string `json:"arabic"`
	English string `json:"english"`
	Urdu    string `json:"urdu"`
	Words   []Word `json:"words"`
}

// Ref identifies an ayah by surah and ayah number.
type Ref struct {
	Surah int `json:"surah"`
	Ayah  int `json:"ayah"`
}

// String renders the ref in the conventional surah:ayah form.
func (r Ref) String() string {
	return fmt.Sprintf("%d:%d", r.Surah, r.Ayah)
}

// SurahInfo describes one surah in the ayah index.
type SurahInfo struct {
	Surah     int    `json:"surah"`
	Name      string `json:"name"`
	AyahCount int    `json:"ayah_count"`
}

// LexiconEntry is one entry of the global word lexicon, used to draw
// quiz distractors from outside the current ayah.
type LexiconEntry struct {
	Arabic  string `json:"arabic"`
	English string `json:"english"`
}

// Health is the service health payload.
type Health struct {
	Status string `json:"status"`
}

// Supported reports whether the surah is within the served range.
func Supported(surah int) bool {
	return surah >= MinSurah && surah <= MaxSurah
}
