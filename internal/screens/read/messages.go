package read

import "github.com/mzuhdi/tartil/internal/content"

// indexLoadedMsg is sent when the surah index fetch finishes.
type indexLoadedMsg struct {
	Index []content.SurahInfo
	Err   error
}

// ayahLoadedMsg is sent when an ayah fetch finishes. Gen ties the
// response to the request that started it so a stale fetch cannot
// overwrite a newer one.
type ayahLoadedMsg struct {
	Gen   int
	Surah int
	Num   int
	Ayah  *content.Ayah
	Err   error
}

// nextRefMsg is sent when the study-order lookup finishes. Ref is nil
// past the last served ayah.
type nextRefMsg struct {
	Gen int
	Ref *content.Ref
	Err error
}

// langLoadedMsg carries the stored translation language preference.
type langLoadedMsg struct {
	Lang string
}
