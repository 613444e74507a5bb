package content

import "fmt"

// SurahUnsupportedError is returned before any network call when the
// requested surah lies outside the served range.
type SurahUnsupportedError struct {
	Surah int
}

func (e *SurahUnsupportedError) Error() string {
	return fmt.Sprintf("surah %d is not available: only surahs %d-%d are supported", e.Surah, MinSurah, MaxSurah)
}

// ServiceError is returned when the content service answers with a
// non-success status.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("content service returned %d: %s", e.StatusCode, e.Body)
}

// InvalidPayloadError is returned when the service answers 200 but the
// body does not match the expected shape.
type InvalidPayloadError struct {
	Err error
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid content payload: %v", e.Err)
}

func (e *InvalidPayloadError) Unwrap() error { return e.Err }
