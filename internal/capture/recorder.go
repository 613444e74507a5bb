// Package capture bridges a start/stop user gesture to a finished audio
// artifact via the platform's microphone primitive.
package capture

import "fmt"

// CaptureUnavailableError reports a device or permission failure during
// Start. It is recoverable: the recorder state is unchanged and the user
// may retry.
type CaptureUnavailableError struct {
	Err error
}

func (e *CaptureUnavailableError) Error() string {
	return fmt.Sprintf("microphone unavailable: %v", e.Err)
}

func (e *CaptureUnavailableError) Unwrap() error { return e.Err }

// Recorder owns a single Device and enforces the recording lifecycle:
// at most one active recording, idempotent duplicate gestures, and the
// captured artifact surviving until the next Start or Clear.
type Recorder struct {
	dev       Device
	recording bool
	audio     []byte
	lastErr   *CaptureUnavailableError
}

// NewRecorder returns a Recorder over dev.
func NewRecorder(dev Device) *Recorder {
	return &Recorder{dev: dev}
}

// Start begins a new recording. A prior captured artifact is discarded
// first. Starting while already recording is a no-op (duplicate gestures
// are ignored, with no second device request). On device failure the
// recorder stays not-recording and the error is kept for display.
func (r *Recorder) Start() error {
	if r.recording {
		return nil
	}

	r.audio = nil
	r.lastErr = nil

	if err := r.dev.Start(); err != nil {
		capErr := &CaptureUnavailableError{Err: err}
		r.lastErr = capErr
		return capErr
	}
	r.recording = true
	return nil
}

// Stop finalizes the in-progress recording into an immutable artifact and
// releases the device. Calling Stop while not recording is a no-op.
func (r *Recorder) Stop() error {
	if !r.recording {
		return nil
	}
	r.recording = false

	audio, err := r.dev.Stop()
	if err != nil {
		capErr := &CaptureUnavailableError{Err: err}
		r.lastErr = capErr
		return capErr
	}
	r.audio = audio
	return nil
}

// Clear discards the captured artifact and any stale error. An in-progress
// recording keeps running.
func (r *Recorder) Clear() {
	r.audio = nil
	r.lastErr = nil
}

// Recording reports whether a recording is in progress.
func (r *Recorder) Recording() bool { return r.recording }

// Audio returns the captured artifact, or nil if none is available.
func (r *Recorder) Audio() []byte { return r.audio }

// LastError returns the most recent device failure, or nil.
func (r *Recorder) LastError() error {
	if r.lastErr == nil {
		return nil
	}
	return r.lastErr
}
