package capture

// Device abstracts the platform microphone primitive. Implementations own
// the OS audio handle; the Recorder owns the start/stop/clear state machine
// on top.
type Device interface {
	// Start opens the device and begins buffering audio. It fails if the
	// device is unavailable or permission is denied.
	Start() error

	// Stop finalizes buffering, releases the device handle unconditionally
	// (including on error), and returns the finished audio artifact in the
	// container the capture pipeline natively produces.
	Stop() ([]byte, error)
}
