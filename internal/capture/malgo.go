package capture

import (
	"fmt"
	"os"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// bitDepth is fixed: the ASR service expects 16-bit PCM.
	bitDepth = 16

	// DefaultSampleRate matches the ASR service's reference recordings.
	DefaultSampleRate = 16000
)

// MicDevice captures mono 16-bit PCM from the default system microphone
// via miniaudio and packages it as WAV on Stop.
type MicDevice struct {
	sampleRate int

	mu     sync.Mutex
	ctx    *malgo.AllocatedContext
	device *malgo.Device

	// pcm has its own lock: the data callback runs on the audio thread
	// and must never contend with the device lifecycle lock.
	pcmMu sync.Mutex
	pcm   []byte
}

// NewMicDevice returns a microphone device capturing at sampleRate Hz
// (DefaultSampleRate if zero).
func NewMicDevice(sampleRate int) *MicDevice {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &MicDevice{sampleRate: sampleRate}
}

// Start opens the default capture device and begins buffering PCM frames.
func (d *MicDevice) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(string) {})
	if err != nil {
		return fmt.Errorf("init audio context: %w", err)
	}

	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatS16
	cfg.Capture.Channels = 1
	cfg.SampleRate = uint32(d.sampleRate)
	cfg.Alsa.NoMMap = 1

	d.pcmMu.Lock()
	d.pcm = nil
	d.pcmMu.Unlock()
	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, _ uint32) {
			d.pcmMu.Lock()
			d.pcm = append(d.pcm, input...)
			d.pcmMu.Unlock()
		},
	}

	device, err := malgo.InitDevice(ctx.Context, cfg, callbacks)
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return fmt.Errorf("open capture device: %w", err)
	}
	if err := device.Start(); err != nil {
		device.Uninit()
		_ = ctx.Uninit()
		ctx.Free()
		return fmt.Errorf("start capture device: %w", err)
	}

	d.ctx = ctx
	d.device = device
	return nil
}

// Stop releases the device and returns the captured PCM wrapped in a WAV
// container. The device handle is released even when encoding fails.
func (d *MicDevice) Stop() ([]byte, error) {
	d.mu.Lock()
	device, ctx := d.device, d.ctx
	d.device, d.ctx = nil, nil
	d.mu.Unlock()

	if device != nil {
		device.Uninit()
	}
	if ctx != nil {
		_ = ctx.Uninit()
		ctx.Free()
	}

	d.pcmMu.Lock()
	pcm := d.pcm
	d.pcm = nil
	d.pcmMu.Unlock()

	return encodeWAV(pcm, d.sampleRate)
}

// encodeWAV wraps little-endian S16 mono PCM in a WAV container. The wav
// encoder needs an io.WriteSeeker to patch the header, so it goes through
// a temp file.
func encodeWAV(pcm []byte, sampleRate int) ([]byte, error) {
	samples := make([]int, len(pcm)/2)
	for i := range samples {
		samples[i] = int(int16(uint16(pcm[2*i]) | uint16(pcm[2*i+1])<<8))
	}

	f, err := os.CreateTemp("", "tartil-*.wav")
	if err != nil {
		return nil, fmt.Errorf("create wav temp file: %w", err)
	}
	name := f.Name()
	defer os.Remove(name)

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Data:           samples,
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return nil, fmt.Errorf("finalize wav: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	return os.ReadFile(name)
}
