package hashing

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// DefaultEntropyDevice is the device read by [DeviceEntropy] when no path is set.
const DefaultEntropyDevice = "/dev/urandom"

// EntropySource supplies cryptographically secure random bytes.
//
// Implementations must be safe for concurrent use and must either return
// exactly n bytes or an error.
type EntropySource interface {
	Bytes(n int) ([]byte, error)
}

// SystemEntropy reads from the operating system CSPRNG via crypto/rand.
type SystemEntropy struct{}

// Bytes returns n random bytes.
func (SystemEntropy) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return buf, nil
}

// DeviceEntropy reads from a random device such as /dev/urandom. The device
// is opened for a single read and closed before Bytes returns; no handle is
// held between calls.
type DeviceEntropy struct {
	// Fs is the filesystem the device is opened on. Nil means the host OS.
	Fs afero.Fs

	// Path is the device path. Empty means [DefaultEntropyDevice].
	Path string
}

// NewDeviceEntropy returns a DeviceEntropy reading path on the host OS.
func NewDeviceEntropy(path string) *DeviceEntropy {
	return &DeviceEntropy{Fs: afero.NewOsFs(), Path: path}
}

// Bytes returns n bytes read from the device. A device that cannot be opened
// or that yields fewer than n bytes results in [ErrEntropyUnavailable].
func (d *DeviceEntropy) Bytes(n int) (out []byte, err error) {
	fs := d.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	path := d.Path
	if path == "" {
		path = DefaultEntropyDevice
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrEntropyUnavailable, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			clear(out)
			out, err = nil, fmt.Errorf("%w: close %s: %w", ErrEntropyUnavailable, path, cerr)
		}
	}()

	buf := make([]byte, n)
	if _, err := io.ReadFull(f, buf); err != nil {
		clear(buf)
		return nil, fmt.Errorf("%w: read %s: %w", ErrEntropyUnavailable, path, err)
	}
	return buf, nil
}
