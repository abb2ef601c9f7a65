// Package transport abstracts the byte sink debug output is written to.
// Backends adapt a concrete medium (UART, USB CDC, a host writer); the
// debug core only ever sees the Transport interface.
package transport

import "debuglog-go/errcode"

// Transport is the capability set an output backend must provide.
type Transport interface {
	Init() error
	Deinit() error

	// Write transmits p and returns the byte count accepted by the
	// medium. Implementations reject empty input with InvalidArgument
	// and map medium failures to TransportBusy.
	Write(p []byte) (int, error)
}

// Init binds the build-selected transport backend and initializes it.
// Selection happens via the debug_uart / debug_usbcdc build tags; setting
// both fails the build, setting neither makes Init report Unsupported.
func Init() (Transport, error) {
	t := selected()
	if t == nil {
		return nil, errcode.Unsupported
	}
	if err := t.Init(); err != nil {
		return nil, &errcode.E{C: errcode.BackendInitFailed, Op: "transport.Init", Err: err}
	}
	return t, nil
}

// Deinit releases the backend's resources.
func Deinit(t Transport) error {
	if t == nil {
		return errcode.InvalidArgument
	}
	return t.Deinit()
}
