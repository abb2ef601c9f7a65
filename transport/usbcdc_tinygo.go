//go:build tinygo

package transport

import (
	"machine"

	"debuglog-go/errcode"
)

// USBCDC writes through machine.Serial, the USB CDC endpoint on
// USB-capable boards. The runtime enumerates the device before main,
// so Init has nothing to do.
type USBCDC struct{}

func (USBCDC) Init() error   { return nil }
func (USBCDC) Deinit() error { return nil }

func (USBCDC) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, errcode.InvalidArgument
	}
	n, err := machine.Serial.Write(p)
	if err != nil {
		return n, &errcode.E{C: errcode.TransportBusy, Op: "transport.usbcdc", Err: err}
	}
	return n, nil
}
