package transport

import (
	"tinygo.org/x/drivers"

	"debuglog-go/errcode"
)

// UART writes through a hardware serial port. The port is anything
// satisfying drivers.UART (machine.UART, uartx.UART, a test fake).
type UART struct {
	Port drivers.UART

	// Setup, when set, runs once from Init to claim and configure the
	// hardware (pins, baud). The rp2040 build wires this up.
	Setup func() error
}

func (u *UART) Init() error {
	if u.Setup != nil {
		if err := u.Setup(); err != nil {
			return err
		}
	}
	if u.Port == nil {
		return errcode.InvalidArgument
	}
	return nil
}

func (u *UART) Deinit() error { return nil }

func (u *UART) Write(p []byte) (int, error) {
	if u.Port == nil || len(p) == 0 {
		return 0, errcode.InvalidArgument
	}
	n, err := u.Port.Write(p)
	if err != nil {
		return n, &errcode.E{C: errcode.TransportBusy, Op: "transport.uart", Err: err}
	}
	return n, nil
}
