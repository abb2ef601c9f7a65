//go:build !tinygo

package transport

import (
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/host/v3"

	"debuglog-go/errcode"
)

// PeriphUART writes through a periph.io UART port on host builds
// (development machines, SBCs). The port is connected at Init with
// 8N1 framing.
type PeriphUART struct {
	Port uart.PortCloser
	Baud physic.Frequency // defaults to 115200 baud when zero

	conn conn.Conn
}

func (t *PeriphUART) Init() error {
	if t.Port == nil {
		return errcode.InvalidArgument
	}
	if _, err := host.Init(); err != nil {
		return &errcode.E{C: errcode.BackendInitFailed, Op: "transport.periph", Err: err}
	}
	baud := t.Baud
	if baud == 0 {
		baud = 115200 * physic.Hertz
	}
	c, err := t.Port.Connect(baud, uart.One, uart.NoParity, uart.NoFlow, 8)
	if err != nil {
		return &errcode.E{C: errcode.BackendInitFailed, Op: "transport.periph", Err: err}
	}
	t.conn = c
	return nil
}

func (t *PeriphUART) Deinit() error {
	t.conn = nil
	if t.Port == nil {
		return nil
	}
	return t.Port.Close()
}

func (t *PeriphUART) Write(p []byte) (int, error) {
	if t.conn == nil || len(p) == 0 {
		return 0, errcode.InvalidArgument
	}
	if err := t.conn.Tx(p, nil); err != nil {
		return 0, &errcode.E{C: errcode.TransportBusy, Op: "transport.periph", Err: err}
	}
	return len(p), nil
}
