//go:build rp2040

package transport

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// UARTConfig selects the hardware UART and its wiring for rp2040 builds.
type UARTConfig struct {
	Baud uint32
	TX   machine.Pin
	RX   machine.Pin
}

// DefaultUARTConfig is what NewDefaultUART configures. Override from the
// platform bootstrap before transport.Init when the board differs.
var DefaultUARTConfig = UARTConfig{
	Baud: 115200,
	TX:   machine.UART0_TX_PIN,
	RX:   machine.UART0_RX_PIN,
}

// NewDefaultUART returns a UART transport on uartx.UART0, configured
// from DefaultUARTConfig at Init time.
func NewDefaultUART() *UART {
	return &UART{
		Port: uartx.UART0,
		Setup: func() error {
			return uartx.UART0.Configure(uartx.UARTConfig{
				BaudRate: DefaultUARTConfig.Baud,
				TX:       DefaultUARTConfig.TX,
				RX:       DefaultUARTConfig.RX,
			})
		},
	}
}
