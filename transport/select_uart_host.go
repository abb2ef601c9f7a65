//go:build debug_uart && !tinygo

package transport

import "periph.io/x/conn/v3/uart"

// DefaultUARTPort must be set from the platform bootstrap before
// transport.Init on host UART builds.
var DefaultUARTPort uart.PortCloser

func selected() Transport { return &PeriphUART{Port: DefaultUARTPort} }
