//go:build rp2040

// Command pico-demo: debug logging bring-up for RP2040/Pico.
//
// Build/flash (TinyGo):
//   tinygo flash -target pico ./cmd/pico-demo
//
// Logs stream out of UART0 on the board defaults (TX=GP0, RX=GP1,
// 115200 baud). The same port accepts console commands, e.g.:
//   level warn
//   log info hello from the console
//   seq
package main

import (
	"context"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"debuglog-go/console"
	"debuglog-go/debug"
	"debuglog-go/port"
	"debuglog-go/transport"
)

func main() {
	// Give the host side time to attach before the first lines.
	time.Sleep(2 * time.Second)

	l, err := debug.New(transport.NewDefaultUART(), &port.BareMetal{}, debug.DefaultConfig)
	if err != nil {
		println("debug init failed:", err.Error())
		return
	}

	go console.Run(context.Background(), console.Config{Port: uartx.UART0, Logger: l})

	l.Info("boot")

	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	n := 0
	for range tick.C {
		n++
		l.Debug("heartbeat %d", n)
	}
}
