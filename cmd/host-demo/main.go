//go:build !tinygo

// Command host-demo: the same logging stack on a development machine.
// Log lines go to stdout; the console reads commands from stdin:
//
//	level warn
//	log info hello
//	seq
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"debuglog-go/console"
	"debuglog-go/debug"
	"debuglog-go/port"
	"debuglog-go/transport"
)

// stdinSerial feeds os.Stdin to the console through the same interface
// a hardware UART would.
type stdinSerial struct {
	rd   chan struct{}
	data chan []byte
	rest []byte
}

func newStdinSerial() *stdinSerial {
	s := &stdinSerial{
		rd:   make(chan struct{}, 1),
		data: make(chan []byte, 8),
	}
	go func() {
		buf := make([]byte, 128)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				s.data <- append([]byte(nil), buf[:n]...)
				select {
				case s.rd <- struct{}{}:
				default:
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return s
}

func (s *stdinSerial) Readable() <-chan struct{} { return s.rd }

func (s *stdinSerial) RecvSomeContext(ctx context.Context, p []byte) (int, error) {
	if len(s.rest) > 0 {
		n := copy(p, s.rest)
		s.rest = s.rest[n:]
		return n, nil
	}
	select {
	case chunk := <-s.data:
		n := copy(p, chunk)
		s.rest = chunk[n:]
		return n, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func main() {
	rt := &port.RTOS{}
	l, err := debug.New(&transport.Writer{W: os.Stdout}, rt, debug.DefaultConfig)
	if err != nil {
		println("debug init failed:", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go console.Run(ctx, console.Config{Port: newStdinSerial(), Logger: l})

	for _, name := range []string{"poller", "uploader"} {
		go func(name string) {
			rt.RegisterTask(name)
			defer rt.UnregisterTask()
			tick := time.NewTicker(1500 * time.Millisecond)
			defer tick.Stop()
			n := 0
			for {
				select {
				case <-ctx.Done():
					return
				case <-tick.C:
					n++
					l.Debug("%s cycle %d", name, n)
				}
			}
		}(name)
	}

	l.Info("host demo up; type 'level warn' to quiet the heartbeats")
	<-ctx.Done()
	l.Close()
}
