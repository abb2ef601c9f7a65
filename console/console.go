// Package console runs a small debug shell over a serial port: it reads
// LF-terminated command lines and executes them against a debug.Logger,
// so the log level can be changed and test lines emitted at runtime
// without reflashing.
package console

import (
	"context"
	"strings"
	"time"

	"github.com/google/shlex"

	"debuglog-go/debug"
	"debuglog-go/errcode"
)

// Serial is the receive side the console reads from. machine/uartx
// ports and test fakes satisfy it.
type Serial interface {
	// Readable signals that at least one byte may be buffered.
	Readable() <-chan struct{}
	// RecvSomeContext reads whatever is available, honoring ctx.
	RecvSomeContext(ctx context.Context, p []byte) (int, error)
}

type Config struct {
	Port   Serial
	Logger *debug.Logger
	// MaxLine bounds one command line; clamped to 16..256.
	MaxLine int
}

// Run services the console until ctx is cancelled. Input is accumulated
// into lines (CR ignored, LF terminates, overlong lines truncated) and
// each line is tokenized and dispatched.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Port == nil || cfg.Logger == nil {
		return errcode.InvalidArgument
	}
	max := cfg.MaxLine
	if max < 16 {
		max = 16
	}
	if max > 256 {
		max = 256
	}

	buf := make([]byte, max)
	line := make([]byte, 0, max)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-cfg.Port.Readable():
			// Bound the blocking wait to assist shutdown.
			rctx, rcancel := context.WithTimeout(ctx, 250*time.Millisecond)
			n, _ := cfg.Port.RecvSomeContext(rctx, buf)
			rcancel()
			if n <= 0 {
				continue
			}
			for i := 0; i < n; i++ {
				switch b := buf[i]; b {
				case '\n':
					execute(cfg.Logger, string(line))
					line = line[:0]
				case '\r':
					// ignore
				default:
					if len(line) < max {
						line = append(line, b)
					}
				}
			}
		}
	}
}

func execute(l *debug.Logger, line string) {
	args, err := shlex.Split(line)
	if err != nil {
		l.Printf("console: bad input: %s\r\n", err.Error())
		return
	}
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "level":
		if len(args) == 1 {
			l.Printf("level %s\r\n", l.Level().String())
			return
		}
		v, ok := debug.ParseLevel(args[1])
		if !ok {
			l.Printf("console: unknown level %s\r\n", args[1])
			return
		}
		l.SetLevel(v)
		l.Printf("level %s\r\n", v.String())

	case "log":
		if len(args) < 3 {
			l.Printf("console: usage: log <level> <text>\r\n")
			return
		}
		v, ok := debug.ParseLevel(args[1])
		if !ok {
			l.Printf("console: unknown level %s\r\n", args[1])
			return
		}
		l.Log(v, "%s", strings.Join(args[2:], " "))

	case "write":
		if len(args) < 2 {
			l.Printf("console: usage: write <text>\r\n")
			return
		}
		l.Write(strings.Join(args[1:], " "))

	case "seq":
		l.Printf("seq %d\r\n", l.Sequence())

	default:
		l.Printf("console: unknown command %s\r\n", args[0])
	}
}
