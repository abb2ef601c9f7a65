// Package debug is a small level-filtered logging facility for embedded
// targets. Output goes through a pluggable transport (UART, USB CDC, a
// host writer) and a pluggable platform port that supplies locking,
// timestamps, ISR detection and task naming, so the same logging code
// runs unmodified on bare-metal, RTOS-style and host builds.
//
// A Logger never retries and never panics on backend failure: every
// error degrades to "nothing was logged" and is reported to the caller
// as a return value.
package debug

import (
	"debuglog-go/errcode"
	"debuglog-go/port"
	"debuglog-go/transport"
)

// Logger owns the bound transport and port, the level threshold, the
// message sequence counter and the shared line buffer. Construct one at
// startup with New and pass it to whoever needs to log; the zero value
// is a safe no-op.
type Logger struct {
	transport transport.Transport
	port      port.Port
	cfg       Config

	level       Level
	initialized bool
	seq         uint32
	buf         []byte
}

// New binds a transport and a port and initializes both, transport
// first. Either reference nil is InvalidArgument; a backend init
// failure is BackendInitFailed and leaves nothing usable behind. The
// threshold starts at LevelDebug, the most verbose.
func New(t transport.Transport, p port.Port, cfg Config) (*Logger, error) {
	if t == nil || p == nil {
		return nil, errcode.InvalidArgument
	}
	cfg = cfg.withDefaults()
	l := &Logger{
		transport: t,
		port:      p,
		cfg:       cfg,
		level:     LevelDebug,
		buf:       make([]byte, 0, cfg.BufferSize),
	}
	if cfg.Disabled {
		return l, nil
	}
	if err := t.Init(); err != nil {
		return nil, &errcode.E{C: errcode.BackendInitFailed, Op: "debug.New", Err: err}
	}
	if err := p.Init(); err != nil {
		return nil, &errcode.E{C: errcode.BackendInitFailed, Op: "debug.New", Err: err}
	}
	l.initialized = true
	return l, nil
}

// Close deinitializes the port, then the transport. The logger becomes
// a no-op afterwards.
func (l *Logger) Close() error {
	if !l.initialized {
		return nil
	}
	l.initialized = false
	perr := l.port.Deinit()
	terr := l.transport.Deinit()
	if perr != nil {
		return perr
	}
	return terr
}

// SetLevel replaces the threshold. The value is not validated; an
// out-of-range level simply filters everything below LevelDebug.
func (l *Logger) SetLevel(v Level) { l.level = v }

// Level returns the current threshold.
func (l *Logger) Level() Level { return l.level }

// Sequence returns the current value of the message counter.
func (l *Logger) Sequence() uint32 {
	l.lock()
	s := l.seq
	l.unlock()
	return s
}

// Write sends s through the transport unmodified, holding the port lock
// across the write. Returns the transport's byte count or error as-is.
// A zero-value or closed logger returns 0 without touching anything.
func (l *Logger) Write(s string) (int, error) {
	if !l.initialized {
		return 0, nil
	}
	if s == "" {
		return 0, errcode.InvalidArgument
	}
	l.lock()
	defer l.unlock()
	return l.transport.Write([]byte(s))
}

// Printf formats into the shared bounded buffer and writes the result.
// Output longer than the configured buffer is truncated.
func (l *Logger) Printf(format string, args ...any) (int, error) {
	if !l.initialized {
		return 0, nil
	}
	if format == "" {
		return 0, errcode.InvalidArgument
	}
	l.lock()
	defer l.unlock()
	line := appendBounded(l.buf[:0], l.cfg.BufferSize, sprintf(format, args...))
	if len(line) == 0 {
		return 0, nil
	}
	return l.transport.Write(line)
}

// Log emits one line at the given level:
//
//	[SSSSS][TTTTTTTTTT][TASK][LEVEL] message\r\n
//
// Prefix fields appear only when enabled in the Config, in that fixed
// order. Filtered or uninitialized calls return 0 with no transport
// activity. The line is formatted and transmitted under the port lock,
// so concurrent callers never interleave mid-line.
func (l *Logger) Log(level Level, format string, args ...any) (int, error) {
	if !l.initialized || level > l.level {
		return 0, nil
	}
	if format == "" {
		return 0, errcode.InvalidArgument
	}

	var ts uint32
	task := "MAIN"
	var seq uint32
	if l.cfg.Timestamp {
		ts = l.port.Timestamp()
	}
	if l.cfg.TaskName {
		task = l.port.TaskName()
	}
	if l.cfg.Sequence {
		seq = l.nextSequence()
	}

	l.lock()
	defer l.unlock()
	max := l.cfg.BufferSize
	line := l.buf[:0]
	if l.cfg.Sequence {
		line = appendSeqField(line, max, seq)
	}
	if l.cfg.Timestamp {
		line = appendUintField(line, max, ts)
	}
	if l.cfg.TaskName {
		line = appendStringField(line, max, task)
	}
	line = appendBounded(line, max, "[")
	line = appendBounded(line, max, level.String())
	line = appendBounded(line, max, "] ")
	line = appendBounded(line, max, sprintf(format, args...))
	line = terminate(line, max)
	return l.transport.Write(line)
}

// Convenience wrappers, one per level.

func (l *Logger) Error(format string, args ...any) (int, error) {
	return l.Log(LevelError, format, args...)
}

func (l *Logger) Warn(format string, args ...any) (int, error) {
	return l.Log(LevelWarn, format, args...)
}

func (l *Logger) Info(format string, args ...any) (int, error) {
	return l.Log(LevelInfo, format, args...)
}

func (l *Logger) Debug(format string, args ...any) (int, error) {
	return l.Log(LevelDebug, format, args...)
}

// nextSequence is the only writer of the shared counter. With a locking
// port the increment is serialized; with the bare-metal port it is
// unsynchronized and only safe within a single execution context.
func (l *Logger) nextSequence() uint32 {
	l.lock()
	l.seq++
	s := l.seq
	l.unlock()
	return s
}

func (l *Logger) lock() {
	if l.port != nil {
		l.port.Lock()
	}
}

func (l *Logger) unlock() {
	if l.port != nil {
		l.port.Unlock()
	}
}
