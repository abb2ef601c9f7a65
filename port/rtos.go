package port

import (
	"runtime"
	"sync"
	"time"
)

// RTOS is the port for preemptive builds: a real mutex guards the shared
// log state, timestamps count milliseconds since Init (the tick
// analogue), and tasks may register a label for their goroutine.
//
// The lock is never taken in interrupt context; blocking there would be
// unsafe, so ISR callers fall through to the unsynchronized path.
type RTOS struct {
	// ISR reports interrupt context on targets that have one. Left nil,
	// InISR reports false (host builds have no ISRs).
	ISR func() bool

	mu    sync.Mutex
	epoch time.Time
	names sync.Map // goroutine id -> task label
}

func (r *RTOS) Init() error {
	r.epoch = time.Now()
	return nil
}

func (r *RTOS) Deinit() error { return nil }

func (r *RTOS) Lock() {
	if !r.InISR() {
		r.mu.Lock()
	}
}

func (r *RTOS) Unlock() {
	if !r.InISR() {
		r.mu.Unlock()
	}
}

func (r *RTOS) Timestamp() uint32 {
	if r.epoch.IsZero() {
		return 0
	}
	return uint32(time.Since(r.epoch).Milliseconds())
}

func (r *RTOS) InISR() bool {
	if r.ISR != nil {
		return r.ISR()
	}
	return false
}

func (r *RTOS) TaskName() string {
	if r.InISR() {
		return "ISR"
	}
	if v, ok := r.names.Load(goroutineID()); ok {
		return v.(string)
	}
	return "MAIN"
}

// RegisterTask labels the calling goroutine for TaskName lookups.
// Call UnregisterTask before the goroutine exits to drop the entry.
func (r *RTOS) RegisterTask(name string) {
	r.names.Store(goroutineID(), name)
}

// UnregisterTask removes the calling goroutine's label.
func (r *RTOS) UnregisterTask() {
	r.names.Delete(goroutineID())
}

// goroutineID extracts the numeric id from the first stack header line,
// "goroutine N [running]:". Returns "" when the header is unavailable.
func goroutineID() string {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := string(buf[:n])
	const prefix = "goroutine "
	if len(s) <= len(prefix) || s[:len(prefix)] != prefix {
		return ""
	}
	s = s[len(prefix):]
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return s[:i]
		}
	}
	return ""
}
