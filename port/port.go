// Package port abstracts the execution environment underneath the debug
// facility: locking for shared output state, a tick timestamp, interrupt
// context detection, and a short label for the running task.
package port

import "debuglog-go/errcode"

// Port is the capability set a platform backend must provide.
// Exactly one backend is bound per build (see the select_* files), but
// any implementation can also be injected directly.
type Port interface {
	Init() error
	Deinit() error

	// Lock/Unlock guard the debug facility's shared state. Backends for
	// single-context targets may implement them as no-ops.
	Lock()
	Unlock()

	// Timestamp returns a platform tick value; 0 when no source exists.
	Timestamp() uint32

	// InISR reports whether the caller runs in interrupt context.
	InISR() bool

	// TaskName returns a short label for the current execution context.
	TaskName() string
}

// Init binds the build-selected port backend and initializes it.
func Init() (Port, error) {
	p := selected()
	if p == nil {
		return nil, errcode.Unsupported
	}
	if err := p.Init(); err != nil {
		return nil, &errcode.E{C: errcode.BackendInitFailed, Op: "port.Init", Err: err}
	}
	return p, nil
}

// Deinit releases the backend's resources. Nil ports deinit trivially.
func Deinit(p Port) error {
	if p == nil {
		return errcode.InvalidArgument
	}
	return p.Deinit()
}
