package transport

import (
	"io"

	"debuglog-go/errcode"
)

// Writer adapts any io.Writer into a Transport. Useful for host builds
// (stdout, files) and for tests.
type Writer struct {
	W io.Writer
}

func (t *Writer) Init() error {
	if t.W == nil {
		return errcode.InvalidArgument
	}
	return nil
}

func (t *Writer) Deinit() error { return nil }

func (t *Writer) Write(p []byte) (int, error) {
	if t.W == nil || len(p) == 0 {
		return 0, errcode.InvalidArgument
	}
	n, err := t.W.Write(p)
	if err != nil {
		return n, &errcode.E{C: errcode.TransportBusy, Op: "transport.writer", Err: err}
	}
	return n, nil
}
