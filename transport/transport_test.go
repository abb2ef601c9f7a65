package transport

import (
	"bytes"
	"errors"
	"testing"

	"debuglog-go/errcode"
)

// fakeSerial satisfies drivers.UART for host-side tests.
type fakeSerial struct {
	tx  bytes.Buffer
	err error
}

func (f *fakeSerial) Buffered() int            { return 0 }
func (f *fakeSerial) ReadByte() (byte, error)  { return 0, errors.New("empty") }
func (f *fakeSerial) Read(p []byte) (int, error) { return 0, nil }
func (f *fakeSerial) WriteByte(b byte) error   { _, err := f.Write([]byte{b}); return err }

func (f *fakeSerial) Write(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.tx.Write(p)
}

func TestInit_NoBackendSelected(t *testing.T) {
	// The test build carries neither debug_uart nor debug_usbcdc.
	if _, err := Init(); err != errcode.Unsupported {
		t.Fatalf("Init err=%v", err)
	}
}

func TestDeinit_NilTransport(t *testing.T) {
	if err := Deinit(nil); err != errcode.InvalidArgument {
		t.Fatalf("Deinit(nil) err=%v", err)
	}
}

func TestUART_WriteValidation(t *testing.T) {
	u := &UART{Port: &fakeSerial{}}
	if err := u.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := u.Write(nil); err != errcode.InvalidArgument {
		t.Fatalf("Write(nil) err=%v", err)
	}
	n, err := u.Write([]byte("abc"))
	if n != 3 || err != nil {
		t.Fatalf("Write: n=%d err=%v", n, err)
	}
}

func TestUART_NoPort(t *testing.T) {
	u := &UART{}
	if err := u.Init(); err != errcode.InvalidArgument {
		t.Fatalf("Init err=%v", err)
	}
	if _, err := u.Write([]byte("x")); err != errcode.InvalidArgument {
		t.Fatalf("Write err=%v", err)
	}
}

func TestUART_SetupRunsBeforeUse(t *testing.T) {
	ran := false
	u := &UART{Port: &fakeSerial{}, Setup: func() error { ran = true; return nil }}
	if err := u.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !ran {
		t.Fatalf("Setup not invoked")
	}
}

func TestUART_MapsDriverErrorToBusy(t *testing.T) {
	u := &UART{Port: &fakeSerial{err: errors.New("fifo full")}}
	_, err := u.Write([]byte("x"))
	if errcode.Of(err) != errcode.TransportBusy {
		t.Fatalf("err=%v", err)
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	var sink bytes.Buffer
	w := &Writer{W: &sink}
	if err := w.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := w.Write(nil); err != errcode.InvalidArgument {
		t.Fatalf("Write(nil) err=%v", err)
	}
	n, err := w.Write([]byte("hello"))
	if n != 5 || err != nil || sink.String() != "hello" {
		t.Fatalf("n=%d err=%v sink=%q", n, err, sink.String())
	}
}

func TestWriter_NilSink(t *testing.T) {
	w := &Writer{}
	if err := w.Init(); err != errcode.InvalidArgument {
		t.Fatalf("Init err=%v", err)
	}
}

func TestPeriphUART_Validation(t *testing.T) {
	p := &PeriphUART{}
	if err := p.Init(); err != errcode.InvalidArgument {
		t.Fatalf("Init err=%v", err)
	}
	if _, err := p.Write([]byte("x")); err != errcode.InvalidArgument {
		t.Fatalf("Write before connect err=%v", err)
	}
}
