package port

import (
	"sync"
	"testing"
	"time"
)

func TestRTOS_TimestampTicksForward(t *testing.T) {
	r := &RTOS{}
	if r.Timestamp() != 0 {
		t.Fatalf("Timestamp before Init = %d", r.Timestamp())
	}
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	start := r.Timestamp()
	time.Sleep(20 * time.Millisecond)
	if got := r.Timestamp(); got < start+10 {
		t.Fatalf("Timestamp did not advance: %d -> %d", start, got)
	}
}

func TestRTOS_TaskNames(t *testing.T) {
	r := &RTOS{}
	if got := r.TaskName(); got != "MAIN" {
		t.Fatalf("unregistered TaskName=%q", got)
	}

	var wg sync.WaitGroup
	got := make(chan string, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.RegisterTask("worker")
		defer r.UnregisterTask()
		got <- r.TaskName()
	}()
	wg.Wait()
	if name := <-got; name != "worker" {
		t.Fatalf("TaskName in task = %q", name)
	}
	// The registration was scoped to that goroutine.
	if name := r.TaskName(); name != "MAIN" {
		t.Fatalf("TaskName leaked: %q", name)
	}
}

func TestRTOS_ISRContext(t *testing.T) {
	inISR := false
	r := &RTOS{ISR: func() bool { return inISR }}
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	inISR = true
	if r.TaskName() != "ISR" {
		t.Fatalf("TaskName=%q in ISR context", r.TaskName())
	}
	// Lock must not block in ISR context even while another goroutine
	// holds the mutex.
	r.mu.Lock()
	done := make(chan struct{})
	go func() {
		r.Lock() // ISR path: no-op
		r.Unlock()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("ISR-context Lock blocked on held mutex")
	}
	r.mu.Unlock()
}

func TestRTOS_LockExcludes(t *testing.T) {
	r := &RTOS{}
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				r.Lock()
				counter++
				r.Unlock()
			}
		}()
	}
	wg.Wait()
	if counter != 8*500 {
		t.Fatalf("counter=%d want %d", counter, 8*500)
	}
}
