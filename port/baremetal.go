package port

// BareMetal is the port for single-context targets: no scheduler, no
// locking. Log calls must not be interleaved between main flow and
// interrupt handlers; that is the integrator's responsibility here.
type BareMetal struct {
	// Now supplies a tick value when the target has a counter to read.
	// Left nil, Timestamp reports 0.
	Now func() uint32

	// ISR reports interrupt context when the target can tell (e.g. a
	// read of the active-vector register). Left nil, InISR reports false.
	ISR func() bool
}

func (b *BareMetal) Init() error   { return nil }
func (b *BareMetal) Deinit() error { return nil }

func (b *BareMetal) Lock()   {}
func (b *BareMetal) Unlock() {}

func (b *BareMetal) Timestamp() uint32 {
	if b.Now != nil {
		return b.Now()
	}
	return 0
}

func (b *BareMetal) InISR() bool {
	if b.ISR != nil {
		return b.ISR()
	}
	return false
}

func (b *BareMetal) TaskName() string {
	if b.InISR() {
		return "ISR"
	}
	return "MAIN"
}
