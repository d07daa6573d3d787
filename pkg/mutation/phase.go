package mutation

// Phase identifies which scheduled callback, if any, a scheduler is
// currently executing. It exists purely as a reentrancy guard: a nested
// call requesting the phase that is already active is refused.
type Phase int

const (
	// PhaseIdle means no scheduled callback is executing.
	PhaseIdle Phase = iota
	// PhaseRead means a read-phase callback is executing.
	PhaseRead
	// PhaseWrite means a write-phase callback or flush is executing.
	PhaseWrite
)

func (p Phase) String() string {
	switch p {
	case PhaseRead:
		return "read"
	case PhaseWrite:
		return "write"
	default:
		return "idle"
	}
}
