package form

// State is the form lifecycle. It is one of Idle, Submitting, Success or
// Failed.
type State interface {
	isState()
}

// Idle accepts edits and a submit.
type Idle struct{}

// Submitting means one request is in flight.
type Submitting struct{}

// Success holds the confirmation shown until the form auto-closes.
type Success struct {
	Message string
}

// Failed holds the message shown to the visitor. The fields are kept.
type Failed struct {
	Message string
}

func (Idle) isState()       {}
func (Submitting) isState() {}
func (Success) isState()    {}
func (Failed) isState()     {}

// StateName returns a short label for logs and tests.
func StateName(s State) string {
	switch s.(type) {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "error"
	default:
		return "unknown"
	}
}
