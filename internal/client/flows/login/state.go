package login

// Status is the phase of the login form.
type Status int

const (
	Idle Status = iota
	Submitting
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the form. Message is set only for Failure.
type State struct {
	Status  Status
	Message string
}
