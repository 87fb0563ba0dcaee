package submission

// Status is the state of a submission session. The concrete types are the
// only implementations:
//
//	Idle -> Submitting -> Succeeded | Failed
//	Succeeded | Failed -> Idle   (Reset or Edit)
//	Failed -> Submitting          (resubmit)
type Status interface {
	status()
	String() string
}

type Idle struct{}

type Submitting struct{}

type Succeeded struct{}

// Failed carries the user-facing message and the underlying cause, which is
// for logs only.
type Failed struct {
	Message string
	Cause   error
}

func (Idle) status()       {}
func (Submitting) status() {}
func (Succeeded) status()  {}
func (Failed) status()     {}

func (Idle) String() string       { return "idle" }
func (Submitting) String() string { return "submitting" }
func (Succeeded) String() string  { return "success" }
func (Failed) String() string     { return "error" }

// GenericFailureMessage is the only failure text a user ever sees.
const GenericFailureMessage = "Something went wrong. Please try again later."
