package form

import "github.com/heartmarshall/batch-dashboard/internal/client/batch"

// FieldErrors maps a settings field name to its message.
type FieldErrors map[string]string

// State is one of Idle, Submitting, SuccessDisplayed or ErrorDisplayed.
type State interface {
	state()
}

// Idle accepts input. FieldErrors holds problems from the last local check.
type Idle struct {
	FieldErrors FieldErrors
}

// Submitting waits for the server.
type Submitting struct{}

// SuccessDisplayed shows the success banner until it is cleared.
type SuccessDisplayed struct {
	Message string
	Result  *batch.StartResult
}

// ErrorDisplayed shows the error banner. FieldErrors is set when the server
// reported per-field problems.
type ErrorDisplayed struct {
	Message     string
	FieldErrors FieldErrors
}

func (Idle) state()             {}
func (Submitting) state()       {}
func (SuccessDisplayed) state() {}
func (ErrorDisplayed) state()   {}
