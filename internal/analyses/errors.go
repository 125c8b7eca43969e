package analyses

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("not found")

// Error kinds for pipeline failures.
const (
	ErrorCodeNotFound             = "NOT_FOUND"
	ErrorCodeConfigurationMissing = "CONFIGURATION_MISSING"
	ErrorCodeEmptyResponse        = "EMPTY_RESPONSE"
	ErrorCodeMalformedResponse    = "MALFORMED_RESPONSE"
	ErrorCodeInvalidSchema        = "INVALID_SCHEMA"
	ErrorCodePersistenceFailure   = "PERSISTENCE_FAILURE"
)

// PipelineError describes a failed analysis run. Raw carries the model's
// output for diagnostics on decode and validation failures; Fields lists the
// violated field paths on validation failures.
type PipelineError struct {
	Code    string
	Message string
	Raw     string
	Fields  []string
	Err     error
}

func (e *PipelineError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Code, e.Message)
	if len(e.Fields) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Fields, "; "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *PipelineError) Unwrap() error { return e.Err }

func pipelineErr(code, message string, cause error) *PipelineError {
	return &PipelineError{Code: code, Message: message, Err: cause}
}
