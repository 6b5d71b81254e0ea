package lib

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// StepError carries the name of the workflow step that failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("[%s] %v", e.Step, e.Err)
	}
	return e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// WithStep tags an error with the step it happened in.
func WithStep(step string, err error) error {
	if err == nil {
		return nil
	}
	return &StepError{
		Step: step,
		Err:  err,
	}
}

// GetStep extracts the step name from an error chain.
func GetStep(err error) string {
	if err == nil {
		return ""
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step
	}
	return ""
}

// ServerError is a non-2xx answer from the translator service. The body
// fields are best-effort: the service may answer with any subset of them,
// or with something that is not JSON at all.
type ServerError struct {
	StatusCode int
	Detail     string
	Reason     string // the "error" field
	Message    string
	FrameIndex *int // frame_index_in_valid_list, video submissions only
}

// Error renders the status code followed by whatever structured detail the
// server provided, in a fixed precedence order. With no usable fields it
// falls back to the standard status text.
func (e *ServerError) Error() string {
	parts := make([]string, 0, 4)
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.FrameIndex != nil {
		parts = append(parts, fmt.Sprintf("Frame index: %d", *e.FrameIndex))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, strings.Join(parts, "; "))
}
