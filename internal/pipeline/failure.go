package pipeline

import (
	"errors"
	"fmt"

	"interview-ai/internal/adapter/provider"
)

// FailureKind classifies why a request ended in fallback content
type FailureKind int

const (
	FailureNone FailureKind = iota
	ProviderBlocked
	ProviderEmpty
	ProviderUnavailable
	ExtractionFailed
	ParseFailed
	// ValidationFailed is only raised for question batches
	ValidationFailed
	// NotConfigured means no provider credential was configured at all
	NotConfigured
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case ProviderBlocked:
		return "provider_blocked"
	case ProviderEmpty:
		return "provider_empty"
	case ProviderUnavailable:
		return "provider_unavailable"
	case ExtractionFailed:
		return "extraction_failed"
	case ParseFailed:
		return "parse_failed"
	case ValidationFailed:
		return "validation_failed"
	case NotConfigured:
		return "not_configured"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// MarshalText lets the kind appear by name in JSON output
func (k FailureKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

var errNoProvider = errors.New("no LLM provider configured")

// StageError is the error value passed between stages
type StageError struct {
	Kind FailureKind
	Err  error
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErrorf(kind FailureKind, format string, args ...any) *StageError {
	return &StageError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the FailureKind carried by err, or FailureNone.
func KindOf(err error) FailureKind {
	var se *StageError
	if errors.As(err, &se) {
		return se.Kind
	}
	if err != nil {
		return ProviderUnavailable
	}
	return FailureNone
}

// failureFromResult converts a non-text gateway result into a StageError
func failureFromResult(r provider.Result) *StageError {
	switch r.Kind {
	case provider.KindBlocked:
		return stageErrorf(ProviderBlocked, "response blocked: %s", r.Reason)
	case provider.KindEmpty:
		return &StageError{Kind: ProviderEmpty, Err: errors.New("empty response from provider")}
	case provider.KindUnavailable:
		err := r.Err
		if err == nil {
			err = errors.New("provider unavailable")
		}
		return &StageError{Kind: ProviderUnavailable, Err: err}
	default:
		return nil
	}
}

// State is the terminal state of one pipeline request
type State int

const (
	StateDelivered State = iota
	StateFallbackDelivered
)

func (s State) String() string {
	if s == StateFallbackDelivered {
		return "fallback_delivered"
	}
	return "delivered"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome describes how a request terminated. It is diagnostic only.
type Outcome struct {
	State   State       `json:"state"`
	Failure FailureKind `json:"failure"`
	Err     error       `json:"-"`
	// Repairs lists the evaluation fields that were substituted or padded
	Repairs []string `json:"repairs,omitempty"`
}

// Fallback reports whether fallback content was delivered
func (o Outcome) Fallback() bool {
	return o.State == StateFallbackDelivered
}

func delivered(repairs []string) Outcome {
	return Outcome{State: StateDelivered, Repairs: repairs}
}

func fellBack(err error) Outcome {
	return Outcome{State: StateFallbackDelivered, Failure: KindOf(err), Err: err}
}
