// Package provider holds the gateways to external text generation services.
// A gateway makes exactly one call per Generate and reports the outcome as a Result;
// it never retries and never returns a Go error.
package provider

import (
	"context"
	"fmt"
	"strings"
)

// ResultKind tags the variant held by a Result
type ResultKind int

const (
	// KindText carries the raw generated text
	KindText ResultKind = iota
	// KindBlocked means the provider refused the prompt or output on content-safety grounds
	KindBlocked
	// KindEmpty means the provider answered with no text at all
	KindEmpty
	// KindUnavailable covers network, auth, quota and client errors
	KindUnavailable
)

func (k ResultKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBlocked:
		return "blocked"
	case KindEmpty:
		return "empty"
	case KindUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is the sum type returned by a Gateway: Text | Blocked | Empty | Unavailable.
// Text is only meaningful for KindText, Reason for KindBlocked and Err for KindUnavailable.
type Result struct {
	Kind   ResultKind
	Text   string
	Reason string
	Err    error
}

// Text builds a text result. Whitespace-only output is reported as Empty.
func Text(s string) Result {
	if strings.TrimSpace(s) == "" {
		return Empty()
	}
	return Result{Kind: KindText, Text: s}
}

func Blocked(reason string) Result {
	return Result{Kind: KindBlocked, Reason: reason}
}

func Empty() Result {
	return Result{Kind: KindEmpty}
}

func Unavailable(err error) Result {
	return Result{Kind: KindUnavailable, Err: err}
}

// OK reports whether the result carries text
func (r Result) OK() bool {
	return r.Kind == KindText
}

// Params are the generation settings sent with a prompt
type Params struct {
	Temperature     float64
	TopP            float64
	MaxOutputTokens int
}

// QuestionParams favour variety for question writing.
var QuestionParams = Params{
	Temperature:     0.7,
	TopP:            0.95,
	MaxOutputTokens: 8192,
}

// EvaluationParams keep scoring consistent between similar answers.
var EvaluationParams = Params{
	Temperature:     0.3,
	TopP:            0.9,
	MaxOutputTokens: 2048,
}

// Gateway sends one prompt to a text generation provider
type Gateway interface {
	Generate(ctx context.Context, prompt string, params Params) Result
	// Name identifies the provider and model in logs
	Name() string
}
