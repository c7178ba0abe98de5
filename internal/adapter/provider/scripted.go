package provider

import (
	"context"
	"errors"
	"sync"
)

// ScriptedGateway is a deterministic Gateway for tests.
// It returns canned results in FIFO order and records every prompt.
type ScriptedGateway struct {
	mu      sync.Mutex
	results []Result
	Prompts []string
	Params  []Params
}

// NewScriptedGateway creates a ScriptedGateway with the given canned results
func NewScriptedGateway(results ...Result) *ScriptedGateway {
	return &ScriptedGateway{results: results}
}

// Generate returns the next canned result, or Unavailable once the script is exhausted.
func (s *ScriptedGateway) Generate(_ context.Context, prompt string, params Params) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Prompts = append(s.Prompts, prompt)
	s.Params = append(s.Params, params)

	if len(s.results) == 0 {
		return Unavailable(errors.New("scripted gateway: no results left"))
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r
}

func (s *ScriptedGateway) Name() string {
	return "scripted"
}

// CallCount returns the number of Generate calls made
func (s *ScriptedGateway) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Prompts)
}
