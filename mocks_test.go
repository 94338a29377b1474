package main

import (
	"context"

	"github.com/replicate/replicate-go"
)

// mock model runner for testing the gateway and the tool surface
type mockRunner struct {
	output replicate.PredictionOutput
	err    error

	called    bool
	lastModel string
	lastInput replicate.PredictionInput
}

func (m *mockRunner) Run(
	_ context.Context,
	identifier string,
	input replicate.PredictionInput,
	_ *replicate.Webhook,
) (replicate.PredictionOutput, error) {
	m.called = true
	m.lastModel = identifier
	m.lastInput = input

	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}
