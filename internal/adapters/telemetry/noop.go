// Package telemetry provides the default no-op telemetry adapter.
package telemetry

import (
	"context"

	"github.com/MarcelBraghetto/forge/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry. Raw tool output is the
// primary progress surface, so recording is opt-in.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that does nothing.
func (t *NoOp) Record(_ context.Context, _ string) ports.Vertex {
	return &noOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error {
	return nil
}

type noOpVertex struct{}

func (v *noOpVertex) Complete(_ error) {}

func (v *noOpVertex) Cached() {}
