package mcp

import (
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Publisher drives validation, compilation, and the event archive.
	Publisher driving.Publisher
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Publisher == nil {
		return ErrMissingPublisher
	}
	return nil
}
