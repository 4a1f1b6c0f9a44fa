// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Alexandria. It lets AI assistants validate and compile outline
// documents and inspect the local event archive.
package mcp

import "errors"

// ErrMissingPublisher is returned when the publisher service is not provided.
var ErrMissingPublisher = errors.New("mcp: publisher service is required")
