package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/ports/driving"
)

// ValidateInput is the input schema for the validate_document tool.
type ValidateInput struct {
	Document string `json:"document" jsonschema:"the outline document text to check"`
}

// ValidateOutput is the output schema for the validate_document tool.
type ValidateOutput struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// CompileInput is the input schema for the compile_document tool.
type CompileInput struct {
	Document   string `json:"document" jsonschema:"the outline document text to compile"`
	AuthorKey  string `json:"author_key,omitempty" jsonschema:"publishing author key stamped on the events"`
	ParseLevel int    `json:"parse_level,omitempty" jsonschema:"flattening depth 2-5 (default 2)"`
	Save       bool   `json:"save,omitempty" jsonschema:"save compiled events to the local archive"`
}

// CompileOutput is the output schema for the compile_document tool.
type CompileOutput struct {
	Class      string        `json:"class"`
	Count      int           `json:"count"`
	Events     []EventOutput `json:"events"`
	Collisions []string      `json:"collisions,omitempty"`
	Saved      int           `json:"saved,omitempty"`
}

// EventOutput represents a single compiled or stored event.
type EventOutput struct {
	ID         string `json:"id"`
	Kind       int    `json:"kind"`
	Coordinate string `json:"coordinate"`
	Title      string `json:"title,omitempty"`
	CreatedAt  int64  `json:"created_at"`
	Content    string `json:"content,omitempty"`
}

// ResolveInput is the input schema for the resolve_coordinate tool.
type ResolveInput struct {
	Coordinate string `json:"coordinate" jsonschema:"the coordinate to resolve, formatted kind:pubkey:slug"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_document",
		Description: "Check whether an outline document has compilable structure",
	}, s.handleValidate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compile_document",
		Description: "Compile an outline document into addressable publication events",
	}, s.handleCompile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_coordinate",
		Description: "Resolve the current stored version of an event coordinate",
	}, s.handleResolve)
}

// handleValidate handles the validate_document tool invocation.
func (s *Server) handleValidate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ValidateInput,
) (*mcp.CallToolResult, ValidateOutput, error) {
	result := s.ports.Publisher.Validate(ctx, input.Document)
	return nil, ValidateOutput{Valid: result.Valid, Reason: result.Reason}, nil
}

// handleCompile handles the compile_document tool invocation.
func (s *Server) handleCompile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompileInput,
) (*mcp.CallToolResult, CompileOutput, error) {
	result, err := s.ports.Publisher.Compile(ctx, driving.CompileRequest{
		Text:       input.Document,
		AuthorKey:  input.AuthorKey,
		ParseLevel: input.ParseLevel,
		Save:       input.Save,
	})
	if err != nil {
		return nil, CompileOutput{}, err
	}

	var events []domain.Event
	if result.Index != nil {
		events = append(events, *result.Index)
	}
	events = append(events, result.Events...)

	output := CompileOutput{
		Class:  result.Class,
		Count:  len(events),
		Events: make([]EventOutput, len(events)),
		Saved:  result.Saved,
	}
	for i := range events {
		output.Events[i] = eventOutput(&events[i], false)
	}
	for _, coord := range result.Collisions {
		output.Collisions = append(output.Collisions, coord.String())
	}

	return nil, output, nil
}

// handleResolve handles the resolve_coordinate tool invocation.
func (s *Server) handleResolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, EventOutput, error) {
	coord, err := domain.ParseCoordinate(input.Coordinate)
	if err != nil {
		return nil, EventOutput{}, err
	}

	ev, err := s.ports.Publisher.Resolve(ctx, coord)
	if err != nil {
		return nil, EventOutput{}, err
	}

	return nil, eventOutput(ev, true), nil
}

// eventOutput converts a domain event to its tool output form.
func eventOutput(ev *domain.Event, withContent bool) EventOutput {
	coord, _ := domain.CoordinateOf(ev)
	out := EventOutput{
		ID:         ev.ID,
		Kind:       ev.Kind,
		Coordinate: coord.String(),
		Title:      ev.Title(),
		CreatedAt:  ev.CreatedAt,
	}
	if withContent {
		out.Content = ev.Content
	}
	return out
}
