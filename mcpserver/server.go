// Package mcpserver exposes the report pipeline as an MCP (Model Context
// Protocol) server, so MCP clients can request reports as a tool call.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	ai "github.com/mwhitby/boardroom"
	"github.com/mwhitby/boardroom/graph"
	"github.com/mwhitby/boardroom/report"
)

// ToolName is the MCP tool exposed by this server.
const ToolName = "generate_report"

const toolDescription = "Generate a structured report on a topic using a multi-agent research and writing pipeline. Returns the compiled report text."

var toolSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "task": {
      "type": "string",
      "description": "The topic or task to research and report on"
    }
  },
  "required": ["task"]
}`)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
	backend string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// WithBackendName sets the backend name credited in generated reports.
func WithBackendName(backend string) ServerOption {
	return func(c *serverConfig) {
		c.backend = backend
	}
}

// NewServer creates an MCP server exposing the generate_report tool backed
// by the given generator.
func NewServer(gen ai.Generator, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "boardroom-mcp-server",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	tool := mcp.NewToolWithRawSchema(ToolName, toolDescription, toolSchema)
	s.AddTool(tool, reportHandler(gen, cfg.backend))

	return s
}

// ServeStdio starts an MCP server that communicates over stdin/stdout.
// This is the standard transport for MCP servers invoked as subprocesses.
func ServeStdio(gen ai.Generator, opts ...ServerOption) error {
	s := NewServer(gen, opts...)
	return server.ServeStdio(s)
}

type reportArgs struct {
	Task string `json:"task"`
}

func reportHandler(gen ai.Generator, backend string) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args reportArgs
		if req.Params.Arguments != nil {
			data, err := json.Marshal(req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to marshal arguments: %v", err)), nil
			}
			if err := json.Unmarshal(data, &args); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
			}
		}
		if args.Task == "" {
			return mcp.NewToolResultError("task must not be empty"), nil
		}

		var opts []report.Option
		if backend != "" {
			opts = append(opts, report.WithBackendName(backend))
		}
		engine, err := report.New(gen, opts...).Engine()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := engine.Run(ctx, args.Task)
		if err != nil {
			return mcp.NewToolResultError(describeFailure(err)), nil
		}

		return mcp.NewToolResultText(result.State.FinalReport), nil
	}
}

// describeFailure names the error kind without leaking partial state.
func describeFailure(err error) string {
	var genErr *graph.GenerationError
	var routeErr *graph.RoutingError
	switch {
	case errors.As(err, &genErr):
		return fmt.Sprintf("generation failed at worker %s", genErr.Worker)
	case errors.As(err, &routeErr):
		return "routing failure: " + err.Error()
	default:
		return "report generation failed: " + err.Error()
	}
}
