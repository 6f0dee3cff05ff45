// Command mcp serves the report pipeline as an MCP server over stdio.
//
// MCP clients discover a single generate_report tool that runs the full
// research and writing pipeline and returns the compiled report.
//
// Configuration for Claude Desktop (claude_desktop_config.json):
//
//	{
//	    "mcpServers": {
//	        "boardroom": {
//	            "command": "go",
//	            "args": ["run", "./cmd/mcp"],
//	            "cwd": "/path/to/boardroom"
//	        }
//	    }
//	}
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/mwhitby/boardroom/client"
	"github.com/mwhitby/boardroom/mcpserver"
)

func main() {
	godotenv.Load()

	c, err := client.New(context.Background(), client.FromEnv())
	if err != nil {
		log.Fatal(err)
	}

	if err := mcpserver.ServeStdio(c,
		mcpserver.WithName("boardroom"),
		mcpserver.WithVersion("1.0.0"),
		mcpserver.WithBackendName(c.Name()),
	); err != nil {
		log.Fatal(err)
	}
}
