// cmd/scrapebadger-mcp/main.go
package main

import (
	cmd "github.com/scrapebadger/scrapebadger-mcp/internal/cli"
)

// main starts the scrapebadger-mcp CLI by delegating to the cobra root
// command. Running with no subcommand serves MCP on stdio.
func main() {
	cmd.Execute()
}
