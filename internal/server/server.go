package server

import (
	"github.com/mark3labs/mcp-go/server"
)

// New creates a configured MCP server with both wallet tools registered.
func New(h *Handlers) *server.MCPServer {
	s := server.NewMCPServer("wallet-analyzer", "1.0.0")

	s.AddTool(ToolGetWalletBalance, h.HandleGetWalletBalance)
	s.AddTool(ToolAnalyzeWalletRisk, h.HandleAnalyzeWalletRisk)

	return s
}
