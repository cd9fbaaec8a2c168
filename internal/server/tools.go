package server

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the wallet analyzer MCP server.
// Descriptions are what the agent reads to decide which tool to use.

var ToolGetWalletBalance = mcp.NewTool("get_wallet_balance",
	mcp.WithDescription(
		"Get the native cryptocurrency balance of a wallet address. "+
			"Supported chains: ethereum (eth), polygon (matic), arbitrum, solana."),
	mcp.WithString("address",
		mcp.Required(),
		mcp.Description("The wallet address to look up (e.g. '0x1234...' or a base58 Solana address)")),
	mcp.WithString("chain",
		mcp.Required(),
		mcp.Description("Chain identifier: 'eth', 'ethereum', 'polygon', 'matic', 'arbitrum' or 'solana'")),
)

var ToolAnalyzeWalletRisk = mcp.NewTool("analyze_wallet_risk",
	mcp.WithDescription(
		"AI-powered wallet risk assessment using on-chain data. "+
			"Fetches the wallet's balance and classifies its risk profile, "+
			"returning the highest-confidence label with its score."),
	mcp.WithString("address",
		mcp.Required(),
		mcp.Description("The wallet address to assess")),
	mcp.WithString("chain",
		mcp.Required(),
		mcp.Description("Chain identifier: 'eth', 'ethereum', 'polygon', 'matic', 'arbitrum' or 'solana'")),
)
