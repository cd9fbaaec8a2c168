package server

import (
	"context"
	"encoding/json"
	"time"

	"wallet-analyzer/internal/balance"
	"wallet-analyzer/internal/interfaces"
	"wallet-analyzer/internal/models"
	"wallet-analyzer/internal/risk"

	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers binds the MCP tools to the balance and risk services. Every
// handler-level failure is returned in-band as {"error": "..."} so the
// server stays available for subsequent calls; protocol errors are reserved
// for missing arguments.
type Handlers struct {
	balances *balance.Service
	risks    *risk.Analyzer
	emitter  interfaces.EventEmitter
}

func NewHandlers(balances *balance.Service, risks *risk.Analyzer, emitter interfaces.EventEmitter) *Handlers {
	return &Handlers{
		balances: balances,
		risks:    risks,
		emitter:  emitter,
	}
}

func (h *Handlers) HandleGetWalletBalance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	chain, err := request.RequireString("chain")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.balances.GetBalance(ctx, address, chain)
	h.emit("get_wallet_balance", address, chain, result.Balance, err)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

func (h *Handlers) HandleAnalyzeWalletRisk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := request.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	chain, err := request.RequireString("chain")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.risks.Analyze(ctx, address, chain)
	h.emit("analyze_wallet_risk", address, chain, result.Balance, err)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

func (h *Handlers) emit(tool, address, chain string, bal float64, err error) {
	if h.emitter == nil {
		return
	}

	event := models.QueryEvent{
		Tool:      tool,
		Address:   address,
		Chain:     chain,
		Balance:   bal,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		event.Error = err.Error()
	}
	_ = h.emitter.EmitEvent(event)
}

// errorResult converts a handler error into the in-band error object.
func errorResult(err error) (*mcp.CallToolResult, error) {
	payload, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return errorResult(err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
