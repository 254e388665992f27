package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bobmcallan/vire-review/internal/common"
	"github.com/bobmcallan/vire-review/internal/review"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// toolHandlers binds MCP tool calls to the review service.
type toolHandlers struct {
	svc            *review.Service
	logger         *common.Logger
	defaultSymbols []string
}

func newToolHandlers(svc *review.Service, logger *common.Logger, defaultSymbols []string) *toolHandlers {
	return &toolHandlers{
		svc:            svc,
		logger:         logger,
		defaultSymbols: defaultSymbols,
	}
}

// callLogger tags a logger with a fresh correlation ID for one tool call.
func (h *toolHandlers) callLogger(tool string) *common.Logger {
	l := h.logger.WithCorrelationId(uuid.New().String())
	l.Debug().Str("tool", tool).Msg("MCP tool call")
	return l
}

func requireSymbol(request mcp.CallToolRequest) (string, bool) {
	symbol, err := request.RequireString("symbol")
	if err != nil || review.NormalizeSymbol(symbol) == "" {
		return "", false
	}
	return symbol, true
}

// --- Handlers ---

func (h *toolHandlers) handleGetVersion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := fmt.Sprintf("Stock Reviewer MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
		common.Version, common.Build, common.GitCommit)
	return textResult(result), nil
}

func (h *toolHandlers) handleReviewStockPosition(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := h.callLogger("review_stock_position")

	symbol, ok := requireSymbol(request)
	if !ok {
		return errorResult("Error: symbol parameter is required"), nil
	}

	report, err := h.svc.ReviewText(ctx, symbol)
	if err != nil {
		logger.Warn().Err(err).Str("symbol", symbol).Msg("Review failed")
		return errorResult(fmt.Sprintf("Error: %v", err)), nil
	}

	return textResult(report), nil
}

func (h *toolHandlers) handleReviewStockPositionStructured(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := h.callLogger("review_stock_position_structured")

	symbol, ok := requireSymbol(request)
	if !ok {
		return errorResult("Error: symbol parameter is required"), nil
	}

	result, err := h.svc.ReviewStructured(ctx, symbol)
	if err != nil {
		logger.Warn().Err(err).Str("symbol", symbol).Msg("Structured review failed")
		return errorResult(fmt.Sprintf("Error: %v", err)), nil
	}

	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("Error encoding result: %v", err)), nil
	}

	return &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.NewTextContent(string(body))},
		StructuredContent: result,
	}, nil
}

func (h *toolHandlers) handleReviewPortfolio(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := h.callLogger("review_portfolio")

	symbols := request.GetStringSlice("symbols", nil)
	if len(symbols) == 0 {
		symbols = h.defaultSymbols
	}
	if len(symbols) == 0 {
		symbols = h.svc.Symbols(ctx)
	}
	if len(symbols) == 0 {
		return errorResult("Error: no symbols to review"), nil
	}

	summary := h.svc.AnalyzePortfolio(ctx, symbols)
	logger.Info().
		Int("symbols", len(symbols)).
		Int("failed", len(summary.Failed())).
		Msg("Portfolio reviewed")

	return textResult(review.RenderPortfolioSummary(summary)), nil
}
