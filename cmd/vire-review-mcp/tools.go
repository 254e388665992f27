package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools registers all MCP tools on the server, wiring each to a handler
// backed by the review service.
func registerTools(s *server.MCPServer, h *toolHandlers) {
	s.AddTool(createGetVersionTool(), h.handleGetVersion)
	s.AddTool(createReviewStockPositionTool(), h.handleReviewStockPosition)
	s.AddTool(createReviewStockPositionStructuredTool(), h.handleReviewStockPositionStructured)
	s.AddTool(createReviewPortfolioTool(), h.handleReviewPortfolio)
}

func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the stock reviewer server version. Use this to verify connectivity."),
	)
}

func createReviewStockPositionTool() mcp.Tool {
	return mcp.NewTool("review_stock_position",
		mcp.WithDescription("Review the held position for a stock symbol. Returns a text report with profit/loss and an assessment of whether the historical advice held up."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol (e.g., 'AAPL'). Case-insensitive.")),
	)
}

func createReviewStockPositionStructuredTool() mcp.Tool {
	return mcp.NewTool("review_stock_position_structured",
		mcp.WithDescription("Review the held position for a stock symbol and return the metrics as JSON: cost, shares, current_price, profit_per_share, total_pnl, pnl_percentage, target_gap, target_progress_pct, status, verdict and the formatted report."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol (e.g., 'AAPL'). Case-insensitive.")),
	)
}

func createReviewPortfolioTool() mcp.Tool {
	return mcp.NewTool("review_portfolio",
		mcp.WithDescription("Review several positions at once. Prints each symbol's report, then total investment, total PnL, total return and an overall outlook. Symbols that fail are reported and skipped."),
		mcp.WithArray("symbols", mcp.WithStringItems(), mcp.Description("Symbols to review (default: configured portfolio, else every held position)")),
	)
}
