package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bobmcallan/vire-review/internal/common"
	"github.com/bobmcallan/vire-review/internal/review"
	"github.com/bobmcallan/vire-review/internal/storage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run reviews the requested portfolio and prints the summary to stdout.
// Logs go to stderr. Per-symbol failures are part of the report, not the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vire-review", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "vire-review.toml", "Path to config file")
	symbolsFlag := fs.String("symbols", "", "Comma-separated symbols to review (default: portfolio.symbols)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := common.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}

	logger := common.NewLoggerWithOutput(cfg.Logging.Level, stderr)

	store, err := storage.NewDataStore(cfg.Storage, logger)
	if err != nil {
		fmt.Fprintf(stderr, "storage error: %v\n", err)
		return 1
	}

	symbols := cfg.Portfolio.Symbols
	if *symbolsFlag != "" {
		symbols = common.SplitSymbols(*symbolsFlag)
	}

	svc := review.NewService(store, logger)
	summary := svc.AnalyzePortfolio(context.Background(), symbols)

	fmt.Fprint(stdout, review.RenderPortfolioSummary(summary))
	return 0
}
