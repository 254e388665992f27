package review

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/vire-review/internal/common"
	"github.com/bobmcallan/vire-review/internal/models"
)

const rule = "============================================================"

// RenderReport formats an insight as the fixed plain-text review report.
func RenderReport(in *models.Insight) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("--- Stock Review: %s ---\n", in.Symbol))
	sb.WriteString("[Position]\n")
	sb.WriteString(fmt.Sprintf("- Average cost: %s\n", common.FormatMoney(in.Cost)))
	sb.WriteString(fmt.Sprintf("- Current price: %s\n", common.FormatMoney(in.CurrentPrice)))
	sb.WriteString(fmt.Sprintf("- Shares held: %d\n", in.Shares))
	sb.WriteString(fmt.Sprintf("- PnL: %s (%s)\n", common.FormatMoney(in.TotalPnL), common.FormatPct(in.PnLPercentage)))
	sb.WriteString("\n")
	sb.WriteString("[Advice Review]\n")
	sb.WriteString(fmt.Sprintf("- Historical advice: %s (target: %s)\n", in.Advice, common.FormatMoney(in.Target)))
	if in.TargetProgressPct != nil {
		sb.WriteString(fmt.Sprintf("- Target gap: %s (%s of target)\n", common.FormatSignedMoney(in.TargetGap), common.FormatPct(*in.TargetProgressPct)))
	} else {
		sb.WriteString(fmt.Sprintf("- Target gap: %s\n", common.FormatSignedMoney(in.TargetGap)))
	}
	sb.WriteString(fmt.Sprintf("- Verdict: %s\n", in.Verdict))
	sb.WriteString("---------------------------")

	return sb.String()
}

// RenderPortfolioSummary formats every symbol's report followed by the
// aggregate totals and the overall outlook.
func RenderPortfolioSummary(s *models.PortfolioSummary) string {
	var sb strings.Builder

	sb.WriteString("=== Portfolio Review ===\n\n")

	for _, r := range s.Reviews {
		if r.Err != nil {
			sb.WriteString(fmt.Sprintf("Error reviewing %s: %v\n", r.Symbol, r.Err))
		} else {
			sb.WriteString(r.Report)
			sb.WriteString("\n")
		}
		sb.WriteString("\n" + rule + "\n\n")
	}

	sb.WriteString("[Portfolio Summary]\n")
	sb.WriteString(fmt.Sprintf("- Total investment: %s\n", common.FormatMoney(s.TotalInvestment)))
	sb.WriteString(fmt.Sprintf("- Total PnL: %s\n", common.FormatMoney(s.TotalPnL)))
	if pct, ok := s.ReturnPct(); ok {
		sb.WriteString(fmt.Sprintf("- Total return: %s\n", common.FormatPct(pct)))
	}

	sb.WriteString("\n[Outlook]\n")
	switch s.Outlook() {
	case models.OutlookHold:
		sb.WriteString("✅ The portfolio is performing well overall; keep holding the profitable positions.\n")
	default:
		sb.WriteString("⚠️ The portfolio is down overall; reassess the investment strategy.\n")
	}

	sb.WriteString("\n=== Review Complete ===\n")
	return sb.String()
}
