package narrative

import "finmon/internal/core"

// Rule thresholds carried over unchanged from the original analysis logic.
const (
	// Net profit above this mark reads as excellent performance.
	excellentProfitCents int64 = 5000 * 100

	// Expenses above this share of income read as relatively high.
	highExpenseRatio = 0.5
)

// summaryFallback is the rule table used when no backend is configured.
// Rules are ordered; the first match wins.
func summaryFallback(t core.Totals) string {
	net := t.NetProfit.Cents
	switch {
	case net > excellentProfitCents:
		return "Excellent performance! The company shows strong profitability."
	case net > 0:
		return "Good performance. The company is profitable."
	case net == 0:
		return "The company is currently breaking even."
	default:
		return "Performance is low. The company is currently experiencing a net loss. Review expenses."
	}
}

// summaryErrorFallback is the variant set used after a failed backend call.
// The appended marker lets operators tell runtime failures apart from a
// missing configuration in logs and output.
func summaryErrorFallback(t core.Totals) string {
	net := t.NetProfit.Cents
	switch {
	case net > excellentProfitCents:
		return "Excellent performance! (LLM error fallback)"
	case net > 0:
		return "Good performance. (LLM error fallback)"
	case net == 0:
		return "Breaking even. (LLM error fallback)"
	default:
		return "Low performance. (LLM error fallback)"
	}
}

// detailFallback builds the no-backend detailed report: a suggestion list
// keyed on the sign of the net profit, closed by a fallback disclaimer.
func detailFallback(t core.Totals) string {
	msg := "LLM analysis is not configured or available. Here are some basic suggestions based on the numbers:\n\n"
	net := t.NetProfit.Cents
	switch {
	case net < 0:
		msg += "- Urgent: Analyze all expense categories to find areas for reduction.\n"
		msg += "- Identify potential bottlenecks in income generation.\n"
		msg += "- Review pricing models or seek higher-value clients.\n"
	case net > 0:
		msg += "- Continue monitoring income and expenses.\n"
		msg += "- Investigate opportunities to increase income (e.g., new services, marketing).\n"
		msg += "- Explore ways to optimize operational costs without impacting service quality.\n"
	default:
		msg += "- Analyze whether the current income streams are sustainable.\n"
		msg += "- Look for small cost savings to push into profitability.\n"
		msg += "- Develop strategies to increase client base or service volume.\n"
	}
	msg += "\n(This is a basic fallback analysis, not from an LLM.)"
	return msg
}

// detailErrorFallback builds the report used after a failed backend call.
// A narrower rule set than the no-backend path; the loss rule is evaluated
// before the no-income rule, so a loss with zero income reads as a loss.
func detailErrorFallback(t core.Totals) string {
	msg := "Error generating detailed analysis from AI. "
	switch {
	case t.NetProfit.Cents < 0:
		msg += "The company is currently running at a loss. Focus on reducing expenses and identifying new revenue streams."
	case t.NetProfit.Cents > 0 && float64(t.Expense.Cents) > float64(t.Income.Cents)*highExpenseRatio:
		msg += "The company is profitable, but expenses seem relatively high compared to income. Look for cost-saving opportunities."
	case t.Income.Cents == 0:
		msg += "No income recorded. Strategies should focus on generating revenue."
	default:
		msg += "Financial health seems stable. Consider strategies for growth such as expanding services or client acquisition."
	}
	msg += "\n\n(Fallback analysis due to LLM error or configuration issue.)"
	return msg
}
