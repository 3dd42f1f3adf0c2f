package dataprocessing

import "strings"

// ReportGroup identifies which canonical group a tab or section feeds.
type ReportGroup int

const (
	GroupNone ReportGroup = iota
	GroupProfitLoss
	GroupProductPerformance
	GroupPayouts
	GroupAmazonPerformance
)

func (g ReportGroup) String() string {
	switch g {
	case GroupProfitLoss:
		return "profit_loss"
	case GroupProductPerformance:
		return "product_performance"
	case GroupPayouts:
		return "payouts"
	case GroupAmazonPerformance:
		return "amazon_performance"
	default:
		return "none"
	}
}

// Name-based classification rules, evaluated in priority order. "payout"
// must run before "amazon"/"performance" so "Payout Performance" tabs land
// in the payouts group.
var nameRules = []struct {
	keywords []string
	group    ReportGroup
}{
	{[]string{"profit", "loss"}, GroupProfitLoss},
	{[]string{"product", "asin"}, GroupProductPerformance},
	{[]string{"payout"}, GroupPayouts},
	{[]string{"amazon", "performance"}, GroupAmazonPerformance},
}

// Header-vocabulary rules for tabs whose names say nothing useful.
var headerRules = []struct {
	keywords []string
	group    ReportGroup
}{
	{[]string{"asin", "product", "title"}, GroupProductPerformance},
	{[]string{"profit", "loss", "sales", "expense"}, GroupProfitLoss},
	{[]string{"payout", "payment"}, GroupPayouts},
	{[]string{"amazon", "performance", "acos", "tacos"}, GroupAmazonPerformance},
}

// Classify decides which canonical group a tab or section feeds, first from
// its name and, when that is uninformative, from the vocabulary of its first
// row. GroupNone means the unit contributes nothing.
func Classify(name string, rows [][]string) ReportGroup {
	lower := strings.ToLower(name)
	for _, rule := range nameRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.group
			}
		}
	}

	if len(rows) == 0 {
		return GroupNone
	}
	header := strings.ToLower(strings.Join(rows[0], " "))
	for _, rule := range headerRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(header, keyword) {
				return rule.group
			}
		}
	}
	return GroupNone
}
