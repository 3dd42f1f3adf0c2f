package dataprocessing

import (
	"log/slog"
	"strings"

	"sellerpulse/pkg/contracts/domain"
)

// Synonym tables map the label variants seen in the wild onto canonical
// fields. Matching is total: a label either has an entry or the row is
// ignored. Adding a synonym is a data change, not a code change.

var profitLossSynonyms = map[string]string{
	"sales":         "sales",
	"total sales":   "sales",
	"gross sales":   "sales",
	"revenue":       "sales",
	"total revenue": "sales",

	"cost of goods":      "costOfGoods",
	"cogs":               "costOfGoods",
	"cost of goods sold": "costOfGoods",
	"cost of sales":      "costOfGoods",

	"taxes":      "taxes",
	"tax":        "taxes",
	"income tax": "taxes",

	"fba fees":                   "fbaFees",
	"fba":                        "fbaFees",
	"fulfillment fees":           "fbaFees",
	"fulfillment by amazon fees": "fbaFees",

	"referral fees":        "referralFees",
	"referral":             "referralFees",
	"amazon referral fees": "referralFees",

	"storage fees":   "storageFees",
	"storage":        "storageFees",
	"warehouse fees": "storageFees",

	"ad expenses":          "adExpenses",
	"advertising":          "adExpenses",
	"ad spend":             "adExpenses",
	"advertising expenses": "adExpenses",
	"marketing":            "adExpenses",

	"refunds": "refunds",
	"refund":  "refunds",
	"returns": "refunds",

	"expenses":           "expenses",
	"total expenses":     "expenses",
	"operating expenses": "expenses",

	"net profit":       "netProfit",
	"profit":           "netProfit",
	"net income":       "netProfit",
	"profit after tax": "netProfit",

	"margin":        "margin",
	"profit margin": "margin",
	"net margin":    "margin",

	"roi":                  "roi",
	"return on investment": "roi",
}

var payoutSynonyms = map[string]string{
	"latest":   "latest",
	"current":  "latest",
	"previous": "previous",
	"last":     "previous",
	"average":  "average",
	"avg":      "average",
}

// amazonMetricOrder matters: "tacos" embeds "acos" and "profit margin"
// embeds both keywords, so the more specific keyword is tested first.
var amazonMetricOrder = []string{"tacos", "acos", "margin", "profit", "refund", "unit", "sales", "ctr"}

func profitLossField(pl *domain.ProfitLoss, canonical string) *string {
	switch canonical {
	case "sales":
		return &pl.Sales
	case "costOfGoods":
		return &pl.CostOfGoods
	case "taxes":
		return &pl.Taxes
	case "fbaFees":
		return &pl.FBAFees
	case "referralFees":
		return &pl.ReferralFees
	case "storageFees":
		return &pl.StorageFees
	case "adExpenses":
		return &pl.AdExpenses
	case "refunds":
		return &pl.Refunds
	case "expenses":
		return &pl.Expenses
	case "netProfit":
		return &pl.NetProfit
	case "margin":
		return &pl.Margin
	case "roi":
		return &pl.ROI
	}
	return nil
}

func payoutField(p *domain.Payouts, canonical string) *string {
	switch canonical {
	case "latest":
		return &p.Latest
	case "previous":
		return &p.Previous
	case "average":
		return &p.Average
	}
	return nil
}

func amazonFields(a *domain.AmazonPerformance, metric string) (value, change *string) {
	switch metric {
	case "sales":
		return &a.SalesThisMonth, &a.SalesChange
	case "profit":
		return &a.ProfitThisMonth, &a.ProfitChange
	case "margin":
		return &a.MarginThisMonth, &a.MarginChange
	case "unit":
		return &a.UnitsThisMonth, &a.UnitsChange
	case "refund":
		return &a.RefundRateThisMonth, &a.RefundRateChange
	case "acos":
		return &a.ACOSThisMonth, &a.ACOSChange
	case "tacos":
		return &a.TACOSThisMonth, &a.TACOSChange
	case "ctr":
		return &a.CTRThisMonth, &a.CTRChange
	}
	return nil, nil
}

// applyProfitLoss folds label/value rows into the profit & loss group.
// Later rows overwrite earlier ones mapping to the same field.
func applyProfitLoss(pl *domain.ProfitLoss, rows [][]string, logger *slog.Logger) {
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(row[0]))
		canonical, ok := profitLossSynonyms[label]
		if !ok {
			logger.Debug("unrecognized profit/loss label", slog.String("label", label))
			continue
		}
		*profitLossField(pl, canonical) = row[1]
	}
}

func applyPayouts(p *domain.Payouts, rows [][]string, logger *slog.Logger) {
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(row[0]))
		canonical, ok := payoutSynonyms[label]
		if !ok {
			logger.Debug("unrecognized payout label", slog.String("label", label))
			continue
		}
		*payoutField(p, canonical) = row[1]
	}
}

// applyAmazonPerformance folds label/value/change rows into the platform
// performance group. A label counts only when it names a metric keyword and
// the word "month"; the third cell, when present, is the change value.
func applyAmazonPerformance(a *domain.AmazonPerformance, rows [][]string, logger *slog.Logger) {
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(row[0]))
		if !strings.Contains(label, "month") {
			logger.Debug("unrecognized amazon performance label", slog.String("label", label))
			continue
		}
		matched := false
		for _, metric := range amazonMetricOrder {
			if !strings.Contains(label, metric) {
				continue
			}
			value, change := amazonFields(a, metric)
			*value = row[1]
			if len(row) > 2 {
				*change = row[2]
			}
			matched = true
			break
		}
		if !matched {
			logger.Debug("unrecognized amazon performance label", slog.String("label", label))
		}
	}
}

// matchProductColumn maps one lowercased header cell onto a column key, or
// "" when the header names nothing canonical. Pair metrics need "month" or
// "change" alongside the metric keyword.
func matchProductColumn(header string) string {
	switch {
	case strings.Contains(header, "asin"):
		return "asin"
	case strings.Contains(header, "title"):
		return "title"
	case strings.Contains(header, "ctr"):
		return "ctr"
	case strings.Contains(header, "cvr"):
		return "cvr"
	}

	var metric string
	switch {
	case strings.Contains(header, "tacos"):
		metric = "tacos"
	case strings.Contains(header, "acos"):
		metric = "acos"
	case strings.Contains(header, "margin"):
		metric = "margin"
	case strings.Contains(header, "profit"):
		metric = "profit"
	case strings.Contains(header, "refund"):
		metric = "refund"
	case strings.Contains(header, "unit"):
		metric = "units"
	case strings.Contains(header, "sales"):
		metric = "sales"
	case strings.Contains(header, "spend"), strings.Contains(header, "advertising"):
		metric = "ad_spend"
	default:
		return ""
	}

	switch {
	case strings.Contains(header, "month"):
		return metric + "_month"
	case strings.Contains(header, "change"):
		return metric + "_change"
	}
	return ""
}

// locateProductColumns scans a header row and records the first column index
// found for each canonical column key.
func locateProductColumns(header []string) map[string]int {
	columns := make(map[string]int)
	for i, cell := range header {
		key := matchProductColumn(strings.ToLower(strings.TrimSpace(cell)))
		if key == "" {
			continue
		}
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}
	return columns
}

// applyProductPerformance converts a product table into product records via
// discovered column indices. Rows missing an ASIN or title are dropped; a
// missing metric column leaves the record's default in place.
func applyProductPerformance(report *domain.ParsedReport, rows [][]string, logger *slog.Logger) {
	if len(rows) < 2 {
		return
	}
	columns := locateProductColumns(rows[0])
	if len(columns) == 0 {
		logger.Debug("product table header matched no known columns")
		return
	}

	for _, row := range rows[1:] {
		pick := func(key, fallback string) string {
			idx, ok := columns[key]
			if !ok || idx >= len(row) {
				return fallback
			}
			if cell := strings.TrimSpace(row[idx]); cell != "" {
				return cell
			}
			return fallback
		}

		rec := domain.NewProductRecord()
		rec.ASIN = pick("asin", "")
		rec.Title = pick("title", "")
		if rec.ASIN == "" || rec.Title == "" {
			continue
		}

		rec.SalesThisMonth = pick("sales_month", rec.SalesThisMonth)
		rec.SalesChange = pick("sales_change", rec.SalesChange)
		rec.ProfitThisMonth = pick("profit_month", rec.ProfitThisMonth)
		rec.ProfitChange = pick("profit_change", rec.ProfitChange)
		rec.MarginThisMonth = pick("margin_month", rec.MarginThisMonth)
		rec.MarginChange = pick("margin_change", rec.MarginChange)
		rec.UnitsThisMonth = pick("units_month", rec.UnitsThisMonth)
		rec.UnitsChange = pick("units_change", rec.UnitsChange)
		rec.RefundRateThisMonth = pick("refund_month", rec.RefundRateThisMonth)
		rec.RefundRateChange = pick("refund_change", rec.RefundRateChange)
		rec.AdSpendThisMonth = pick("ad_spend_month", rec.AdSpendThisMonth)
		rec.AdSpendChange = pick("ad_spend_change", rec.AdSpendChange)
		rec.ACOSThisMonth = pick("acos_month", rec.ACOSThisMonth)
		rec.ACOSChange = pick("acos_change", rec.ACOSChange)
		rec.TACOSThisMonth = pick("tacos_month", rec.TACOSThisMonth)
		rec.TACOSChange = pick("tacos_change", rec.TACOSChange)
		rec.CTR = pick("ctr", rec.CTR)
		rec.CVR = pick("cvr", rec.CVR)

		report.ProductPerformance = append(report.ProductPerformance, rec)
	}
}
