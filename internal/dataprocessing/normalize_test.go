package dataprocessing

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerpulse/pkg/contracts/domain"
)

func TestApplyProfitLossSynonymEquivalence(t *testing.T) {
	// Any label in the same synonym class must land in the same field.
	for _, label := range []string{"Sales", "Total Sales", "Gross Sales", "Revenue", "Total Revenue"} {
		t.Run(label, func(t *testing.T) {
			report := domain.NewParsedReport()
			applyProfitLoss(&report.ProfitLoss, [][]string{{label, "$123.45"}}, slog.Default())
			assert.Equal(t, "$123.45", report.ProfitLoss.Sales)
		})
	}
}

func TestApplyProfitLossLastWriteWins(t *testing.T) {
	report := domain.NewParsedReport()
	rows := [][]string{
		{"Sales", "100"},
		{"Revenue", "200"},
	}
	applyProfitLoss(&report.ProfitLoss, rows, slog.Default())
	assert.Equal(t, "200", report.ProfitLoss.Sales)
}

func TestApplyProfitLossRowRules(t *testing.T) {
	report := domain.NewParsedReport()
	rows := [][]string{
		{"COGS", "$40"},
		{"short row"},
		{"Some Unknown Label", "$99"},
		{"ROI", "35%"},
		{"  Net Profit  ", "$1,000.50"},
	}
	applyProfitLoss(&report.ProfitLoss, rows, slog.Default())

	assert.Equal(t, "$40", report.ProfitLoss.CostOfGoods)
	assert.Equal(t, "35%", report.ProfitLoss.ROI)
	assert.Equal(t, "$1,000.50", report.ProfitLoss.NetProfit)
	// untouched fields keep their defaults
	assert.Equal(t, domain.NotAvailable, report.ProfitLoss.Taxes)
}

func TestApplyPayouts(t *testing.T) {
	report := domain.NewParsedReport()
	rows := [][]string{
		{"Current", "$500"},
		{"Last", "$450"},
		{"Avg", "$475"},
	}
	applyPayouts(&report.Payouts, rows, slog.Default())

	assert.Equal(t, "$500", report.Payouts.Latest)
	assert.Equal(t, "$450", report.Payouts.Previous)
	assert.Equal(t, "$475", report.Payouts.Average)
}

func TestApplyAmazonPerformance(t *testing.T) {
	report := domain.NewParsedReport()
	rows := [][]string{
		{"Sales This Month", "$10,000", "+5%"},
		{"TACOS this month", "8%", "-1%"},
		{"ACOS this month", "15%", "+2%"},
		{"Refund rate this month", "1.2%"},
		{"Total Sales", "$99"}, // no "month", ignored
	}
	applyAmazonPerformance(&report.AmazonPerformance, rows, slog.Default())

	assert.Equal(t, "$10,000", report.AmazonPerformance.SalesThisMonth)
	assert.Equal(t, "+5%", report.AmazonPerformance.SalesChange)
	assert.Equal(t, "8%", report.AmazonPerformance.TACOSThisMonth)
	assert.Equal(t, "-1%", report.AmazonPerformance.TACOSChange)
	assert.Equal(t, "15%", report.AmazonPerformance.ACOSThisMonth)
	assert.Equal(t, "1.2%", report.AmazonPerformance.RefundRateThisMonth)
	assert.Equal(t, "", report.AmazonPerformance.RefundRateChange)
	assert.Equal(t, domain.NotAvailable, report.AmazonPerformance.ProfitThisMonth)
}

func TestMatchProductColumn(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"asin", "asin"},
		{"product title", "title"},
		{"sales this month", "sales_month"},
		{"sales change", "sales_change"},
		{"tacos this month", "tacos_month"},
		{"acos change", "acos_change"},
		{"profit margin this month", "margin_month"},
		{"units this month", "units_month"},
		{"refund rate change", "refund_change"},
		{"ad spend this month", "ad_spend_month"},
		{"ctr", "ctr"},
		{"cvr", "cvr"},
		{"sales", ""}, // pair metric without month/change qualifier
		{"anything else", ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, matchProductColumn(tt.header))
		})
	}
}

func TestApplyProductPerformance(t *testing.T) {
	report := domain.NewParsedReport()
	rows := [][]string{
		{"ASIN", "Title", "Sales This Month", "Sales Change", "ACOS This Month", "CTR"},
		{"B001", "Garlic Press", "$100", "+5%", "12%", "0.4%"},
		{"B002", "", "$200", "-2%", "9%", "0.5%"},       // missing title, excluded
		{"", "Orphan Gadget", "$300", "+1%", "7%", ""},  // missing asin, excluded
		{"B003", "Peeler", "$50"},
	}
	applyProductPerformance(report, rows, slog.Default())

	require.Len(t, report.ProductPerformance, 2)

	first := report.ProductPerformance[0]
	assert.Equal(t, "B001", first.ASIN)
	assert.Equal(t, "Garlic Press", first.Title)
	assert.Equal(t, "$100", first.SalesThisMonth)
	assert.Equal(t, "+5%", first.SalesChange)
	assert.Equal(t, "12%", first.ACOSThisMonth)
	assert.Equal(t, "0.4%", first.CTR)
	// columns the table never had keep their defaults
	assert.Equal(t, domain.NotAvailable, first.ProfitThisMonth)
	assert.Equal(t, "", first.ProfitChange)

	second := report.ProductPerformance[1]
	assert.Equal(t, "B003", second.ASIN)
	assert.Equal(t, "$50", second.SalesThisMonth)
	assert.Equal(t, "", second.SalesChange)
	assert.Equal(t, domain.NotAvailable, second.ACOSThisMonth)
}

func TestApplyProductPerformanceUnusableHeader(t *testing.T) {
	report := domain.NewParsedReport()
	rows := [][]string{
		{"alpha", "beta"},
		{"1", "2"},
	}
	applyProductPerformance(report, rows, slog.Default())
	assert.Empty(t, report.ProductPerformance)
}
