package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyByName(t *testing.T) {
	tests := []struct {
		name    string
		tabName string
		want    ReportGroup
	}{
		{"profit keyword", "Profit & Loss", GroupProfitLoss},
		{"loss keyword", "Monthly Loss Overview", GroupProfitLoss},
		{"product keyword", "Product Data", GroupProductPerformance},
		{"asin keyword", "ASIN breakdown", GroupProductPerformance},
		{"payout keyword", "Payouts", GroupPayouts},
		{"payout outranks performance", "Payout Performance", GroupPayouts},
		{"amazon keyword", "Amazon", GroupAmazonPerformance},
		{"performance keyword", "Marketplace Performance", GroupAmazonPerformance},
		{"profit outranks product", "Product Profit", GroupProfitLoss},
		{"uninformative name no rows", "Sheet1", GroupNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.tabName, nil))
		})
	}
}

func TestClassifyByHeader(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   ReportGroup
	}{
		{"asin header", []string{"ASIN", "Title", "Sales"}, GroupProductPerformance},
		{"title header", []string{"Title", "Units"}, GroupProductPerformance},
		{"sales header", []string{"Sales", "100"}, GroupProfitLoss},
		{"expense header", []string{"Expense", "Amount"}, GroupProfitLoss},
		{"payment header", []string{"Payment", "Date"}, GroupPayouts},
		{"acos header", []string{"ACOS", "12%"}, GroupAmazonPerformance},
		{"nothing recognizable", []string{"alpha", "beta"}, GroupNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify("Sheet1", [][]string{tt.header}))
		})
	}
}

func TestReportGroupString(t *testing.T) {
	assert.Equal(t, "profit_loss", GroupProfitLoss.String())
	assert.Equal(t, "none", GroupNone.String())
}
