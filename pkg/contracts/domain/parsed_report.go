package domain

// NotAvailable is the sentinel stored in every metric field until a source
// row supplies a value. Values are kept as raw strings on purpose: currency
// symbols, thousands separators and percent signs from the uploaded export
// are preserved verbatim for display.
const NotAvailable = "N/A"

// ParsedReport is the canonical report produced from one uploaded export.
// It is the sole interchange contract between the normalization engine and
// its consumers, and is always fully populated: fields that no source row
// matched keep their defaults.
type ParsedReport struct {
	ProfitLoss         ProfitLoss        `json:"profitLoss"`
	ProductPerformance []ProductRecord   `json:"productPerformance"`
	Payouts            Payouts           `json:"payouts"`
	AmazonPerformance  AmazonPerformance `json:"amazonPerformance"`
}

// ProfitLoss holds the profit & loss summary section of a report.
type ProfitLoss struct {
	Sales        string `json:"sales"`
	CostOfGoods  string `json:"costOfGoods"`
	Taxes        string `json:"taxes"`
	FBAFees      string `json:"fbaFees"`
	ReferralFees string `json:"referralFees"`
	StorageFees  string `json:"storageFees"`
	AdExpenses   string `json:"adExpenses"`
	Refunds      string `json:"refunds"`
	Expenses     string `json:"expenses"`
	NetProfit    string `json:"netProfit"`
	Margin       string `json:"margin"`
	ROI          string `json:"roi"`
}

// ProductRecord is one per-ASIN row of the product performance table.
// A record only enters the report when both ASIN and Title are non-empty.
type ProductRecord struct {
	ASIN  string `json:"asin"`
	Title string `json:"title"`

	SalesThisMonth      string `json:"salesThisMonth"`
	SalesChange         string `json:"salesChange"`
	ProfitThisMonth     string `json:"profitThisMonth"`
	ProfitChange        string `json:"profitChange"`
	MarginThisMonth     string `json:"marginThisMonth"`
	MarginChange        string `json:"marginChange"`
	UnitsThisMonth      string `json:"unitsThisMonth"`
	UnitsChange         string `json:"unitsChange"`
	RefundRateThisMonth string `json:"refundRateThisMonth"`
	RefundRateChange    string `json:"refundRateChange"`
	AdSpendThisMonth    string `json:"adSpendThisMonth"`
	AdSpendChange       string `json:"adSpendChange"`
	ACOSThisMonth       string `json:"acosThisMonth"`
	ACOSChange          string `json:"acosChange"`
	TACOSThisMonth      string `json:"tacosThisMonth"`
	TACOSChange         string `json:"tacosChange"`
	CTR                 string `json:"ctr"`
	CVR                 string `json:"cvr"`
}

// Payouts holds the payout summary section of a report.
type Payouts struct {
	Latest   string `json:"latest"`
	Previous string `json:"previous"`
	Average  string `json:"average"`
}

// AmazonPerformance holds the platform-wide performance section, one
// this-month/change pair per metric.
type AmazonPerformance struct {
	SalesThisMonth      string `json:"salesThisMonth"`
	SalesChange         string `json:"salesChange"`
	ProfitThisMonth     string `json:"profitThisMonth"`
	ProfitChange        string `json:"profitChange"`
	MarginThisMonth     string `json:"marginThisMonth"`
	MarginChange        string `json:"marginChange"`
	UnitsThisMonth      string `json:"unitsThisMonth"`
	UnitsChange         string `json:"unitsChange"`
	RefundRateThisMonth string `json:"refundRateThisMonth"`
	RefundRateChange    string `json:"refundRateChange"`
	ACOSThisMonth       string `json:"acosThisMonth"`
	ACOSChange          string `json:"acosChange"`
	TACOSThisMonth      string `json:"tacosThisMonth"`
	TACOSChange         string `json:"tacosChange"`
	CTRThisMonth        string `json:"ctrThisMonth"`
	CTRChange           string `json:"ctrChange"`
}

// NewParsedReport returns a report with every metric field set to its
// default. Metric values default to NotAvailable; change fields default to
// the empty string; the product table starts empty but non-nil so the JSON
// encoding is always an array.
func NewParsedReport() *ParsedReport {
	return &ParsedReport{
		ProfitLoss: ProfitLoss{
			Sales:        NotAvailable,
			CostOfGoods:  NotAvailable,
			Taxes:        NotAvailable,
			FBAFees:      NotAvailable,
			ReferralFees: NotAvailable,
			StorageFees:  NotAvailable,
			AdExpenses:   NotAvailable,
			Refunds:      NotAvailable,
			Expenses:     NotAvailable,
			NetProfit:    NotAvailable,
			Margin:       NotAvailable,
			ROI:          NotAvailable,
		},
		ProductPerformance: []ProductRecord{},
		Payouts: Payouts{
			Latest:   NotAvailable,
			Previous: NotAvailable,
			Average:  NotAvailable,
		},
		AmazonPerformance: AmazonPerformance{
			SalesThisMonth:      NotAvailable,
			ProfitThisMonth:     NotAvailable,
			MarginThisMonth:     NotAvailable,
			UnitsThisMonth:      NotAvailable,
			RefundRateThisMonth: NotAvailable,
			ACOSThisMonth:       NotAvailable,
			TACOSThisMonth:      NotAvailable,
			CTRThisMonth:        NotAvailable,
		},
	}
}

// NewProductRecord returns a product row with metric defaults applied, ready
// to be filled from whichever columns the source table actually has.
func NewProductRecord() ProductRecord {
	return ProductRecord{
		SalesThisMonth:      NotAvailable,
		ProfitThisMonth:     NotAvailable,
		MarginThisMonth:     NotAvailable,
		UnitsThisMonth:      NotAvailable,
		RefundRateThisMonth: NotAvailable,
		AdSpendThisMonth:    NotAvailable,
		ACOSThisMonth:       NotAvailable,
		TACOSThisMonth:      NotAvailable,
		CTR:                 NotAvailable,
		CVR:                 NotAvailable,
	}
}
