package domain

import "github.com/shopspring/decimal"

// NetWorthSummary holds currency-normalized net worth totals.
// AssetTotal and LiabilityTotal are non-negative; NetWorth may be
// negative.
type NetWorthSummary struct {
	AssetTotal     decimal.Decimal
	LiabilityTotal decimal.Decimal
	NetWorth       decimal.Decimal
	CurrencyCode   string
}

// AssetCategoryAmount is the converted total for one category.
// ParentCategory is empty at level 1.
type AssetCategoryAmount struct {
	Category       string
	Amount         decimal.Decimal
	ParentCategory string
}

// AssetCategoryBreakdown groups converted asset balances by category,
// ordered by (parent, category).
type AssetCategoryBreakdown struct {
	CurrencyCode string
	Categories   []AssetCategoryAmount
}

// CashflowSummary holds the grand cashflow totals for a period.
type CashflowSummary struct {
	TotalIn      decimal.Decimal
	TotalOut     decimal.Decimal
	CurrencyCode string
}

// Difference returns TotalIn minus TotalOut.
func (s CashflowSummary) Difference() decimal.Decimal {
	return s.TotalIn.Sub(s.TotalOut)
}

// CashflowItem is the aggregated flow for a single account.
// Amount is non-negative; direction comes from the owning list.
type CashflowItem struct {
	AccountFullName string
	Amount          decimal.Decimal
	TopParentName   string
}

// CashflowView is the cashflow summary plus per-account line items.
// Both lists preserve first-seen account order from the source rows.
type CashflowView struct {
	Summary  CashflowSummary
	Incoming []CashflowItem
	Outgoing []CashflowItem
}
