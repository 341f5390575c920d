package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceRow is one per-commodity balance aggregate produced by a
// repository query. The balance is in source-commodity units.
type BalanceRow struct {
	AccountType string
	CommodityID string
	Mnemonic    string
	Namespace   string
	Balance     decimal.Decimal
}

// AssetCategoryBalanceRow is a BalanceRow with the category labels
// resolved by the repository's account-tree walk under the asset root.
type AssetCategoryBalanceRow struct {
	BalanceRow
	Category    string
	Subcategory string
}

// PriceRow is one commodity price quotation in the target currency.
// Callers must order rows so the newest quote per commodity comes first.
type PriceRow struct {
	CommodityID string
	ValueNum    int64
	ValueDenom  int64
	Date        time.Time
}

// CashflowRow is a signed per-account flow amount already converted to
// the target currency. Positive means inflow, negative means outflow.
type CashflowRow struct {
	AccountID       string
	AccountFullName string
	TopParentName   string
	Amount          decimal.Decimal
}

// AccountRow is one node of the account adjacency list, as stored in
// the ledger. ParentID is empty for the root account.
type AccountRow struct {
	ID          string
	ParentID    string
	Name        string
	AccountType string
	CommodityID string
}
