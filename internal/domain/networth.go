package domain

import "github.com/shopspring/decimal"

// ComputeNetWorthSummary sums converted asset and liability balances
// into a net worth summary. Rows of other account types are ignored;
// rows that cannot be converted contribute nothing. Liability
// contributions accumulate as absolute values so both totals stay
// non-negative.
func ComputeNetWorthSummary(
	balances []BalanceRow,
	prices []PriceRow,
	assetTypes, liabilityTypes map[string]bool,
	target ConversionTarget,
) (NetWorthSummary, []Diagnostic) {
	diags := &DiagnosticSink{}
	rates := BuildPriceMap(prices, diags)

	assetTotal := decimal.Zero
	liabilityTotal := decimal.Zero
	for _, row := range balances {
		isAsset := assetTypes[row.AccountType]
		if !isAsset && !liabilityTypes[row.AccountType] {
			continue
		}
		ValidateBalanceSign(row.AccountType, row.Balance, assetTypes, liabilityTypes, diags)
		converted, ok := ConvertBalance(
			row.Balance,
			row.CommodityID,
			NormalizeMnemonic(row.Mnemonic),
			NormalizeNamespace(row.Namespace),
			target,
			rates,
			diags,
		)
		if !ok {
			continue
		}
		if isAsset {
			assetTotal = assetTotal.Add(converted)
		} else {
			liabilityTotal = liabilityTotal.Add(converted.Abs())
		}
	}

	return NetWorthSummary{
		AssetTotal:     assetTotal,
		LiabilityTotal: liabilityTotal,
		NetWorth:       assetTotal.Sub(liabilityTotal),
		CurrencyCode:   target.Currency,
	}, diags.Items()
}
