package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateBalanceSign flags balances that violate the expected sign
// convention: asset balances should not be negative, liability
// balances should not be positive. Out-of-convention rows are flagged
// but never rejected; ledger data is trusted.
func ValidateBalanceSign(
	accountType string,
	balance decimal.Decimal,
	assetTypes, liabilityTypes map[string]bool,
	diags *DiagnosticSink,
) {
	if assetTypes[accountType] && balance.IsNegative() {
		diags.Add(Diagnostic{
			Reason:      DiagSignConvention,
			AccountType: accountType,
			Detail:      fmt.Sprintf("asset balance is negative: %s", balance),
		})
	}
	if liabilityTypes[accountType] && balance.IsPositive() {
		diags.Add(Diagnostic{
			Reason:      DiagSignConvention,
			AccountType: accountType,
			Detail:      fmt.Sprintf("liability balance is positive: %s", balance),
		})
	}
}
