package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ConversionTarget anchors FX conversion to one currency commodity.
type ConversionTarget struct {
	CommodityID string
	Currency    string
}

// BuildPriceMap resolves the latest FX rate per commodity from price
// rows ordered newest-first. The first rate seen per commodity wins;
// rows with a zero denominator are skipped with a diagnostic.
func BuildPriceMap(rows []PriceRow, diags *DiagnosticSink) map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		if _, ok := rates[row.CommodityID]; ok {
			continue
		}
		if row.ValueDenom == 0 {
			diags.Add(Diagnostic{
				Reason:      DiagZeroPriceDenominator,
				CommodityID: row.CommodityID,
				Detail:      "price row has zero denominator",
			})
			continue
		}
		rates[row.CommodityID] = decimal.NewFromInt(row.ValueNum).
			Div(decimal.NewFromInt(row.ValueDenom))
	}
	return rates
}

// ConvertBalance converts a balance into the target currency.
// The second return is false when the row cannot contribute:
// missing commodity metadata, template commodities, or a missing FX
// rate. Template commodities skip silently; the other cases add a
// diagnostic. Balances already in the target currency pass through
// unchanged.
func ConvertBalance(
	balance decimal.Decimal,
	commodityID, mnemonic, namespace string,
	target ConversionTarget,
	rates map[string]decimal.Decimal,
	diags *DiagnosticSink,
) (decimal.Decimal, bool) {
	if commodityID == "" || mnemonic == "" {
		diags.Add(Diagnostic{
			Reason:      DiagMissingCommodityInfo,
			CommodityID: commodityID,
			Mnemonic:    mnemonic,
			Detail:      "account row has missing commodity info",
		})
		return decimal.Zero, false
	}
	if NormalizeNamespace(namespace) == TemplateNamespace ||
		mnemonic == NormalizeMnemonic(TemplateMnemonic) {
		// Template commodities are scheduled-transaction scaffolding,
		// intentionally excluded without a warning.
		return decimal.Zero, false
	}
	if NormalizeNamespace(namespace) == CurrencyNamespace &&
		(commodityID == target.CommodityID || mnemonic == target.Currency) {
		return balance, true
	}
	rate, ok := rates[commodityID]
	if !ok {
		diags.Add(Diagnostic{
			Reason:      DiagMissingFXRate,
			CommodityID: commodityID,
			Mnemonic:    mnemonic,
			Detail:      fmt.Sprintf("missing FX rate for %s to %s", mnemonic, target.Currency),
		})
		return decimal.Zero, false
	}
	return balance.Mul(rate), true
}
