package domain

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// AggregateCashflow splits signed per-account amounts into incoming
// and outgoing line items. Zero-amount rows are dropped. Outgoing
// amounts are stored as absolute values. Each list preserves the
// first-seen account order of the source rows.
func AggregateCashflow(rows []CashflowRow, targetCurrency string) CashflowView {
	type accountMeta struct {
		fullName  string
		topParent string
	}

	incomingTotals := make(map[string]decimal.Decimal)
	outgoingTotals := make(map[string]decimal.Decimal)
	var incomingOrder, outgoingOrder []string
	meta := make(map[string]accountMeta)

	for _, row := range rows {
		if row.Amount.IsZero() {
			continue
		}
		if _, ok := meta[row.AccountID]; !ok {
			meta[row.AccountID] = accountMeta{
				fullName:  row.AccountFullName,
				topParent: row.TopParentName,
			}
		}
		if row.Amount.IsPositive() {
			if _, ok := incomingTotals[row.AccountID]; !ok {
				incomingOrder = append(incomingOrder, row.AccountID)
			}
			incomingTotals[row.AccountID] = incomingTotals[row.AccountID].Add(row.Amount)
		} else {
			if _, ok := outgoingTotals[row.AccountID]; !ok {
				outgoingOrder = append(outgoingOrder, row.AccountID)
			}
			outgoingTotals[row.AccountID] = outgoingTotals[row.AccountID].Add(row.Amount.Abs())
		}
	}

	buildItems := func(order []string, totals map[string]decimal.Decimal) []CashflowItem {
		items := make([]CashflowItem, 0, len(order))
		for _, accountID := range order {
			amount := totals[accountID]
			if amount.IsZero() {
				continue
			}
			m := meta[accountID]
			items = append(items, CashflowItem{
				AccountFullName: m.fullName,
				Amount:          amount,
				TopParentName:   m.topParent,
			})
		}
		return items
	}

	incoming := buildItems(incomingOrder, incomingTotals)
	outgoing := buildItems(outgoingOrder, outgoingTotals)

	sumItems := func(items []CashflowItem) decimal.Decimal {
		return lo.Reduce(items, func(acc decimal.Decimal, item CashflowItem, _ int) decimal.Decimal {
			return acc.Add(item.Amount)
		}, decimal.Zero)
	}

	return CashflowView{
		Summary: CashflowSummary{
			TotalIn:      sumItems(incoming),
			TotalOut:     sumItems(outgoing),
			CurrencyCode: targetCurrency,
		},
		Incoming: incoming,
		Outgoing: outgoing,
	}
}
