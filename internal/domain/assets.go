package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

type categoryKey struct {
	Parent   string
	Category string
}

// ComputeAssetCategoryBreakdown groups converted asset balances by
// category. At level 1 the grouping key is the top category; at level
// 2 it is the subcategory with the top category as parent. Rows with
// a non-asset account type or an empty resolved category are skipped.
// The result is ordered by (parent, category), empty parent first.
func ComputeAssetCategoryBreakdown(
	rows []AssetCategoryBalanceRow,
	prices []PriceRow,
	assetTypes map[string]bool,
	target ConversionTarget,
	level int,
) (AssetCategoryBreakdown, []Diagnostic, error) {
	if level != 1 && level != 2 {
		return AssetCategoryBreakdown{}, nil, ErrInvalidCategoryLevel
	}

	diags := &DiagnosticSink{}
	rates := BuildPriceMap(prices, diags)

	totals := make(map[categoryKey]decimal.Decimal)
	for _, row := range rows {
		if !assetTypes[row.AccountType] {
			continue
		}
		key := categoryKey{Category: row.Category}
		if level == 2 {
			key = categoryKey{Parent: row.Category, Category: row.Subcategory}
		}
		if key.Category == "" {
			continue
		}
		ValidateBalanceSign(row.AccountType, row.Balance, assetTypes, nil, diags)
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
		totals[key] = totals[key].Add(converted)
	}

	keys := make([]categoryKey, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Parent != keys[j].Parent {
			return keys[i].Parent < keys[j].Parent
		}
		return keys[i].Category < keys[j].Category
	})

	categories := make([]AssetCategoryAmount, 0, len(keys))
	for _, key := range keys {
		categories = append(categories, AssetCategoryAmount{
			Category:       key.Category,
			Amount:         totals[key],
			ParentCategory: key.Parent,
		})
	}

	return AssetCategoryBreakdown{
		CurrencyCode: target.Currency,
		Categories:   categories,
	}, diags.Items(), nil
}
