package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/ledgerlens/internal/domain"
)

// AssetBreakdownUseCase computes asset totals grouped by category.
type AssetBreakdownUseCase struct {
	ledgerRepo LedgerRepository
	cache      Cache
	cacheTTL   time.Duration
	assetTypes map[string]bool
	logger     zerolog.Logger
}

// NewAssetBreakdownUseCase creates a new AssetBreakdownUseCase.
func NewAssetBreakdownUseCase(ledgerRepo LedgerRepository, cache Cache, cacheTTL time.Duration, logger zerolog.Logger) *AssetBreakdownUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultReportCacheTTL
	}
	return &AssetBreakdownUseCase{
		ledgerRepo: ledgerRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		assetTypes: domain.DefaultAssetTypes,
		logger:     logger,
	}
}

// AssetBreakdownInput represents input for the category breakdown.
// Level 1 groups by top category, level 2 by subcategory.
type AssetBreakdownInput struct {
	Period         Period
	TargetCurrency string
	AssetRoot      string
	Level          int
}

// Execute computes the asset category breakdown for the period.
func (uc *AssetBreakdownUseCase) Execute(ctx context.Context, input AssetBreakdownInput) (domain.AssetCategoryBreakdown, []domain.Diagnostic, error) {
	currency := targetCurrencyOrDefault(input.TargetCurrency)
	assetRoot := input.AssetRoot
	if assetRoot == "" {
		assetRoot = domain.DefaultAssetRootName
	}
	level := input.Level
	if level == 0 {
		level = 1
	}
	cacheKey := reportCacheKey("assets:"+assetRoot, currency, input.Period, level)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
			var breakdown domain.AssetCategoryBreakdown
			if err := json.Unmarshal([]byte(cached), &breakdown); err == nil {
				return breakdown, nil, nil
			}
		}
	}

	currencyID, err := uc.ledgerRepo.FetchCurrencyID(ctx, currency)
	if err != nil {
		return domain.AssetCategoryBreakdown{}, nil, fmt.Errorf("resolve target currency %s: %w", currency, err)
	}
	rows, err := uc.ledgerRepo.FetchAssetCategoryBalances(ctx, input.Period, assetRoot)
	if err != nil {
		return domain.AssetCategoryBreakdown{}, nil, fmt.Errorf("fetch asset category balances: %w", err)
	}
	prices, err := uc.ledgerRepo.FetchLatestPrices(ctx, currencyID, input.Period.End)
	if err != nil {
		return domain.AssetCategoryBreakdown{}, nil, fmt.Errorf("fetch latest prices: %w", err)
	}

	breakdown, diags, err := domain.ComputeAssetCategoryBreakdown(
		rows,
		prices,
		uc.assetTypes,
		domain.ConversionTarget{CommodityID: currencyID, Currency: currency},
		level,
	)
	if err != nil {
		return domain.AssetCategoryBreakdown{}, nil, err
	}
	logDiagnostics(uc.logger, "assets", diags)

	if uc.cache != nil {
		if payload, err := json.Marshal(breakdown); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, string(payload), uc.cacheTTL); err != nil {
				uc.logger.Warn().Err(err).Msg("failed to cache asset breakdown snapshot")
			}
		}
	}

	return breakdown, diags, nil
}
