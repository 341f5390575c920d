package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/ledgerlens/internal/domain"
)

// NetWorthUseCase computes currency-normalized net worth summaries.
type NetWorthUseCase struct {
	ledgerRepo     LedgerRepository
	cache          Cache
	cacheTTL       time.Duration
	assetTypes     map[string]bool
	liabilityTypes map[string]bool
	logger         zerolog.Logger
}

// NewNetWorthUseCase creates a new NetWorthUseCase. cache may be nil
// to disable snapshot caching.
func NewNetWorthUseCase(ledgerRepo LedgerRepository, cache Cache, cacheTTL time.Duration, logger zerolog.Logger) *NetWorthUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultReportCacheTTL
	}
	return &NetWorthUseCase{
		ledgerRepo:     ledgerRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
		assetTypes:     domain.DefaultAssetTypes,
		liabilityTypes: domain.DefaultLiabilityTypes,
		logger:         logger,
	}
}

// NetWorthInput represents input for computing net worth.
type NetWorthInput struct {
	Period         Period
	TargetCurrency string
}

// Execute computes the net worth summary for the period. Failure to
// resolve the target currency is fatal; bad rows degrade to
// diagnostics. Cached snapshots are served without diagnostics.
func (uc *NetWorthUseCase) Execute(ctx context.Context, input NetWorthInput) (domain.NetWorthSummary, []domain.Diagnostic, error) {
	currency := targetCurrencyOrDefault(input.TargetCurrency)
	cacheKey := reportCacheKey("networth", currency, input.Period, 0)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
			var summary domain.NetWorthSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return summary, nil, nil
			}
		}
	}

	currencyID, err := uc.ledgerRepo.FetchCurrencyID(ctx, currency)
	if err != nil {
		return domain.NetWorthSummary{}, nil, fmt.Errorf("resolve target currency %s: %w", currency, err)
	}
	balances, err := uc.ledgerRepo.FetchNetWorthBalances(ctx, input.Period)
	if err != nil {
		return domain.NetWorthSummary{}, nil, fmt.Errorf("fetch net worth balances: %w", err)
	}
	prices, err := uc.ledgerRepo.FetchLatestPrices(ctx, currencyID, input.Period.End)
	if err != nil {
		return domain.NetWorthSummary{}, nil, fmt.Errorf("fetch latest prices: %w", err)
	}

	summary, diags := domain.ComputeNetWorthSummary(
		balances,
		prices,
		uc.assetTypes,
		uc.liabilityTypes,
		domain.ConversionTarget{CommodityID: currencyID, Currency: currency},
	)
	logDiagnostics(uc.logger, "networth", diags)

	if uc.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, string(payload), uc.cacheTTL); err != nil {
				uc.logger.Warn().Err(err).Msg("failed to cache net worth snapshot")
			}
		}
	}

	return summary, diags, nil
}

func targetCurrencyOrDefault(currency string) string {
	if currency == "" {
		return DefaultTargetCurrency
	}
	return domain.NormalizeMnemonic(currency)
}

func reportCacheKey(report, currency string, period Period, level int) string {
	return fmt.Sprintf("report:%s:%s:%d:%d:%d",
		report, currency, period.Start.Unix(), period.End.Unix(), level)
}
