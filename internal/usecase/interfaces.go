package usecase

import (
	"context"
	"time"

	"github.com/iho/ledgerlens/internal/domain"
)

// Period bounds a report query. Zero times leave the bound open.
type Period struct {
	Start time.Time
	End   time.Time
}

// LedgerRepository defines read access to the ledger row sources.
// FetchLatestPrices must return rows ordered so the newest quote per
// commodity comes first.
type LedgerRepository interface {
	FetchCurrencyID(ctx context.Context, mnemonic string) (string, error)
	FetchNetWorthBalances(ctx context.Context, period Period) ([]domain.BalanceRow, error)
	FetchAssetCategoryBalances(ctx context.Context, period Period, assetRoot string) ([]domain.AssetCategoryBalanceRow, error)
	FetchCashflowRows(ctx context.Context, period Period, assetRoot, currencyID string) ([]domain.CashflowRow, error)
	FetchLatestPrices(ctx context.Context, currencyID string, end time.Time) ([]domain.PriceRow, error)
	FetchAccounts(ctx context.Context) ([]domain.AccountRow, error)
}

// AnalyticsRepository defines write access to the analytics mirror.
type AnalyticsRepository interface {
	RefreshAccounts(ctx context.Context, accounts []domain.ResolvedAccount) (int, error)
}

// Cache defines caching operations for report snapshots.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
