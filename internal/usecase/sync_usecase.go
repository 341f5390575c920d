package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/ledgerlens/internal/domain"
)

// SyncAccountsUseCase mirrors the ledger account tree into the
// analytics store with resolved full names, top parents, and
// category labels.
type SyncAccountsUseCase struct {
	ledgerRepo    LedgerRepository
	analyticsRepo AnalyticsRepository
	assetRoot     string
	logger        zerolog.Logger
}

// NewSyncAccountsUseCase creates a new SyncAccountsUseCase.
func NewSyncAccountsUseCase(ledgerRepo LedgerRepository, analyticsRepo AnalyticsRepository, assetRoot string, logger zerolog.Logger) *SyncAccountsUseCase {
	if assetRoot == "" {
		assetRoot = domain.DefaultAssetRootName
	}
	return &SyncAccountsUseCase{
		ledgerRepo:    ledgerRepo,
		analyticsRepo: analyticsRepo,
		assetRoot:     assetRoot,
		logger:        logger,
	}
}

// Execute fetches the account adjacency list, resolves the tree, and
// replaces the analytics mirror. Returns the number of accounts
// written.
func (uc *SyncAccountsUseCase) Execute(ctx context.Context) (int, error) {
	rows, err := uc.ledgerRepo.FetchAccounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch accounts: %w", err)
	}

	resolved := domain.ResolveAccountTree(rows, uc.assetRoot)
	count, err := uc.analyticsRepo.RefreshAccounts(ctx, resolved)
	if err != nil {
		return 0, fmt.Errorf("refresh analytics accounts: %w", err)
	}

	uc.logger.Info().
		Int("fetched", len(rows)).
		Int("written", count).
		Msg("account tree synced to analytics")

	return count, nil
}
