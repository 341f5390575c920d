package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/ledgerlens/internal/domain"
)

// CashflowUseCase computes period cashflow views from signed
// per-account flow rows.
type CashflowUseCase struct {
	ledgerRepo LedgerRepository
	assetRoot  string
	logger     zerolog.Logger
}

// NewCashflowUseCase creates a new CashflowUseCase. assetRoot names
// the account subtree whose transactions define the cashflow
// perspective.
func NewCashflowUseCase(ledgerRepo LedgerRepository, assetRoot string, logger zerolog.Logger) *CashflowUseCase {
	if assetRoot == "" {
		assetRoot = domain.DefaultAssetRootName
	}
	return &CashflowUseCase{
		ledgerRepo: ledgerRepo,
		assetRoot:  assetRoot,
		logger:     logger,
	}
}

// CashflowInput represents input for a cashflow report.
type CashflowInput struct {
	Period         Period
	TargetCurrency string
}

// Execute returns cashflow totals and per-account details for the
// period. The repository resolves flow polarity; this only splits and
// sums.
func (uc *CashflowUseCase) Execute(ctx context.Context, input CashflowInput) (domain.CashflowView, error) {
	currency := targetCurrencyOrDefault(input.TargetCurrency)

	currencyID, err := uc.ledgerRepo.FetchCurrencyID(ctx, currency)
	if err != nil {
		return domain.CashflowView{}, fmt.Errorf("resolve target currency %s: %w", currency, err)
	}
	rows, err := uc.ledgerRepo.FetchCashflowRows(ctx, input.Period, uc.assetRoot, currencyID)
	if err != nil {
		return domain.CashflowView{}, fmt.Errorf("fetch cashflow rows: %w", err)
	}
	uc.logger.Debug().
		Int("rows", len(rows)).
		Str("currency", currency).
		Msg("fetched cashflow rows")

	view := domain.AggregateCashflow(rows, currency)
	uc.logger.Info().
		Str("total_in", view.Summary.TotalIn.String()).
		Str("total_out", view.Summary.TotalOut.String()).
		Str("currency", currency).
		Msg("cashflow totals computed")

	return view, nil
}
