package usecase

import (
	"github.com/rs/zerolog"

	"github.com/iho/ledgerlens/internal/domain"
)

// logDiagnostics surfaces skipped-row diagnostics as warnings. The
// structured slice itself is returned to the caller untouched so
// tests and the presentation layer can assert on it.
func logDiagnostics(logger zerolog.Logger, report string, diags []domain.Diagnostic) {
	for _, d := range diags {
		logger.Warn().
			Str("report", report).
			Str("reason", string(d.Reason)).
			Str("commodity_id", d.CommodityID).
			Str("mnemonic", d.Mnemonic).
			Str("account_type", d.AccountType).
			Msg(d.Detail)
	}
}
