package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgerlens/internal/domain"
)

// AnalyticsRepository implements usecase.AnalyticsRepository against
// the analytics mirror database.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// RefreshAccounts replaces the accounts mirror with the resolved
// tree. The swap happens in one transaction so readers never see a
// half-written mirror.
func (r *AnalyticsRepository) RefreshAccounts(ctx context.Context, accounts []domain.ResolvedAccount) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin refresh: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE accounts_dim"); err != nil {
		return 0, fmt.Errorf("truncate accounts_dim: %w", err)
	}

	rows := make([][]any, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []any{
			a.ID, a.ParentID, a.Name, a.AccountType, a.CommodityID,
			a.FullName, a.TopParentName, a.Depth, a.Category, a.Subcategory,
		})
	}

	count, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"accounts_dim"},
		[]string{
			"guid", "parent_guid", "name", "account_type", "commodity_guid",
			"full_name", "top_parent_name", "depth", "actif_category", "actif_subcategory",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy accounts_dim: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit refresh: %w", err)
	}

	return int(count), nil
}
