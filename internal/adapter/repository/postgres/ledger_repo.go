package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/ledgerlens/internal/domain"
	"github.com/iho/ledgerlens/internal/usecase"
)

// Split balances are valued in transaction currency for currency
// commodities and in commodity units otherwise.
const balanceExpr = `
	CASE
		WHEN c.namespace = 'CURRENCY'
			THEN CAST(s.value_num AS NUMERIC) / NULLIF(s.value_denom, 0)
		ELSE CAST(s.quantity_num AS NUMERIC) / NULLIF(s.quantity_denom, 0)
	END`

// LedgerRepository implements usecase.LedgerRepository against a
// GnuCash-shaped PostgreSQL schema.
type LedgerRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// FetchCurrencyID resolves a currency mnemonic to its commodity id.
func (r *LedgerRepository) FetchCurrencyID(ctx context.Context, mnemonic string) (string, error) {
	const query = `
		SELECT guid
		FROM commodities
		WHERE mnemonic = $1 AND namespace = 'CURRENCY'
		LIMIT 1`

	var id string
	err := r.retrier.Retry(ctx, func() error {
		return r.pool.QueryRow(ctx, query, mnemonic).Scan(&id)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrCurrencyNotFound
		}
		return "", err
	}

	return id, nil
}

// FetchLatestPrices returns price quotations in the target currency,
// ordered per commodity newest-first so BuildPriceMap keeps the most
// recent valid rate.
func (r *LedgerRepository) FetchLatestPrices(ctx context.Context, currencyID string, end time.Time) ([]domain.PriceRow, error) {
	query := `
		SELECT commodity_guid, value_num, value_denom, date
		FROM prices
		WHERE currency_guid = $1`
	args := []any{currencyID}
	if !end.IsZero() {
		query += " AND date <= $2"
		args = append(args, end)
	}
	query += " ORDER BY commodity_guid, date DESC"

	var prices []domain.PriceRow
	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		prices = prices[:0]
		for rows.Next() {
			var p domain.PriceRow
			var date pgtype.Timestamptz
			if err := rows.Scan(&p.CommodityID, &p.ValueNum, &p.ValueDenom, &date); err != nil {
				return err
			}
			p.Date = date.Time
			prices = append(prices, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("query latest prices: %w", err)
	}

	return prices, nil
}

// FetchNetWorthBalances returns per-commodity balance aggregates for
// every account, in source-commodity units.
func (r *LedgerRepository) FetchNetWorthBalances(ctx context.Context, period usecase.Period) ([]domain.BalanceRow, error) {
	query := `
		SELECT a.account_type,
		       a.commodity_guid,
		       c.mnemonic,
		       c.namespace,
		       SUM(` + balanceExpr + `) AS balance
		FROM accounts a
		JOIN commodities c ON c.guid = a.commodity_guid
		JOIN splits s ON s.account_guid = a.guid
		JOIN transactions t ON t.guid = s.tx_guid
		WHERE 1=1`
	query, args := appendPeriod(query, nil, period)
	query += " GROUP BY a.account_type, a.commodity_guid, c.mnemonic, c.namespace"

	var balances []domain.BalanceRow
	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		balances = balances[:0]
		for rows.Next() {
			var b domain.BalanceRow
			var commodityID, mnemonic, namespace pgtype.Text
			var balance pgtype.Numeric
			if err := rows.Scan(&b.AccountType, &commodityID, &mnemonic, &namespace, &balance); err != nil {
				return err
			}
			b.CommodityID = commodityID.String
			b.Mnemonic = mnemonic.String
			b.Namespace = namespace.String
			b.Balance = numericToDecimal(balance)
			balances = append(balances, b)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("query net worth balances: %w", err)
	}

	return balances, nil
}

// FetchAssetCategoryBalances returns balance aggregates for accounts
// under assetRoot, with level-1 and level-2 category labels resolved
// by walking the parent chain in SQL.
func (r *LedgerRepository) FetchAssetCategoryBalances(ctx context.Context, period usecase.Period, assetRoot string) ([]domain.AssetCategoryBalanceRow, error) {
	query := `
		WITH RECURSIVE account_tree AS (
			SELECT child.guid AS guid,
			       child.parent_guid AS parent_guid,
			       child.name AS top_child_name,
			       NULL::TEXT AS second_child_name
			FROM accounts root
			JOIN accounts child ON child.parent_guid = root.guid
			WHERE root.name = $1
			UNION ALL
			SELECT a.guid,
			       a.parent_guid,
			       at.top_child_name,
			       CASE
			           WHEN at.second_child_name IS NULL THEN a.name
			           ELSE at.second_child_name
			       END AS second_child_name
			FROM account_tree at
			JOIN accounts a ON a.parent_guid = at.guid
		)
		SELECT a.account_type,
		       a.commodity_guid,
		       c.mnemonic,
		       c.namespace,
		       at.top_child_name AS category,
		       at.second_child_name AS subcategory,
		       SUM(` + balanceExpr + `) AS balance
		FROM accounts a
		JOIN account_tree at ON at.guid = a.guid
		JOIN commodities c ON c.guid = a.commodity_guid
		JOIN splits s ON s.account_guid = a.guid
		JOIN transactions t ON t.guid = s.tx_guid
		WHERE at.top_child_name IS NOT NULL`
	query, args := appendPeriod(query, []any{assetRoot}, period)
	query += ` GROUP BY a.account_type, a.commodity_guid, c.mnemonic,
		c.namespace, at.top_child_name, at.second_child_name`

	var result []domain.AssetCategoryBalanceRow
	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		result = result[:0]
		for rows.Next() {
			var row domain.AssetCategoryBalanceRow
			var commodityID, mnemonic, namespace, category, subcategory pgtype.Text
			var balance pgtype.Numeric
			if err := rows.Scan(&row.AccountType, &commodityID, &mnemonic, &namespace, &category, &subcategory, &balance); err != nil {
				return err
			}
			row.CommodityID = commodityID.String
			row.Mnemonic = mnemonic.String
			row.Namespace = namespace.String
			row.Category = category.String
			row.Subcategory = subcategory.String
			row.Balance = numericToDecimal(balance)
			result = append(result, row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("query asset category balances: %w", err)
	}

	return result, nil
}

// FetchCashflowRows returns signed flow amounts for non-asset
// accounts that took part in transactions touching the assetRoot
// subtree, already in the target currency. Split values are negated
// so money leaving an expense account reads as an outflow.
func (r *LedgerRepository) FetchCashflowRows(ctx context.Context, period usecase.Period, assetRoot, currencyID string) ([]domain.CashflowRow, error) {
	query := `
		WITH RECURSIVE account_tree AS (
			SELECT guid,
			       parent_guid,
			       name,
			       NULL::TEXT AS full_name,
			       NULL::TEXT AS top_name
			FROM accounts
			WHERE parent_guid IS NULL
			UNION ALL
			SELECT a.guid,
			       a.parent_guid,
			       a.name,
			       CASE
			           WHEN at.full_name IS NULL THEN a.name
			           ELSE at.full_name || ':' || a.name
			       END AS full_name,
			       CASE
			           WHEN at.top_name IS NULL THEN a.name
			           ELSE at.top_name
			       END AS top_name
			FROM accounts a
			JOIN account_tree at ON a.parent_guid = at.guid
		),
		asset_accounts AS (
			SELECT guid FROM account_tree WHERE top_name = $1
		),
		asset_transactions AS (
			SELECT DISTINCT s.tx_guid
			FROM splits s
			JOIN asset_accounts aa ON aa.guid = s.account_guid
			JOIN transactions t ON t.guid = s.tx_guid
			JOIN accounts a ON a.guid = s.account_guid
			JOIN commodities c ON c.guid = a.commodity_guid
			WHERE c.guid = $2`
	query, args := appendPeriod(query, []any{assetRoot, currencyID}, period)
	query += fmt.Sprintf(`
		)
		SELECT a.guid AS account_guid,
		       at.full_name AS account_full_name,
		       at.top_name AS top_parent_name,
		       SUM(-(%s)) AS amount
		FROM splits s
		JOIN asset_transactions atx ON atx.tx_guid = s.tx_guid
		JOIN accounts a ON a.guid = s.account_guid
		JOIN account_tree at ON at.guid = a.guid
		JOIN commodities c ON c.guid = a.commodity_guid
		WHERE a.guid NOT IN (SELECT guid FROM asset_accounts)
		  AND c.guid = $2
		GROUP BY a.guid, at.full_name, at.top_name
		HAVING SUM(-(%s)) <> 0
		ORDER BY at.full_name, a.guid`, balanceExpr, balanceExpr)

	var result []domain.CashflowRow
	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		result = result[:0]
		for rows.Next() {
			var row domain.CashflowRow
			var fullName, topParent pgtype.Text
			var amount pgtype.Numeric
			if err := rows.Scan(&row.AccountID, &fullName, &topParent, &amount); err != nil {
				return err
			}
			row.AccountFullName = fullName.String
			row.TopParentName = topParent.String
			row.Amount = numericToDecimal(amount)
			result = append(result, row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("query cashflow rows: %w", err)
	}

	return result, nil
}

// FetchAccounts returns the raw account adjacency list.
func (r *LedgerRepository) FetchAccounts(ctx context.Context) ([]domain.AccountRow, error) {
	const query = `
		SELECT guid, COALESCE(parent_guid, ''), name, account_type, COALESCE(commodity_guid, '')
		FROM accounts
		ORDER BY guid`

	var accounts []domain.AccountRow
	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		accounts = accounts[:0]
		for rows.Next() {
			var a domain.AccountRow
			if err := rows.Scan(&a.ID, &a.ParentID, &a.Name, &a.AccountType, &a.CommodityID); err != nil {
				return err
			}
			accounts = append(accounts, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}

	return accounts, nil
}

// appendPeriod adds post-date bounds to a query that ends inside its
// WHERE clause. Argument numbering continues from the args given.
func appendPeriod(query string, args []any, period usecase.Period) (string, []any) {
	if !period.Start.IsZero() {
		args = append(args, period.Start)
		query += fmt.Sprintf(" AND t.post_date >= $%d", len(args))
	}
	if !period.End.IsZero() {
		args = append(args, period.End)
		query += fmt.Sprintf(" AND t.post_date <= $%d", len(args))
	}
	return query, args
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}
