package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/epeers/registry-warnings/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository reads business status snapshots
type BusinessRepository struct {
	pool *pgxpool.Pool
}

// NewBusinessRepository creates a new BusinessRepository
func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

// GetStatus loads the status snapshot for a business identifier.
// All reads share one transaction so the snapshot is consistent, and AsOf is
// taken from the database clock.
func (r *BusinessRepository) GetStatus(ctx context.Context, identifier string) (*models.BusinessEntityStatus, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		SELECT id, identifier, legal_name, legal_type, good_standing,
		       dissolution_initiated_by_registry, NOW()
		FROM businesses
		WHERE identifier = $1
	`
	var businessID int64
	s := &models.BusinessEntityStatus{}
	err = tx.QueryRow(ctx, query, identifier).Scan(
		&businessID, &s.Identifier, &s.LegalName, &s.LegalType, &s.GoodStanding,
		&s.DissolutionInitiatedByRegistry, &s.AsOf,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	if s.PendingTransactions, err = r.pendingTransactions(ctx, tx, businessID); err != nil {
		return nil, err
	}

	s.MissingRequiredFields, err = r.stringColumn(ctx, tx, `
		SELECT field_name
		FROM business_missing_fields
		WHERE business_id = $1
		ORDER BY field_name
	`, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get missing fields: %w", err)
	}

	s.ComplianceFilingsDue, err = r.stringColumn(ctx, tx, `
		SELECT filing_type
		FROM compliance_filings_due
		WHERE business_id = $1 AND filed_at IS NULL AND due_date <= NOW()
		ORDER BY due_date, filing_type
	`, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get compliance filings: %w", err)
	}

	return commitSnapshot(ctx, tx, s)
}

// commitSnapshot commits tx and returns s only if the commit succeeds.
func commitSnapshot(ctx context.Context, tx pgx.Tx, s *models.BusinessEntityStatus) (*models.BusinessEntityStatus, error) {
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit status snapshot: %w", err)
	}
	return s, nil
}

func (r *BusinessRepository) pendingTransactions(ctx context.Context, tx pgx.Tx, businessID int64) ([]models.PendingTransaction, error) {
	query := `
		SELECT transaction_type, effective_date
		FROM pending_transactions
		WHERE business_id = $1
		ORDER BY effective_date
	`
	rows, err := tx.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending transactions: %w", err)
	}
	defer rows.Close()

	var result []models.PendingTransaction
	for rows.Next() {
		var txType string
		var effective time.Time
		if err := rows.Scan(&txType, &effective); err != nil {
			return nil, fmt.Errorf("failed to scan pending transaction: %w", err)
		}
		result = append(result, models.PendingTransaction{
			Type:          models.TransactionType(txType),
			EffectiveDate: effective,
		})
	}
	return result, rows.Err()
}

func (r *BusinessRepository) stringColumn(ctx context.Context, tx pgx.Tx, query string, args ...any) ([]string, error) {
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
