package leadrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sunvolt/solarsite/internal/domain/lead"
	"github.com/sunvolt/solarsite/pkg/util"
)

// PostgresRepository implements lead.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Insert stores one archived estimate.
func (r *PostgresRepository) Insert(ctx context.Context, rec lead.Record) (lead.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = util.NowUTC()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO leads (id, bill_amount, monthly_units, system_size_kw, estimated_cost, estimated_savings, payback_period, location, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, rec.ID.String(), rec.BillAmount, rec.MonthlyUnits, rec.SystemSizeKw, rec.EstimatedCost, rec.EstimatedSavings, rec.PaybackPeriod, rec.Location, rec.Source, rec.CreatedAt)
	if err != nil {
		return lead.Record{}, err
	}
	return rec, nil
}

// Recent returns the newest records first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]lead.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, bill_amount, monthly_units, system_size_kw, estimated_cost, estimated_savings, payback_period, location, source, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]lead.Record, 0, limit)
	for rows.Next() {
		rec, err := scanLeadRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLeadRecord(row rowScanner) (lead.Record, error) {
	var (
		rec lead.Record
		id  string
	)
	if err := row.Scan(&id, &rec.BillAmount, &rec.MonthlyUnits, &rec.SystemSizeKw, &rec.EstimatedCost, &rec.EstimatedSavings, &rec.PaybackPeriod, &rec.Location, &rec.Source, &rec.CreatedAt); err != nil {
		return lead.Record{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return lead.Record{}, err
	}
	rec.ID = parsed
	return rec, nil
}

var _ lead.Repository = (*PostgresRepository)(nil)
