package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"window_quotation/internal/domain/entities"
	"window_quotation/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const quotationColumns = `id, quotation_number, status, client_name, grand_total, window_count, record, created_at, updated_at`

// QuotationPostgresRepository is the remote quotation service backed by a
// shared Postgres database. quotation_number is unique, so the lookup that
// decides create vs update returns at most one row.
type QuotationPostgresRepository struct {
	pool  *pgxpool.Pool
	table string
}

var _ interfaces.IRemoteQuoteService = (*QuotationPostgresRepository)(nil)

func NewQuotationPostgresRepository(pool *pgxpool.Pool, table string) *QuotationPostgresRepository {
	if strings.TrimSpace(table) == "" {
		table = defaultQuotationsTableName
	}
	return &QuotationPostgresRepository{pool: pool, table: pgx.Identifier{table}.Sanitize()}
}

// EnsureSchema creates the quotations table when it is missing.
func (r *QuotationPostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		quotation_number TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL,
		client_name TEXT NOT NULL DEFAULT '',
		grand_total DOUBLE PRECISION NOT NULL DEFAULT 0,
		window_count INTEGER NOT NULL DEFAULT 0,
		record JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`, r.table))
	return err
}

func (r *QuotationPostgresRepository) Create(ctx context.Context, q entities.StoredQuotation) (entities.StoredQuotation, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, r.table, quotationColumns, quotationColumns),
		q.ID, q.QuotationNumber, string(q.Status), q.ClientName, q.GrandTotal, q.WindowCount, string(q.Record), q.CreatedAt, q.UpdatedAt,
	)
	out, err := scanStoredQuotation(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			log.Printf("[quotation][postgres] duplicate quotation number=%s", q.QuotationNumber)
		}
		return entities.StoredQuotation{}, err
	}
	return out, nil
}

// Update overwrites the record by id. Returns an empty entity when the id
// does not exist.
func (r *QuotationPostgresRepository) Update(ctx context.Context, id string, q entities.StoredQuotation) (entities.StoredQuotation, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`UPDATE %s SET
		quotation_number = $2, status = $3, client_name = $4, grand_total = $5,
		window_count = $6, record = $7, updated_at = $8
		WHERE id = $1
		RETURNING %s`, r.table, quotationColumns),
		id, q.QuotationNumber, string(q.Status), q.ClientName, q.GrandTotal, q.WindowCount, string(q.Record), q.UpdatedAt,
	)
	out, err := scanStoredQuotation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.StoredQuotation{}, nil
	}
	if err != nil {
		return entities.StoredQuotation{}, err
	}
	return out, nil
}

func (r *QuotationPostgresRepository) FindByNumber(ctx context.Context, number string) (entities.StoredQuotation, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE quotation_number = $1`, quotationColumns, r.table), number)
	out, err := scanStoredQuotation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.StoredQuotation{}, nil
	}
	if err != nil {
		return entities.StoredQuotation{}, err
	}
	return out, nil
}

func scanStoredQuotation(row pgx.Row) (entities.StoredQuotation, error) {
	var (
		q      entities.StoredQuotation
		status string
		record string
	)
	if err := row.Scan(&q.ID, &q.QuotationNumber, &status, &q.ClientName, &q.GrandTotal, &q.WindowCount, &record, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return entities.StoredQuotation{}, err
	}
	q.Status = entities.QuotationStatus(status)
	q.Record = []byte(record)
	return q, nil
}
