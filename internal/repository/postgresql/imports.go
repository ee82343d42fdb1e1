package postgresql

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kosolapovrs/deal_importer/internal/domain"
)

const TableImportRecords = "import_records"

var importColumns = []string{
	"id",
	"user_id",
	"provider",
	"file_id",
	"deal_id",
	"contact_id",
	"source_label",
	"web_url",
	"status",
	"insights",
	"error_message",
	"created_at",
	"updated_at",
}

type ImportsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewImportsRepository(pool *pgxpool.Pool) *ImportsRepository {
	return &ImportsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// FindProcessed returns the prior successful import of the same
// (user, provider, file, deal) tuple, or nil when there is none.
func (r *ImportsRepository) FindProcessed(
	ctx context.Context,
	userID, providerID, fileID, dealID string,
) (*domain.ImportRecord, error) {
	sql, args, err := r.qb.
		Select(importColumns...).
		From(TableImportRecords).
		Where(sq.Eq{
			"user_id":  userID,
			"provider": providerID,
			"file_id":  fileID,
			"deal_id":  dealID,
			"status":   domain.StatusProcessed,
		}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.ImportRecord])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, collectRowsError(err)
	}

	return record, nil
}

// Create starts a fresh processing cycle for the tuple. A prior record for
// the same tuple is reset: terminal status discarded, insights and error
// cleared.
func (r *ImportsRepository) Create(ctx context.Context, record *domain.ImportRecord) (*domain.ImportRecord, error) {
	sql, args, err := r.qb.
		Insert(TableImportRecords).
		Columns(
			"user_id",
			"provider",
			"file_id",
			"deal_id",
			"contact_id",
			"source_label",
			"web_url",
			"status",
		).
		Values(
			record.UserID,
			record.Provider,
			record.FileID,
			record.DealID,
			record.ContactID,
			record.SourceLabel,
			record.WebURL,
			record.Status,
		).
		Suffix(`ON CONFLICT (user_id, provider, file_id, deal_id) DO UPDATE SET
			contact_id = EXCLUDED.contact_id,
			source_label = EXCLUDED.source_label,
			web_url = EXCLUDED.web_url,
			status = EXCLUDED.status,
			insights = NULL,
			error_message = '',
			updated_at = now()
		RETURNING ` + columnList()).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.ImportRecord])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return created, nil
}

func (r *ImportsRepository) MarkProcessed(ctx context.Context, id uuid.UUID, insights *domain.Insights) error {
	sql, args, err := r.qb.
		Update(TableImportRecords).
		Set("status", domain.StatusProcessed).
		Set("insights", insights).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *ImportsRepository) MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error {
	sql, args, err := r.qb.
		Update(TableImportRecords).
		Set("status", domain.StatusFailed).
		Set("error_message", errorMessage).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *ImportsRepository) ByID(ctx context.Context, id uuid.UUID) (*domain.ImportRecord, error) {
	sql, args, err := r.qb.
		Select(importColumns...).
		From(TableImportRecords).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.ImportRecord])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return record, nil
}

func (r *ImportsRepository) ByDeal(
	ctx context.Context,
	dealID string,
	limit, offset uint64,
) ([]*domain.ImportRecord, int, error) {
	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableImportRecords).
		Where(sq.Eq{"deal_id": dealID}).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(importColumns...).
		From(TableImportRecords).
		Where(sq.Eq{"deal_id": dealID}).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.ImportRecord])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return records, total, nil
}

func columnList() string {
	return strings.Join(importColumns, ", ")
}
