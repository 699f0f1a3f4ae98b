package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/dberrors"
	"github.com/coursehub/backend/internal/pkg/logger"
)

// EntityMeta describes how an entity maps onto its table. Values must
// include every column in Columns, keyed by column name, id included.
type EntityMeta[T any] struct {
	Table        string
	Columns      []string
	DefaultOrder string
	ScanRow      func(row pgx.Row) (*T, error)
	Values       func(entity *T) map[string]any
	ID           func(entity *T) uuid.UUID
}

// Repository implements the shared CRUD operations for a single table.
// Entity repositories embed it and add their own query methods.
type Repository[T any] struct {
	db   *pgxpool.Pool
	meta EntityMeta[T]
	sb   squirrel.StatementBuilderType
}

// NewRepository creates a Repository for the given entity mapping
func NewRepository[T any](db *pgxpool.Pool, meta EntityMeta[T]) *Repository[T] {
	return &Repository[T]{
		db:   db,
		meta: meta,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves every row, ordered by the entity's default order
func (r *Repository[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.GetAllWhere(ctx, nil)
}

// GetAllWhere retrieves the rows matching the predicate, ordered by the
// entity's default order. A nil predicate matches everything.
func (r *Repository[T]) GetAllWhere(ctx context.Context, pred squirrel.Sqlizer) ([]*T, error) {
	query := r.sb.Select(r.meta.Columns...).From(r.meta.Table)
	if pred != nil {
		query = query.Where(pred)
	}
	if r.meta.DefaultOrder != "" {
		query = query.OrderBy(r.meta.DefaultOrder)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error building select SQL")
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error executing select query")
		return nil, fmt.Errorf("error querying %s: %w", r.meta.Table, err)
	}
	defer rows.Close()

	entities := []*T{}
	for rows.Next() {
		entity, err := r.meta.ScanRow(rows)
		if err != nil {
			logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error scanning row")
			return nil, fmt.Errorf("error scanning %s row: %w", r.meta.Table, err)
		}
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error iterating rows")
		return nil, fmt.Errorf("error iterating %s rows: %w", r.meta.Table, err)
	}

	return entities, nil
}

// GetByID retrieves a single row by primary key.
// Returns apperrors.ErrResourceNotFound when the id does not exist.
func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	sql, args, err := r.sb.Select(r.meta.Columns...).
		From(r.meta.Table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error building get by ID SQL")
		return nil, fmt.Errorf("failed to build get by ID query: %w", err)
	}

	entity, err := r.meta.ScanRow(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("table", r.meta.Table).Str("id", id.String()).Msg("Error scanning row by ID")
		return nil, fmt.Errorf("error getting %s by ID: %w", r.meta.Table, err)
	}

	return entity, nil
}

// Add inserts the entity. Unique violations surface as
// apperrors.ErrConflict with the driver error still wrapped underneath.
func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	values := r.meta.Values(entity)

	columns := make([]string, 0, len(values))
	args := make([]any, 0, len(values))
	for _, col := range r.meta.Columns {
		columns = append(columns, col)
		args = append(args, values[col])
	}

	sql, sqlArgs, err := r.sb.Insert(r.meta.Table).
		Columns(columns...).
		Values(args...).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error building insert SQL")
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, sqlArgs...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %w", apperrors.ErrConflict, err)
		}
		logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error executing insert query")
		return fmt.Errorf("error inserting into %s: %w", r.meta.Table, err)
	}

	return nil
}

// Update overwrites the row identified by the entity's id.
// Returns apperrors.ErrResourceNotFound when the id does not exist.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	id := r.meta.ID(entity)

	setMap := map[string]any{}
	for col, val := range r.meta.Values(entity) {
		if col == "id" {
			continue
		}
		setMap[col] = val
	}

	sql, args, err := r.sb.Update(r.meta.Table).
		SetMap(setMap).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error building update SQL")
		return fmt.Errorf("failed to build update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %w", apperrors.ErrConflict, err)
		}
		logger.Error().Err(err).Str("table", r.meta.Table).Str("id", id.String()).Msg("Error executing update query")
		return fmt.Errorf("error updating %s: %w", r.meta.Table, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes the row by primary key. Deleting a missing row is a no-op.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete(r.meta.Table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error building delete SQL")
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("table", r.meta.Table).Str("id", id.String()).Msg("Error executing delete query")
		return fmt.Errorf("error deleting from %s: %w", r.meta.Table, err)
	}

	return nil
}

// Exists reports whether any row matches the predicate
func (r *Repository[T]) Exists(ctx context.Context, pred squirrel.Sqlizer) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From(r.meta.Table).
		Where(pred).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error building exists SQL")
		return false, fmt.Errorf("failed to build existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error checking existence")
		return false, fmt.Errorf("error checking %s existence: %w", r.meta.Table, err)
	}

	return exists, nil
}

// Count returns the number of rows matching the predicate.
// A nil predicate counts the whole table.
func (r *Repository[T]) Count(ctx context.Context, pred squirrel.Sqlizer) (int64, error) {
	query := r.sb.Select("COUNT(*)").From(r.meta.Table)
	if pred != nil {
		query = query.Where(pred)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error building count SQL")
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("table", r.meta.Table).Msg("Error executing count query")
		return 0, fmt.Errorf("error counting %s rows: %w", r.meta.Table, err)
	}

	return count, nil
}
