package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	"github.com/SscSPs/leadvault_backend/internal/models"
	"github.com/SscSPs/leadvault_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSavedFilterRepository struct {
	BaseRepository
}

func newPgxSavedFilterRepository(db *pgxpool.Pool) portsrepo.SavedFilterRepositoryFacade {
	return &PgxSavedFilterRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SavedFilterRepositoryFacade = (*PgxSavedFilterRepository)(nil)

const selectSavedFilterFields = `filter_id, user_id, name, criteria, created_at`

func scanSavedFilter(row pgx.Row) (domain.SavedFilter, error) {
	var m models.SavedFilter
	if err := row.Scan(&m.FilterID, &m.UserID, &m.Name, &m.Criteria, &m.CreatedAt); err != nil {
		return domain.SavedFilter{}, err
	}
	return mapping.ToDomainSavedFilter(m)
}

func (r *PgxSavedFilterRepository) FindSavedFilterByID(ctx context.Context, filterID string) (*domain.SavedFilter, error) {
	query := `SELECT ` + selectSavedFilterFields + ` FROM saved_filters WHERE filter_id = $1;`
	filter, err := scanSavedFilter(r.Pool.QueryRow(ctx, query, filterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find saved filter %s: %w", filterID, err)
	}
	return &filter, nil
}

func (r *PgxSavedFilterRepository) ListSavedFilters(ctx context.Context, userID string) ([]domain.SavedFilter, error) {
	query := `SELECT ` + selectSavedFilterFields + ` FROM saved_filters WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved filters for user %s: %w", userID, err)
	}
	defer rows.Close()

	filters := []domain.SavedFilter{}
	for rows.Next() {
		filter, err := scanSavedFilter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved filter row: %w", err)
		}
		filters = append(filters, filter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved filter rows: %w", err)
	}
	return filters, nil
}

func (r *PgxSavedFilterRepository) SaveSavedFilter(ctx context.Context, filter domain.SavedFilter) error {
	m, err := mapping.ToModelSavedFilter(filter)
	if err != nil {
		return err
	}
	query := `INSERT INTO saved_filters (filter_id, user_id, name, criteria, created_at) VALUES ($1, $2, $3, $4, $5);`
	if _, err := r.Pool.Exec(ctx, query, m.FilterID, m.UserID, m.Name, m.Criteria, m.CreatedAt); err != nil {
		return fmt.Errorf("failed to save saved filter: %w", err)
	}
	return nil
}

func (r *PgxSavedFilterRepository) UpdateSavedFilter(ctx context.Context, filter domain.SavedFilter) error {
	m, err := mapping.ToModelSavedFilter(filter)
	if err != nil {
		return err
	}
	query := `UPDATE saved_filters SET name = $1, criteria = $2 WHERE filter_id = $3 AND user_id = $4;`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.Criteria, m.FilterID, m.UserID)
	if err != nil {
		return fmt.Errorf("failed to update saved filter %s: %w", filter.FilterID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("saved filter %s: %w", filter.FilterID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxSavedFilterRepository) DeleteSavedFilter(ctx context.Context, userID string, filterID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM saved_filters WHERE filter_id = $1 AND user_id = $2;`, filterID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete saved filter %s: %w", filterID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("saved filter %s: %w", filterID, apperrors.ErrNotFound)
	}
	return nil
}
