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

type PgxSavedListRepository struct {
	BaseRepository
}

func newPgxSavedListRepository(db *pgxpool.Pool) portsrepo.SavedListRepositoryFacade {
	return &PgxSavedListRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SavedListRepositoryFacade = (*PgxSavedListRepository)(nil)

const selectSavedListQuery = `
	SELECT l.list_id, l.user_id, l.name, l.created_at,
	       COALESCE(array_agg(sll.lead_id::text ORDER BY sll.lead_id) FILTER (WHERE sll.lead_id IS NOT NULL), '{}') AS lead_ids
	FROM saved_lists l
	LEFT JOIN saved_list_leads sll ON sll.list_id = l.list_id
`

func scanSavedList(row pgx.Row) (models.SavedList, error) {
	var m models.SavedList
	err := row.Scan(&m.ListID, &m.UserID, &m.Name, &m.CreatedAt, &m.LeadIDs)
	return m, err
}

func (r *PgxSavedListRepository) FindSavedListByID(ctx context.Context, listID string) (*domain.SavedList, error) {
	query := selectSavedListQuery + ` WHERE l.list_id = $1 GROUP BY l.list_id;`
	m, err := scanSavedList(r.Pool.QueryRow(ctx, query, listID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find saved list %s: %w", listID, err)
	}
	d := mapping.ToDomainSavedList(m)
	return &d, nil
}

func (r *PgxSavedListRepository) ListSavedLists(ctx context.Context, userID string) ([]domain.SavedList, error) {
	query := selectSavedListQuery + ` WHERE l.user_id = $1 GROUP BY l.list_id ORDER BY l.created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved lists for user %s: %w", userID, err)
	}
	defer rows.Close()

	lists := []domain.SavedList{}
	for rows.Next() {
		m, err := scanSavedList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved list row: %w", err)
		}
		lists = append(lists, mapping.ToDomainSavedList(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved list rows: %w", err)
	}
	return lists, nil
}

func (r *PgxSavedListRepository) SaveSavedList(ctx context.Context, tx pgx.Tx, list domain.SavedList) error {
	query := `INSERT INTO saved_lists (list_id, user_id, name, created_at) VALUES ($1, $2, $3, $4);`
	if _, err := r.db(tx).Exec(ctx, query, list.ListID, list.UserID, list.Name, list.CreatedAt); err != nil {
		return fmt.Errorf("failed to save saved list: %w", err)
	}
	return r.insertMembers(ctx, tx, list.ListID, list.LeadIDs)
}

func (r *PgxSavedListRepository) RenameSavedList(ctx context.Context, tx pgx.Tx, userID string, listID string, name string) error {
	cmdTag, err := r.db(tx).Exec(ctx, `UPDATE saved_lists SET name = $1 WHERE list_id = $2 AND user_id = $3;`, name, listID, userID)
	if err != nil {
		return fmt.Errorf("failed to rename saved list %s: %w", listID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("saved list %s: %w", listID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxSavedListRepository) ReplaceSavedListLeads(ctx context.Context, tx pgx.Tx, listID string, leadIDs []string) error {
	if _, err := r.db(tx).Exec(ctx, `DELETE FROM saved_list_leads WHERE list_id = $1;`, listID); err != nil {
		return fmt.Errorf("failed to clear saved list %s: %w", listID, err)
	}
	return r.insertMembers(ctx, tx, listID, leadIDs)
}

func (r *PgxSavedListRepository) insertMembers(ctx context.Context, tx pgx.Tx, listID string, leadIDs []string) error {
	if len(leadIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO saved_list_leads (list_id, lead_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING;
	`
	if _, err := r.db(tx).Exec(ctx, query, listID, leadIDs); err != nil {
		return fmt.Errorf("failed to add leads to saved list %s: %w", listID, err)
	}
	return nil
}

func (r *PgxSavedListRepository) DeleteSavedList(ctx context.Context, userID string, listID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM saved_lists WHERE list_id = $1 AND user_id = $2;`, listID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete saved list %s: %w", listID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("saved list %s: %w", listID, apperrors.ErrNotFound)
	}
	return nil
}
