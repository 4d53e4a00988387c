package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	"github.com/SscSPs/leadvault_backend/internal/models"
	"github.com/SscSPs/leadvault_backend/internal/utils/mapping"
	"github.com/SscSPs/leadvault_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLeadRepository struct {
	BaseRepository
}

func newPgxLeadRepository(db *pgxpool.Pool) portsrepo.LeadRepositoryFacade {
	return &PgxLeadRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.LeadRepositoryFacade = (*PgxLeadRepository)(nil)

const selectLeadFields = `
	lead_id, user_id, name, industry, location, email, phone, website, source,
	email_unlocked, phone_unlocked, created_at
`

func scanLead(row pgx.Row) (models.Lead, error) {
	var m models.Lead
	err := row.Scan(
		&m.LeadID,
		&m.UserID,
		&m.Name,
		&m.Industry,
		&m.Location,
		&m.Email,
		&m.Phone,
		&m.Website,
		&m.Source,
		&m.EmailUnlocked,
		&m.PhoneUnlocked,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxLeadRepository) findLead(ctx context.Context, q querier, query string, leadID string) (*domain.Lead, error) {
	m, err := scanLead(q.QueryRow(ctx, query, leadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find lead %s: %w", leadID, err)
	}
	d := mapping.ToDomainLead(m)
	return &d, nil
}

func (r *PgxLeadRepository) FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	return r.findLead(ctx, r.Pool, `SELECT `+selectLeadFields+` FROM leads WHERE lead_id = $1;`, leadID)
}

func (r *PgxLeadRepository) FindLeadByIDForUpdate(ctx context.Context, tx pgx.Tx, leadID string) (*domain.Lead, error) {
	return r.findLead(ctx, r.db(tx), `SELECT `+selectLeadFields+` FROM leads WHERE lead_id = $1 FOR UPDATE;`, leadID)
}

// ListLeads retrieves the user's leads using token-based pagination.
// Ordering is (created_at, lead_id) descending, which is stable across pages.
func (r *PgxLeadRepository) ListLeads(ctx context.Context, userID string, filter domain.LeadFilter, limit int, nextToken *string) ([]domain.Lead, *string, error) {
	var where strings.Builder
	where.WriteString("WHERE user_id = $1")
	args := []interface{}{userID}

	addArg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Industry != "" {
		where.WriteString(" AND industry = " + addArg(filter.Industry))
	}
	if filter.Location != "" {
		where.WriteString(" AND location = " + addArg(filter.Location))
	}
	if filter.Search != "" {
		p := addArg("%" + escapeLike(filter.Search) + "%")
		where.WriteString(" AND (name ILIKE " + p + " OR email ILIKE " + p + " OR industry ILIKE " + p + " OR location ILIKE " + p + ")")
	}

	if limit > 0 && nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr == nil {
			_, decodeErr = uuid.Parse(lastID)
		}
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%v: %w", decodeErr, apperrors.ErrValidation))
		}
		where.WriteString(" AND (created_at, lead_id) < (" + addArg(lastCreatedAt) + ", " + addArg(lastID) + "::uuid)")
	}

	query := `SELECT ` + selectLeadFields + ` FROM leads ` + where.String() + ` ORDER BY created_at DESC, lead_id DESC`
	if limit > 0 {
		// We fetch one extra item to determine if there's a next page.
		query += " LIMIT " + addArg(limit+1)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query leads for user %s: %w", userID, err)
	}
	defer rows.Close()

	leads := []models.Lead{}
	for rows.Next() {
		m, err := scanLead(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan lead row: %w", err)
		}
		leads = append(leads, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating lead rows: %w", err)
	}

	var nextTokenVal *string
	if limit > 0 && len(leads) > limit {
		leads = leads[:limit]
		last := leads[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.LeadID)
		nextTokenVal = &token
	}

	return mapping.ToDomainLeadSlice(leads), nextTokenVal, nil
}

func (r *PgxLeadRepository) CountOwnedLeads(ctx context.Context, tx pgx.Tx, userID string, leadIDs []string) (int, error) {
	if len(leadIDs) == 0 {
		return 0, nil
	}
	var count int
	query := `SELECT COUNT(*) FROM leads WHERE user_id = $1 AND lead_id::text = ANY($2);`
	if err := r.db(tx).QueryRow(ctx, query, userID, leadIDs).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count owned leads: %w", err)
	}
	return count, nil
}

// SaveLeads inserts every lead in a single transaction using a pgx batch.
func (r *PgxLeadRepository) SaveLeads(ctx context.Context, leads []domain.Lead) error {
	if len(leads) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
		INSERT INTO leads (lead_id, user_id, name, industry, location, email, phone, website, source,
		                   email_unlocked, phone_unlocked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, lead := range leads {
		m := mapping.ToModelLead(lead)
		batch.Queue(query,
			m.LeadID, m.UserID, m.Name, m.Industry, m.Location, m.Email, m.Phone, m.Website, m.Source,
			m.EmailUnlocked, m.PhoneUnlocked, m.CreatedAt,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert %d leads: %w", len(leads), err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	m := mapping.ToModelLead(lead)
	query := `
		UPDATE leads
		SET name = $1, industry = $2, location = $3, email = $4, phone = $5, website = $6, source = $7
		WHERE lead_id = $8 AND user_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Industry, m.Location, m.Email, m.Phone, m.Website, m.Source, m.LeadID, m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lead %s: %w", lead.LeadID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("lead %s: %w", lead.LeadID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxLeadRepository) DeleteLead(ctx context.Context, userID string, leadID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM leads WHERE lead_id = $1 AND user_id = $2;`, leadID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete lead %s: %w", leadID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("lead %s: %w", leadID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxLeadRepository) MarkUnlocked(ctx context.Context, tx pgx.Tx, leadID string, kind domain.UnlockKind) error {
	var column string
	switch kind {
	case domain.UnlockEmail:
		column = "email_unlocked"
	case domain.UnlockPhone:
		column = "phone_unlocked"
	default:
		return fmt.Errorf("unknown unlock type %q: %w", kind, apperrors.ErrValidation)
	}

	cmdTag, err := r.db(tx).Exec(ctx, `UPDATE leads SET `+column+` = TRUE WHERE lead_id = $1;`, leadID)
	if err != nil {
		return fmt.Errorf("failed to unlock %s on lead %s: %w", kind, leadID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("lead %s: %w", leadID, apperrors.ErrNotFound)
	}
	return nil
}

// escapeLike escapes the LIKE wildcards in user supplied search text.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
