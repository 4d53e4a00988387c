package pgsql

import (
	portsrepo "github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		LeadRepo:        newPgxLeadRepository(dbPool),
		SavedListRepo:   newPgxSavedListRepository(dbPool),
		SavedFilterRepo: newPgxSavedFilterRepository(dbPool),
		CreditRepo:      newPgxCreditRepository(dbPool),
		APITokenRepo:    newPgxAPITokenRepository(dbPool),
	}
}
