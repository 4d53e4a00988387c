package mapping

import (
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/models"
)

// ToModelCreditTransaction converts a domain CreditTransaction to a model CreditTransaction
func ToModelCreditTransaction(d domain.CreditTransaction) models.CreditTransaction {
	return models.CreditTransaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainCreditTransactionSlice converts ledger rows to domain entries
func ToDomainCreditTransactionSlice(ms []models.CreditTransaction) []domain.CreditTransaction {
	ds := make([]domain.CreditTransaction, len(ms))
	for i, m := range ms {
		ds[i] = domain.CreditTransaction{
			TransactionID: m.TransactionID,
			UserID:        m.UserID,
			Amount:        m.Amount,
			Description:   m.Description,
			CreatedAt:     m.CreatedAt,
		}
	}
	return ds
}
