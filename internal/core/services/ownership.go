package services

import (
	"fmt"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/google/uuid"
)

// requireOwnership passes through entity when it was found and belongs to userID.
// Entities owned by someone else are reported as not found so their existence is not leaked.
func requireOwnership[T domain.OwnedEntity](entity T, err error, userID string) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if entity.OwnerUserID() != userID {
		return zero, fmt.Errorf("owned by another user: %w", apperrors.ErrNotFound)
	}
	return entity, nil
}

// isValidID reports whether id is a well-formed UUID. Malformed ids are never found.
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
