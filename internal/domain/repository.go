package domain

import (
	"context"

	"github.com/google/uuid"
)

// SnapshotRepository defines the interface for loading company snapshots
type SnapshotRepository interface {
	// Load retrieves the full financial snapshot for a company.
	// Returns ErrCompanyNotFound if the company does not exist.
	Load(ctx context.Context, companyID uuid.UUID) (*Snapshot, error)
}
