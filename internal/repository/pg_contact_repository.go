package repository

import (
	"context"
	"fmt"

	"github.com/studioform/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	db Querier
}

// NewPgContactRepository creates a PgContactRepository backed by the given querier.
func NewPgContactRepository(db Querier) *PgContactRepository {
	return &PgContactRepository{db: db}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contacts row and populates rec.ID and the storage
// timestamps from the RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, rec *model.ContactRecord) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, message, status, notes, submitted_at)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), $7)
		 RETURNING id, created_at, updated_at`,
		rec.Name, rec.Email, rec.Phone, rec.Message, rec.Status, rec.Notes, rec.SubmittedAt,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}
