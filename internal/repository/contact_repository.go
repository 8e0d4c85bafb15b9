package repository

import (
	"context"

	"github.com/studioform/backend/internal/model"
)

// ContactRepository accepts a write of a ContactRecord. The submission
// pipeline treats the implementation as an opaque collaborator: a nil error
// means the record was durably accepted; the record is never read back.
type ContactRepository interface {
	Save(ctx context.Context, rec *model.ContactRecord) error
}
