package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/studioform/backend/internal/model"
)

func newRecord() *model.ContactRecord {
	return &model.ContactRecord{
		Name:        "John Doe",
		Email:       "john@example.com",
		Phone:       "+15551234567",
		Message:     "This is a test message with enough characters",
		Status:      model.StatusNew,
		SubmittedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPgContactRepository_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	rec := newRecord()

	mock.ExpectQuery(`INSERT INTO contacts`).
		WithArgs(rec.Name, rec.Email, rec.Phone, rec.Message, rec.Status, rec.Notes, rec.SubmittedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("a1b2c3", now, now))

	repo := NewPgContactRepository(mock)
	if err := repo.Save(context.Background(), rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if rec.ID != "a1b2c3" {
		t.Errorf("Save() id = %q, want %q", rec.ID, "a1b2c3")
	}
	if !rec.CreatedAt.Equal(now) || !rec.UpdatedAt.Equal(now) {
		t.Errorf("Save() timestamps not populated from RETURNING")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPgContactRepository_SaveError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	dbErr := errors.New("connection refused")
	mock.ExpectQuery(`INSERT INTO contacts`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(dbErr)

	repo := NewPgContactRepository(mock)
	err = repo.Save(context.Background(), newRecord())
	if !errors.Is(err, dbErr) {
		t.Errorf("Save() error = %v, want wrapped %v", err, dbErr)
	}
}
