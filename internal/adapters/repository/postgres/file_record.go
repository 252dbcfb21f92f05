package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"webapp/internal/core/domain"
	"webapp/internal/core/port"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type sqlFileRepository struct {
	db SQLQuerier
}

// NewSqlFileRepository creates sqlFileRepository that implements port.FileRepository
func NewSqlFileRepository(db SQLQuerier) port.FileRepository {
	return &sqlFileRepository{
		db: db,
	}
}

// Create inserts a file record. A duplicate id is reported as domain.ErrAlreadyExists.
func (s *sqlFileRepository) Create(ctx context.Context, record domain.FileRecord) (*domain.FileRecord, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid file id %q", domain.ErrValidation, record.ID)
	}

	query := `INSERT INTO file_metadata (id, file_name, url, upload_date, user_id)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id, file_name, url, upload_date, user_id`

	var row dbFileRecord
	err = sqlx.GetContext(ctx, s.db, &row, query, id, record.FileName, record.URL, record.UploadDate, record.OwnerID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("file %s : %w", record.ID, domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("error inserting file metadata: %w", err)
	}
	return row.ToDomain(), nil
}

// FindByID finds by id
func (s *sqlFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FileRecord, error) {
	query := `SELECT id, file_name, url, upload_date, user_id
              FROM file_metadata
              WHERE id = $1`

	var row dbFileRecord
	err := sqlx.GetContext(ctx, s.db, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}

	return row.ToDomain(), nil
}

// Delete removes the row
func (s *sqlFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM file_metadata WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting file metadata: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

// dbFileRecord represents file metadata in DB
type dbFileRecord struct {
	ID         uuid.UUID `db:"id"`
	FileName   string    `db:"file_name"`
	URL        string    `db:"url"`
	UploadDate time.Time `db:"upload_date"`
	UserID     string    `db:"user_id"`
}

// ToDomain converts to domain.FileRecord
func (f *dbFileRecord) ToDomain() *domain.FileRecord {
	return &domain.FileRecord{
		ID:         f.ID.String(),
		FileName:   f.FileName,
		URL:        f.URL,
		UploadDate: f.UploadDate.UTC(),
		OwnerID:    f.UserID,
	}
}
