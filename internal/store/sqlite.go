package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dedup-service/internal/dedup/model"

	_ "modernc.org/sqlite"
)

// Статусы загрузки; движку видны только завершённые
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// SQLite — хранилище документов проектов.
type SQLite struct {
	db     *sql.DB
	logger zerolog.Logger
}

func OpenSQLite(dbPath string, logger zerolog.Logger) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create database directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite: одно соединение
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &SQLite{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database migration: %w", err)
	}
	logger.Info().Str("path", dbPath).Msg("document store ready")
	return s, nil
}

func (s *SQLite) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS project_documents (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL,
		stored_name    TEXT NOT NULL,
		original_name  TEXT NOT NULL,
		size_bytes     INTEGER NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'pending',
		extracted_text TEXT,
		uploaded_at    DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_project_documents_project ON project_documents(project_id, status);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLite) Close() error { return s.db.Close() }

// Put вставляет или заменяет запись. Пустой ID — генерируется, пустая дата — сейчас.
func (s *SQLite) Put(ctx context.Context, projectID, status string, d model.ExistingDocument) (string, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.UploadedAt.IsZero() {
		d.UploadedAt = time.Now().UTC()
	}
	var text sql.NullString
	if d.ExtractedText != nil {
		text = sql.NullString{String: *d.ExtractedText, Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO project_documents
		 (id, project_id, stored_name, original_name, size_bytes, status, extracted_text, uploaded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, projectID, d.StoredName, d.OriginalName, int64(d.SizeBytes), status, text, d.UploadedAt.UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("put document %s: %w", d.ID, err)
	}
	return d.ID, nil
}

func (s *SQLite) ListDocuments(ctx context.Context, projectID string) ([]model.ExistingDocument, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, stored_name, original_name, size_bytes, extracted_text, uploaded_at
		 FROM project_documents
		 WHERE project_id = ? AND status = ?`,
		projectID, StatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents of %s: %w", projectID, err)
	}
	defer rows.Close()

	var out []model.ExistingDocument
	for rows.Next() {
		var (
			d    model.ExistingDocument
			size int64
			text sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.StoredName, &d.OriginalName, &size, &text, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if size > 0 {
			d.SizeBytes = uint64(size)
		}
		if text.Valid {
			d.ExtractedText = model.Text(text.String)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents of %s: %w", projectID, err)
	}
	return out, nil
}
