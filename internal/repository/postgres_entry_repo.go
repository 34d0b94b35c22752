package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hitoshi/weeklog/internal/model"
)

// PostgresEntryRepo はPostgreSQLを使用したエントリリポジトリ。
type PostgresEntryRepo struct {
	db *sql.DB
}

// NewPostgresEntryRepo はPostgresEntryRepoを生成する。
func NewPostgresEntryRepo(db *sql.DB) *PostgresEntryRepo {
	return &PostgresEntryRepo{db: db}
}

// Create はエントリを作成する。
func (r *PostgresEntryRepo) Create(ctx context.Context, entry *model.Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO entries (id, entry_date, entry_type, body, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.Date, string(entry.Type), entry.Text, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

// FindByID は指定IDのエントリを取得する。見つからない場合はnilを返す。
func (r *PostgresEntryRepo) FindByID(ctx context.Context, id string) (*model.Entry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, entry_date, entry_type, body, created_at, updated_at
		 FROM entries
		 WHERE id = $1`,
		id,
	)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find entry: %w", err)
	}

	return entry, nil
}

// ListAll は全エントリをcreated_at昇順で返す。
func (r *PostgresEntryRepo) ListAll(ctx context.Context) ([]model.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, entry_date, entry_type, body, created_at, updated_at
		 FROM entries
		 ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries := []model.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

// Update はエントリの全フィールドを上書き更新する。
// 対象が存在しない場合はfalseを返す。
func (r *PostgresEntryRepo) Update(ctx context.Context, entry *model.Entry) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE entries
		 SET entry_date = $2, entry_type = $3, body = $4, updated_at = $5
		 WHERE id = $1`,
		entry.ID, entry.Date, string(entry.Type), entry.Text, entry.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

// Delete は指定IDのエントリを削除する。対象が存在しない場合はfalseを返す。
func (r *PostgresEntryRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM entries WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

// rowScanner は*sql.Rowと*sql.Rowsの共通部分。
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntry は1行をmodel.Entryに変換する。
// entry_dateはDATE型のためドライバからはUTC深夜0時のtime.Timeとして返る。
func scanEntry(row rowScanner) (*model.Entry, error) {
	var entry model.Entry
	var entryType string
	var date time.Time

	err := row.Scan(&entry.ID, &date, &entryType, &entry.Text, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, err
	}

	entry.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	entry.Type = model.EntryType(entryType)
	return &entry, nil
}

// compile-time interface check
var _ EntryRepository = (*PostgresEntryRepo)(nil)
