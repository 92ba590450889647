package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
)

const opTimeout = 5 * time.Second

type snapshotRepository struct {
	db *sql.DB
}

// NewSnapshotStorage создаёт PostgreSQL-реализацию SnapshotStorage поверх таблицы menu_snapshots.
func NewSnapshotStorage(store *Store) domain.SnapshotStorage {
	return &snapshotRepository{db: store.DB()}
}

func (r *snapshotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var value string
	err := r.db.QueryRowContext(ctx, `
		SELECT value
		FROM menu_snapshots
		WHERE key = $1
	`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get menu snapshot: %w", err)
	}

	return []byte(value), nil
}

func (r *snapshotRepository) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO menu_snapshots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = EXCLUDED.updated_at
	`, key, string(value)); err != nil {
		return fmt.Errorf("set menu snapshot: %w", err)
	}

	return nil
}

func (r *snapshotRepository) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM menu_snapshots WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete menu snapshot: %w", err)
	}

	return nil
}

var _ domain.SnapshotStorage = (*snapshotRepository)(nil)
