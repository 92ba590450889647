package postgres

import (
	"cmp"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Версии схемы снимков хранятся в menu_schema_versions; параллельные запуски
// migrate и сервиса с автомиграцией сериализуются advisory lock.
const (
	migrationsDir    = "sql/migrations"
	migrationLockKey = int64(20260418)
	lockTimeout      = 5 * time.Second
	versionsTableDDL = `
CREATE TABLE IF NOT EXISTS menu_schema_versions (
    version BIGINT PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
)

//go:embed sql/migrations/*.sql
var migrationsFS embed.FS

var migrationFileName = regexp.MustCompile(`^(\d+)_(\w+)\.(up|down)\.sql$`)

type migrationDirection string

const (
	migrationUp   migrationDirection = "up"
	migrationDown migrationDirection = "down"
)

// schemaMigration — пара скриптов одной версии схемы.
type schemaMigration struct {
	Version int64
	Name    string
	Scripts map[migrationDirection]string
}

// MigrationInfo описывает одну встроенную миграцию и её состояние.
type MigrationInfo struct {
	Version int64
	Name    string
	Applied bool
}

// SchemaVersion возвращает последнюю применённую версию и число применённых миграций.
func SchemaVersion(infos []MigrationInfo) (version int64, applied int) {
	for _, info := range infos {
		if !info.Applied {
			continue
		}
		applied++
		version = max(version, info.Version)
	}
	return version, applied
}

// MigrateUp применяет ещё не применённые миграции по возрастанию версии.
// steps=0 применяет все.
func (s *Store) MigrateUp(ctx context.Context, steps int) error {
	return s.withSchemaLock(ctx, func(conn *sql.Conn, migrations []schemaMigration, applied map[int64]bool) error {
		var pending []schemaMigration
		for _, m := range migrations {
			if !applied[m.Version] {
				pending = append(pending, m)
			}
		}
		if steps > 0 && len(pending) > steps {
			pending = pending[:steps]
		}
		for _, m := range pending {
			if err := runMigration(ctx, conn, m, migrationUp); err != nil {
				return err
			}
		}
		return nil
	})
}

// MigrateDown откатывает последние применённые миграции; steps<=0 означает один шаг.
func (s *Store) MigrateDown(ctx context.Context, steps int) error {
	if steps <= 0 {
		steps = 1
	}
	return s.withSchemaLock(ctx, func(conn *sql.Conn, migrations []schemaMigration, applied map[int64]bool) error {
		known := make(map[int64]schemaMigration, len(migrations))
		for _, m := range migrations {
			known[m.Version] = m
		}

		versions := make([]int64, 0, len(applied))
		for v := range applied {
			versions = append(versions, v)
		}
		slices.Sort(versions)
		slices.Reverse(versions)
		if len(versions) > steps {
			versions = versions[:steps]
		}

		for _, v := range versions {
			m, ok := known[v]
			if !ok {
				return fmt.Errorf("cannot rollback unknown schema version %d", v)
			}
			if err := runMigration(ctx, conn, m, migrationDown); err != nil {
				return err
			}
		}
		return nil
	})
}

// Migrations перечисляет встроенные миграции с отметкой о применении.
func (s *Store) Migrations(ctx context.Context) ([]MigrationInfo, error) {
	var infos []MigrationInfo
	err := s.withSchemaLock(ctx, func(_ *sql.Conn, migrations []schemaMigration, applied map[int64]bool) error {
		infos = make([]MigrationInfo, 0, len(migrations))
		for _, m := range migrations {
			infos = append(infos, MigrationInfo{Version: m.Version, Name: m.Name, Applied: applied[m.Version]})
		}
		return nil
	})
	return infos, err
}

// withSchemaLock берёт отдельное соединение под advisory lock, создаёт таблицу
// версий и передаёт fn встроенные миграции вместе с уже применёнными версиями.
func (s *Store) withSchemaLock(ctx context.Context, fn func(*sql.Conn, []schemaMigration, map[int64]bool) error) error {
	if s == nil || s.db == nil {
		return errStoreNotInitialized
	}

	migrations, err := parseMigrations(migrationsFS)
	if err != nil {
		return err
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire db connection: %w", err)
	}
	defer conn.Close()

	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	if _, err := conn.ExecContext(lockCtx, "SELECT pg_advisory_lock($1)", migrationLockKey); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", migrationLockKey)
	}()

	if _, err := conn.ExecContext(ctx, versionsTableDDL); err != nil {
		return fmt.Errorf("ensure schema versions table: %w", err)
	}
	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return err
	}
	return fn(conn, migrations, applied)
}

// runMigration выполняет скрипт и запись о версии в одной транзакции.
func runMigration(ctx context.Context, conn *sql.Conn, m schemaMigration, direction migrationDirection) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s %d_%s: %w", direction, m.Version, m.Name, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, m.Scripts[direction]); err != nil {
		return fmt.Errorf("run %s %d_%s: %w", direction, m.Version, m.Name, err)
	}

	if direction == migrationUp {
		_, err = tx.ExecContext(ctx, `INSERT INTO menu_schema_versions (version, name) VALUES ($1, $2)`, m.Version, m.Name)
	} else {
		_, err = tx.ExecContext(ctx, `DELETE FROM menu_schema_versions WHERE version = $1`, m.Version)
	}
	if err != nil {
		return fmt.Errorf("record %s %d_%s: %w", direction, m.Version, m.Name, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit %s %d_%s: %w", direction, m.Version, m.Name, err)
	}
	return nil
}

func appliedVersions(ctx context.Context, conn *sql.Conn) (map[int64]bool, error) {
	rows, err := conn.QueryContext(ctx, `SELECT version FROM menu_schema_versions`)
	if err != nil {
		return nil, fmt.Errorf("query schema versions: %w", err)
	}
	defer rows.Close()

	applied := make(map[int64]bool)
	for rows.Next() {
		var v int64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan schema version: %w", err)
		}
		applied[v] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schema versions: %w", err)
	}
	return applied, nil
}

// parseMigrations читает пары NNNN_name.{up,down}.sql и сортирует их по версии.
func parseMigrations(fsys fs.FS) ([]schemaMigration, error) {
	entries, err := fs.ReadDir(fsys, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	byVersion := make(map[int64]*schemaMigration)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		parts := migrationFileName.FindStringSubmatch(entry.Name())
		if parts == nil {
			return nil, fmt.Errorf("invalid migration file name: %s", entry.Name())
		}
		version, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", entry.Name(), err)
		}
		name, direction := parts[2], migrationDirection(parts[3])

		body, err := fs.ReadFile(fsys, path.Join(migrationsDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		script := strings.TrimSpace(string(body))
		if script == "" {
			return nil, fmt.Errorf("migration file is empty: %s", entry.Name())
		}

		m, ok := byVersion[version]
		if !ok {
			m = &schemaMigration{Version: version, Name: name, Scripts: map[migrationDirection]string{}}
			byVersion[version] = m
		}
		if m.Name != name {
			return nil, fmt.Errorf("migration name mismatch for version %d: %s vs %s", version, m.Name, name)
		}
		m.Scripts[direction] = script
	}
	if len(byVersion) == 0 {
		return nil, errors.New("no migration files found")
	}

	migrations := make([]schemaMigration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Scripts[migrationUp] == "" || m.Scripts[migrationDown] == "" {
			return nil, fmt.Errorf("migration %d_%s must have both up and down files", m.Version, m.Name)
		}
		migrations = append(migrations, *m)
	}
	slices.SortFunc(migrations, func(a, b schemaMigration) int {
		return cmp.Compare(a.Version, b.Version)
	})
	return migrations, nil
}
