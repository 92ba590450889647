package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/menuboard/internal/storage/postgres"
)

const (
	defaultTimeout = 30 * time.Second
)

func main() {
	var (
		direction string
		steps     int
		dsn       string
	)

	flag.StringVar(&direction, "direction", "up", "migration direction: up|down|status")
	flag.IntVar(&steps, "steps", 0, "number of migrations to apply/rollback (0=all for up, 1 for down)")
	flag.StringVar(&dsn, "dsn", "", "PostgreSQL DSN (fallback: MENU_POSTGRES_DSN)")
	flag.Parse()

	if strings.TrimSpace(dsn) == "" {
		dsn = strings.TrimSpace(os.Getenv("MENU_POSTGRES_DSN"))
	}
	if dsn == "" {
		fail("MENU_POSTGRES_DSN (or -dsn) is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		fail("open postgres store: %v", err)
	}
	defer store.Close()

	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "up":
		if err := store.MigrateUp(ctx, steps); err != nil {
			fail("migrate up failed: %v", err)
		}
		fmt.Println(statusLine("migrate up ok", mustMigrations(ctx, store)))
	case "down":
		if err := store.MigrateDown(ctx, steps); err != nil {
			fail("migrate down failed: %v", err)
		}
		fmt.Println(statusLine("migrate down ok", mustMigrations(ctx, store)))
	case "status":
		infos := mustMigrations(ctx, store)
		fmt.Println(statusLine("migration status", infos))
		printMigrations(os.Stdout, infos)
	default:
		fail("unsupported direction: %s (use up|down|status)", direction)
	}
}

func mustMigrations(ctx context.Context, store *postgres.Store) []postgres.MigrationInfo {
	infos, err := store.Migrations(ctx)
	if err != nil {
		fail("migration status failed: %v", err)
	}
	return infos
}

// statusLine форматирует итог: последняя применённая версия и число применённых миграций.
func statusLine(prefix string, infos []postgres.MigrationInfo) string {
	version, applied := postgres.SchemaVersion(infos)
	return fmt.Sprintf("%s: version=%d applied=%d", prefix, version, applied)
}

// printMigrations печатает таблицу встроенных миграций.
func printMigrations(w io.Writer, infos []postgres.MigrationInfo) {
	for _, m := range infos {
		state := "pending"
		if m.Applied {
			state = "applied"
		}
		_, _ = fmt.Fprintf(w, "  %04d %-40s %s\n", m.Version, m.Name, state)
	}
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
