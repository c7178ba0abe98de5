package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"interview-ai/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

// ORA-00955: name is already used by an existing object
const oraObjectExists = "ORA-00955"

// Migration is one embedded .up.sql file
type Migration struct {
	Name       string
	Statements []string
}

// LoadMigrations reads the embedded migrations in file name order.
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationFiles, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, dir+"/"+name)
		if err != nil {
			return nil, fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		migrations = append(migrations, Migration{Name: name, Statements: SplitStatements(string(content))})
	}
	return migrations, nil
}

// SplitStatements splits a script on ';' at line ends.
// Oracle rejects a trailing ';' in a single statement sent over the driver.
func SplitStatements(script string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(current.String()), ";")
			statements = append(statements, stmt)
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		statements = append(statements, rest)
	}
	return statements
}

// RunMigrations applies every embedded migration.
// Statements creating objects that already exist are skipped so the command can be rerun.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	l := logger.Get()

	migrations, err := LoadMigrations()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		for i, stmt := range m.Statements {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				if strings.Contains(err.Error(), oraObjectExists) {
					l.Info("Migration object already exists, skipping", zap.String("migration", m.Name), zap.Int("statement", i+1))
					continue
				}
				return fmt.Errorf("could not execute migration %s (statement %d): %w", m.Name, i+1, err)
			}
		}
		l.Info("Executed migration", zap.String("migration", m.Name))
	}

	l.Info("Migrations completed successfully")
	return nil
}
