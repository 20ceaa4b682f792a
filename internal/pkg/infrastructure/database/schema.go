package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/go-extras/go-kit/must"
)

//go:embed schema/*.sql
var schemaFS embed.FS

var schemaFiles = must.Must(fs.Sub(schemaFS, "schema"))

// Bootstrap creates any missing tables and indexes. It is safe to run
// against a database that is already up to date.
func Bootstrap(ctx context.Context, exec Executor) error {
	statements, err := SchemaStatements()
	if err != nil {
		return err
	}

	for _, stmt := range statements {
		if _, err := exec.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %q: %w", firstLine(stmt), err)
		}
	}

	return nil
}

// SchemaStatements returns the bootstrap statements in the order they are applied
func SchemaStatements() ([]string, error) {
	files, err := fs.Glob(schemaFiles, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	statements := []string{}

	for _, f := range files {
		b, err := fs.ReadFile(schemaFiles, f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}

		for _, stmt := range strings.Split(string(b), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt != "" {
				statements = append(statements, stmt)
			}
		}
	}

	return statements, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
