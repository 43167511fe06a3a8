// Package migrations embeds the SQL schema shared by the PostgreSQL drivers.
package migrations

import (
	"embed"
	"io/fs"
	"sort"

	"userlookup/internal/errors"
)

//go:embed *.sql
var files embed.FS

// Statements returns every migration in file name order.
func Statements() ([]string, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	statements := make([]string, 0, len(names))
	for _, name := range names {
		content, err := files.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read migration %s", name)
		}
		statements = append(statements, string(content))
	}

	return statements, nil
}
