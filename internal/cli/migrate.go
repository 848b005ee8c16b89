package cli

import (
	"fmt"
	"strings"

	"github.com/ShivamParikh1/HabitAppV11/internal/migration"
	"github.com/ShivamParikh1/HabitAppV11/internal/storage"
)

// NewPersister builds the storage backend for a config value: a PostgreSQL
// connection string, a SQLite path (.db), or a JSON state file path. The
// second return is the state file path, empty for database backends.
func NewPersister(config string) (storage.Persister, string, error) {
	switch {
	case strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://"):
		if storage.HasEmbeddedCredentials(config) {
			return nil, "", fmt.Errorf("connection strings with embedded credentials are not allowed; use environment variables or .pgpass")
		}
		return storage.NewPostgresStore(config), "", nil
	case strings.HasSuffix(config, ".db"):
		return storage.NewSQLiteStore(config), "", nil
	default:
		return storage.NewJSONStore(config), config, nil
	}
}

type MigrateCmd struct {
	To string `arg:"" help:"Destination: SQLite path (.db), PostgreSQL connection string, or JSON file path."`
}

func (c *MigrateCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()

	dst, _, err := NewPersister(c.To)
	if err != nil {
		return err
	}
	defer dst.Close()

	if err := migration.Migrate(ctx.Persister, dst); err != nil {
		return err
	}

	fmt.Printf("Migrated state to %s. The current backend is unchanged;\n", c.To)
	fmt.Printf("pass --config=%s to use the new one.\n", c.To)
	return nil
}
