package migrator

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"smart-pos/internal/xpkg/config"
	xerrors "smart-pos/internal/xpkg/errors"
	"smart-pos/internal/xpkg/logger"
)

// Execute applies database migrations. The direction flag accepts
// "up" (default) and "down".
func Execute(_ context.Context, mylog logger.Logger, args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	showHelp := fs.Bool("help", false, "Show help")
	configPath := fs.String("config-path", "config/config.yaml", "path for config yaml")
	source := fs.String("source", "file://migrations", "migrations source URL")
	direction := fs.String("direction", "up", "migration direction: up or down")

	if err := fs.Parse(args); err != nil {
		mylog.Action("command_parse_failed").Error("Invalid command received", err)
		return xerrors.ErrParseCmd
	}
	if *showHelp {
		fs.Usage()
		return xerrors.ErrHelp
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		mylog.Action("config_load_failed").Error("Failed to load configuration", err)
		return err
	}

	m, err := migrate.New(*source, migrateURL(cfg.DB))
	if err != nil {
		mylog.Action("migrate_init_failed").Error("Failed to initialize migrator", err)
		return err
	}
	defer m.Close()

	switch *direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		return fmt.Errorf("unknown direction: %s", *direction)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		mylog.Action("migrate_no_change").Info("Database is up to date")
		return nil
	}
	if err != nil {
		mylog.Action("migrate_failed").Error("Migration failed", err)
		return err
	}

	mylog.Action("migrate_completed").Info("Migrations applied", "direction", *direction)
	return nil
}

func migrateURL(p *config.Postgres) string {
	return fmt.Sprintf(
		"pgx5://%s:%s@%s:%s/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database,
	)
}
