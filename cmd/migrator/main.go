package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/YusovID/reputation-engine/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const usage = `usage: migrator [-config path] [-path dir] [-table name] <command>

commands:
  up          apply every pending migration (default)
  down        roll back every applied migration
  steps N     apply N migrations, or roll back -N
  version     print the current schema version
  force V     mark version V as applied and clear the dirty flag`

type command struct {
	name string
	arg  int
}

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "service config file")
	migrationsPath := flag.String("path", os.Getenv("MIGRATIONS_PATH"), "directory with *.sql migrations")
	migrationsTable := flag.String("table", envOr("MIGRATIONS_TABLE", "schema_migrations"), "migrations bookkeeping table")
	flag.Usage = func() { fmt.Fprintln(flag.CommandLine.Output(), usage) }
	flag.Parse()

	cmd, err := parseCommand(flag.Args())
	if err != nil {
		flag.Usage()
		log.Fatal(err)
	}

	if *migrationsPath == "" {
		log.Fatal("migrations path is not set: use -path or MIGRATIONS_PATH")
	}

	if *configPath == "" {
		log.Fatal("config path is not set: use -config or CONFIG_PATH")
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	m, err := migrate.New(
		"file://"+*migrationsPath,
		fmt.Sprintf("%s&x-migrations-table=%s", cfg.Postgres.ConnString(), *migrationsTable),
	)
	if err != nil {
		log.Fatalf("can't create new migration: %v", err)
	}
	defer m.Close()

	msg, err := run(m, cmd)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(msg)
}

// parseCommand reads the subcommand and its numeric argument, if it takes one.
func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{name: "up"}, nil
	}

	cmd := command{name: args[0]}

	switch cmd.name {
	case "up", "down", "version":
		if len(args) > 1 {
			return command{}, fmt.Errorf("%s takes no arguments", cmd.name)
		}
	case "steps", "force":
		if len(args) != 2 {
			return command{}, fmt.Errorf("%s needs exactly one numeric argument", cmd.name)
		}

		n, err := strconv.Atoi(args[1])
		if err != nil {
			return command{}, fmt.Errorf("%s: invalid argument %q: %w", cmd.name, args[1], err)
		}

		if cmd.name == "steps" && n == 0 {
			return command{}, errors.New("steps: argument must not be zero")
		}

		if cmd.name == "force" && n < -1 {
			return command{}, errors.New("force: version must be -1 or greater")
		}

		cmd.arg = n
	default:
		return command{}, fmt.Errorf("unknown command %q", cmd.name)
	}

	return cmd, nil
}

// migrator is the part of *migrate.Migrate the commands use.
type migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Version() (uint, bool, error)
	Force(v int) error
}

func run(m migrator, cmd command) (string, error) {
	switch cmd.name {
	case "down":
		if err := m.Down(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				return "", errors.New("no migrations to roll back")
			}

			return "", fmt.Errorf("can't down migrations: %w", err)
		}

		return "migrations rolled back successfully", nil
	case "steps":
		if err := m.Steps(cmd.arg); err != nil {
			return "", fmt.Errorf("can't migrate %d steps: %w", cmd.arg, err)
		}

		return fmt.Sprintf("migrated %d steps", cmd.arg), nil
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				return "no migrations applied", nil
			}

			return "", fmt.Errorf("can't read version: %w", err)
		}

		return fmt.Sprintf("version %d (dirty: %t)", version, dirty), nil
	case "force":
		if err := m.Force(cmd.arg); err != nil {
			return "", fmt.Errorf("can't force version %d: %w", cmd.arg, err)
		}

		return fmt.Sprintf("forced version %d", cmd.arg), nil
	default:
		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				return "no new migrations to apply", nil
			}

			return "", fmt.Errorf("can't do migrations: %w", err)
		}

		return "migrations applied successfully", nil
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
