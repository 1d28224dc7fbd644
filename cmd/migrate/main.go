package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/radityabs/rutevis/internal/pkg/config"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		configs.Database.Username,
		configs.Database.Password,
		configs.Database.Host,
		configs.Database.Port,
		configs.Database.Database,
		configs.Database.SSLMode,
	)

	db, err := sqlx.Open("pgx", connString)
	if err != nil {
		log.Fatalf("Failed to open postgres connection: %v", err)
	}
	defer db.Close()

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set goose dialect: %v", err)
	}

	switch command {
	case "up":
		err = goose.Up(db.DB, migrationsDir)
	case "down":
		err = goose.Down(db.DB, migrationsDir)
	case "status":
		err = goose.Status(db.DB, migrationsDir)
	default:
		log.Fatalf("Unknown migrate command: %s", command)
	}

	if err != nil {
		log.Fatalf("Migration %s failed: %v", command, err)
	}
}
