package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/flogin/flogin-api/config"
	"github.com/flogin/flogin-api/pkg/helpers"
)

// Standalone seeder: ensures the admin account and a few base categories
// exist. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (full_name, username, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, cfg.AdminFullName, cfg.AdminUsername, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%d username=%s\n", id, cfg.AdminUsername)

	for _, name := range []string{"Uncategorized"} {
		var cid int64
		if err := db.QueryRow(`
			INSERT INTO categories (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET updated_at = now()
			RETURNING id
		`, name).Scan(&cid); err != nil {
			log.Fatalf("failed to upsert category %q: %v", name, err)
		}
		fmt.Printf("category ensured: %s=%d\n", name, cid)
	}
}
