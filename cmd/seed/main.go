package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/coldlove/cold-love-backend/internal/product"
)

// seed upserts the default ice-cream catalog into the products table. Safe to
// rerun: rows are matched by name.
func main() {
	force := flag.Bool("force", false, "seed even when the catalog is not empty")
	flag.Parse()

	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("could not open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("could not reach database: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		log.Fatalf("could not count products: %v", err)
	}
	if count > 0 && !*force {
		log.Printf("catalog already has %d products, nothing to do (use -force to reseed)", count)
		return
	}

	repo := product.NewPostgresRepository(db)
	seed := product.SeedProducts()
	if err := repo.UpsertByName(seed); err != nil {
		log.Fatalf("could not seed products: %v", err)
	}
	log.Printf("seeded %d products", len(seed))
}
