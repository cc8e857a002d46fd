package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/coldlove/cold-love-backend/internal/cart"
	"github.com/coldlove/cold-love-backend/internal/checkout"
	"github.com/coldlove/cold-love-backend/internal/config"
	"github.com/coldlove/cold-love-backend/internal/order"
	"github.com/coldlove/cold-love-backend/internal/product"
	"github.com/coldlove/cold-love-backend/internal/referral"
	"github.com/coldlove/cold-love-backend/internal/session"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	app.Use(logger.New())
	setupCORS(app)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	cartRepo, err := cart.OpenSQLiteRepository(cfg.CartDBPath)
	if err != nil {
		log.Fatalf("could not open cart store: %v", err)
	}
	defer cartRepo.Close()

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)

	cartService := cart.NewService(cartRepo)
	cartHandler := cart.NewHandler(cartService, productService)

	referralRepo := referral.NewPostgresRepository(db)
	validators := referral.NewRegistry(referralRepo, referral.DefaultDebounce)

	orderRepo := order.NewPostgresRepository(db)
	notifier := checkout.NewWhatsAppNotifier(cfg.ShopWhatsApp)
	checkoutService := checkout.NewService(cartService, orderRepo, referralRepo, notifier)
	checkoutHandler := checkout.NewHandler(checkoutService, validators)

	productHandler.RegisterPublicRoutes(app)

	// cart and checkout need a session cookie
	app.Use(session.Middleware())
	cartHandler.RegisterRoutes(app)
	checkoutHandler.RegisterRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false,
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            category TEXT NOT NULL DEFAULT '',
            price INT NOT NULL DEFAULT 0,
            description TEXT NOT NULL DEFAULT '',
            image_url TEXT NOT NULL DEFAULT '',
            quantity_info TEXT NOT NULL DEFAULT '',
            is_available BOOLEAN NOT NULL DEFAULT true,
            created_at TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            order_number TEXT NOT NULL,
            customer_name TEXT NOT NULL,
            customer_phone TEXT NOT NULL,
            delivery_address TEXT NOT NULL,
            order_items JSONB NOT NULL DEFAULT '[]',
            total_amount INT NOT NULL DEFAULT 0,
            referral_code TEXT,
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS referrals (
            id TEXT PRIMARY KEY,
            referral_code TEXT NOT NULL UNIQUE,
            referral_name TEXT NOT NULL DEFAULT '',
            referral_phone TEXT NOT NULL DEFAULT '',
            total_orders INT NOT NULL DEFAULT 0,
            total_revenue INT NOT NULL DEFAULT 0,
            is_active BOOLEAN NOT NULL DEFAULT true
        )`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
