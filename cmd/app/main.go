package main

import (
	"database/sql"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"ecommerce-backend/internal/cart"
	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/item"
	"ecommerce-backend/internal/order"
	"ecommerce-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	if err := bootstrapSchema(db); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}
	seedItems(db)

	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	itemRepo := item.NewPostgresRepository(db)
	itemService := item.NewService(itemRepo)
	itemHandler := item.NewHandler(itemService)

	cartRepo := cart.NewPostgresRepository(db)
	cartService := cart.NewService(cartRepo, userService, itemService)
	cartHandler := cart.NewHandler(cartService)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, userService, cartService)
	orderHandler := order.NewHandler(orderService)

	userHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	itemHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Info().
		Str("method", c.Method()).
		Str("path", c.OriginalURL()).
		Int("status", c.Response().StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("request")
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	return db
}

func bootstrapSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			cart_id INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			cart_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL DEFAULT 0,
			items integer[] NOT NULL DEFAULT '{}',
			total numeric NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			item_id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price numeric NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			items integer[] NOT NULL DEFAULT '{}',
			total numeric NOT NULL DEFAULT 0,
			created_at TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// seedItems loads a couple of reference items when the catalog is empty so a
// fresh database is usable right away.
func seedItems(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil || count > 0 {
		return
	}

	seed := []item.Item{
		{Name: "Round Widget", Description: "A widget that is round", Price: decimal.RequireFromString("2.99")},
		{Name: "Square Widget", Description: "A widget that is square", Price: decimal.RequireFromString("1.99")},
	}
	for _, it := range seed {
		if _, err := db.Exec(`INSERT INTO items (name, description, price) VALUES ($1,$2,$3)`, it.Name, it.Description, it.Price); err != nil {
			log.Warn().Err(err).Str("name", it.Name).Msg("seed item failed")
		}
	}
}
