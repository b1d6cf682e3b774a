package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := InitSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// InitSchema creates or updates the database schema
func InitSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(100) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CUSTOMER',
			first_name VARCHAR(100) NOT NULL DEFAULT '',
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	restaurantTableSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			cuisine_type VARCHAR(100) NOT NULL DEFAULT '',
			location VARCHAR(255) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT '',
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_reviews INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			image_url VARCHAR(500),
			owner_id UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, restaurantTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemTableSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price DOUBLE PRECISION NOT NULL CHECK (price > 0),
			category VARCHAR(100) NOT NULL,
			cuisine_type VARCHAR(100) NOT NULL DEFAULT '',
			is_vegetarian BOOLEAN NOT NULL DEFAULT FALSE,
			is_vegan BOOLEAN NOT NULL DEFAULT FALSE,
			is_gluten_free BOOLEAN NOT NULL DEFAULT FALSE,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			is_special BOOLEAN NOT NULL DEFAULT FALSE,
			is_deal_of_day BOOLEAN NOT NULL DEFAULT FALSE,
			order_count INT NOT NULL DEFAULT 0,
			image_url VARCHAR(500),
			restaurant_id INT NOT NULL REFERENCES restaurants(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuItemTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// CART + ACTIVE COUPON
	// -------------------------------
	cartTableSQL := `
		CREATE TABLE IF NOT EXISTS cart (
			id SERIAL PRIMARY KEY,
			customer_id UUID NOT NULL REFERENCES users(id),
			menu_item_id INT NOT NULL REFERENCES menu_items(id),
			quantity INT NOT NULL CHECK (quantity >= 1),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (customer_id, menu_item_id)
		)
	`
	if _, err := db.Exec(ctx, cartTableSQL); err != nil {
		return err
	}

	activeCouponTableSQL := `
		CREATE TABLE IF NOT EXISTS active_coupons (
			customer_id UUID PRIMARY KEY REFERENCES users(id),
			code VARCHAR(50) NOT NULL
		)
	`
	if _, err := db.Exec(ctx, activeCouponTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	orderTableSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			order_number VARCHAR(50) UNIQUE NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			total_amount DOUBLE PRECISION NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			customer_id UUID NOT NULL REFERENCES users(id),
			restaurant_id INT NOT NULL REFERENCES restaurants(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, orderTableSQL); err != nil {
		return err
	}

	orderItemTableSQL := `
		CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id INT NOT NULL REFERENCES menu_items(id),
			quantity INT NOT NULL CHECK (quantity >= 1),
			price DOUBLE PRECISION NOT NULL
		)
	`
	if _, err := db.Exec(ctx, orderItemTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// PREFERENCES
	// -------------------------------
	preferenceTableSQL := `
		CREATE TABLE IF NOT EXISTS user_preferences (
			id SERIAL PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			preference_type VARCHAR(50) NOT NULL,
			preference_value VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_id, preference_type, preference_value)
		)
	`
	if _, err := db.Exec(ctx, preferenceTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// REVIEWS
	// -------------------------------
	reviewTableSQL := `
		CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT NOT NULL DEFAULT '',
			owner_reply TEXT,
			owner_reply_at TIMESTAMP,
			customer_id UUID NOT NULL REFERENCES users(id),
			restaurant_id INT NOT NULL REFERENCES restaurants(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, reviewTableSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
