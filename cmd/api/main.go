package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ramneet9/Food-DEL/internal/auth"
	"github.com/ramneet9/Food-DEL/internal/cart"
	"github.com/ramneet9/Food-DEL/internal/db"
	"github.com/ramneet9/Food-DEL/internal/events"
	"github.com/ramneet9/Food-DEL/internal/menu"
	"github.com/ramneet9/Food-DEL/internal/order"
	"github.com/ramneet9/Food-DEL/internal/preference"
	"github.com/ramneet9/Food-DEL/internal/pricing"
	"github.com/ramneet9/Food-DEL/internal/recommend"
	"github.com/ramneet9/Food-DEL/internal/restaurant"
	"github.com/ramneet9/Food-DEL/internal/review"
	"github.com/ramneet9/Food-DEL/internal/router"
	"github.com/ramneet9/Food-DEL/internal/storage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── REDIS (OPTIONAL) ─────────────────────────
	var recCache recommend.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("❌ Redis connection failed:", err)
		}
		recCache = recommend.NewRedisCache(rdb, 5*time.Minute)
		log.Println("✅ Connected to Redis")
	}

	// ───────────────────────── KAFKA (OPTIONAL) ─────────────────────────
	var publisher events.Publisher = events.NoopPublisher{}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		topic := os.Getenv("KAFKA_ORDER_TOPIC")
		if topic == "" {
			topic = "orders.placed"
		}
		publisher = events.NewKafkaPublisher(strings.Split(brokers, ","), topic)
		log.Println("✅ Kafka publisher ready on topic", topic)
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	cartRepo := cart.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	preferenceRepo := preference.NewPostgresRepository(pgDB)
	reviewRepo := review.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	engine := pricing.NewEngine(pricing.DefaultRegistry())

	authService := auth.NewService(userRepo)
	restaurantService := restaurant.NewService(restaurantRepo, r2Client)
	menuService := menu.NewService(menuRepo, restaurantRepo, r2Client)
	cartService := cart.NewService(cartRepo, menuRepo, engine)
	orderService := order.NewService(orderRepo, cartRepo, engine, publisher)
	preferenceService := preference.NewService(preferenceRepo)
	recommendService := recommend.NewService(menuService, preferenceService, recCache)
	reviewService := review.NewService(reviewRepo, orderRepo, restaurantRepo)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Auth:       auth.NewHandler(authService),
		Restaurant: restaurant.NewHandler(restaurantService),
		Menu:       menu.NewHandler(menuService),
		Cart:       cart.NewHandler(cartService),
		Order:      order.NewHandler(orderService),
		Preference: preference.NewHandler(preferenceService),
		Recommend:  recommend.NewHandler(recommendService),
		Review:     review.NewHandler(reviewService),
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
