package restaurant

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const restaurantColumns = `
	id, name, description, cuisine_type, location, phone, email,
	rating, total_reviews, is_active, image_url, owner_id, created_at
`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanRestaurant(row pgx.Row) (*Restaurant, error) {
	var res Restaurant
	err := row.Scan(
		&res.ID,
		&res.Name,
		&res.Description,
		&res.CuisineType,
		&res.Location,
		&res.Phone,
		&res.Email,
		&res.Rating,
		&res.TotalReviews,
		&res.IsActive,
		&res.ImageURL,
		&res.OwnerID,
		&res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// --------------------------------------------------
// Create a new restaurant
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	query := `
		INSERT INTO restaurants (
			name,
			description,
			cuisine_type,
			location,
			phone,
			email,
			owner_id,
			is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		restaurant.Name,
		restaurant.Description,
		restaurant.CuisineType,
		restaurant.Location,
		restaurant.Phone,
		restaurant.Email,
		restaurant.OwnerID,
	).Scan(&restaurant.ID, &restaurant.CreatedAt)
}

// --------------------------------------------------
// List restaurants owned by a user
// --------------------------------------------------
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*Restaurant
	for rows.Next() {
		res, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, res)
	}

	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE id = $1
	`
	return scanRestaurant(r.db.QueryRow(ctx, query, id))
}

// --------------------------------------------------
// Public browse with optional filters
// --------------------------------------------------
func (r *PostgresRepository) Browse(ctx context.Context, filter BrowseFilter) ([]*Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE is_active = TRUE
	`
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		query += ` AND (name ILIKE $` + n + ` OR description ILIKE $` + n + `)`
	}
	if filter.Cuisine != "" {
		args = append(args, filter.Cuisine)
		query += ` AND LOWER(cuisine_type) = LOWER($` + strconv.Itoa(len(args)) + `)`
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		query += ` AND location ILIKE $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY rating DESC, total_reviews DESC, name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*Restaurant
	for rows.Next() {
		res, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, res)
	}

	return restaurants, rows.Err()
}

func (r *PostgresRepository) Deactivate(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE restaurants
		SET is_active = FALSE
		WHERE id = $1
	`, id)
	return err
}

func (r *PostgresRepository) SetImageURL(ctx context.Context, id int, url string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE restaurants
		SET image_url = $1
		WHERE id = $2
	`, url, id)
	return err
}

// --------------------------------------------------
// Ownership check (SECURITY)
// --------------------------------------------------
func (r *PostgresRepository) IsOwner(
	ctx context.Context,
	restaurantID int,
	userID string,
) (bool, error) {

	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM restaurants
			WHERE id = $1
			  AND owner_id = $2
		)
	`, restaurantID, userID).Scan(&exists)

	return exists, err
}
