package review

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create review + refresh restaurant aggregates
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, review *Review) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO reviews (rating, comment, customer_id, restaurant_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`,
		review.Rating,
		review.Comment,
		review.CustomerID,
		review.RestaurantID,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE restaurants
		SET rating = sub.avg_rating,
		    total_reviews = sub.review_count
		FROM (
			SELECT AVG(rating)::float8 AS avg_rating,
			       COUNT(*) AS review_count
			FROM reviews
			WHERE restaurant_id = $1
		) sub
		WHERE restaurants.id = $1
	`, review.RestaurantID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID int) ([]Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, rating, comment, owner_reply, owner_reply_at,
		       customer_id, restaurant_id, created_at
		FROM reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var rev Review
		if err := rows.Scan(
			&rev.ID,
			&rev.Rating,
			&rev.Comment,
			&rev.OwnerReply,
			&rev.OwnerReplyAt,
			&rev.CustomerID,
			&rev.RestaurantID,
			&rev.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}

	return reviews, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Review, error) {
	var rev Review
	err := r.db.QueryRow(ctx, `
		SELECT id, rating, comment, owner_reply, owner_reply_at,
		       customer_id, restaurant_id, created_at
		FROM reviews
		WHERE id = $1
	`, id).Scan(
		&rev.ID,
		&rev.Rating,
		&rev.Comment,
		&rev.OwnerReply,
		&rev.OwnerReplyAt,
		&rev.CustomerID,
		&rev.RestaurantID,
		&rev.CreatedAt,
	)
	if err != nil {
		return nil, errors.New("review not found")
	}
	return &rev, nil
}

func (r *PostgresRepository) SetOwnerReply(ctx context.Context, reviewID int, reply string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE reviews
		SET owner_reply = $1,
		    owner_reply_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, reply, reviewID)
	return err
}
