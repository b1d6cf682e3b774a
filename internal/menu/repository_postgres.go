package menu

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const itemColumns = `
	id, name, COALESCE(description, ''), price, category, cuisine_type,
	is_vegetarian, is_vegan, is_gluten_free, is_available,
	is_special, is_deal_of_day, order_count, image_url, restaurant_id, created_at
`

func scanItem(row pgx.Row) (*Item, error) {
	var it Item
	err := row.Scan(
		&it.ID,
		&it.Name,
		&it.Description,
		&it.Price,
		&it.Category,
		&it.CuisineType,
		&it.IsVegetarian,
		&it.IsVegan,
		&it.IsGlutenFree,
		&it.IsAvailable,
		&it.IsSpecial,
		&it.IsDealOfDay,
		&it.OrderCount,
		&it.ImageURL,
		&it.RestaurantID,
		&it.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// --------------------------------------------------
// CREATE
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (
			name, description, price, category, cuisine_type,
			is_vegetarian, is_vegan, is_gluten_free,
			is_available, is_special, is_deal_of_day, restaurant_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`,
		item.Name,
		item.Description,
		item.Price,
		item.Category,
		item.CuisineType,
		item.IsVegetarian,
		item.IsVegan,
		item.IsGlutenFree,
		item.IsAvailable,
		item.IsSpecial,
		item.IsDealOfDay,
		item.RestaurantID,
	).Scan(&item.ID, &item.CreatedAt)
}

// --------------------------------------------------
// UPDATE
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, item *Item) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $1,
		    description = $2,
		    price = $3,
		    category = $4,
		    cuisine_type = $5,
		    is_vegetarian = $6,
		    is_vegan = $7,
		    is_gluten_free = $8,
		    is_available = $9,
		    is_special = $10,
		    is_deal_of_day = $11
		WHERE id = $12
	`,
		item.Name,
		item.Description,
		item.Price,
		item.Category,
		item.CuisineType,
		item.IsVegetarian,
		item.IsVegan,
		item.IsGlutenFree,
		item.IsAvailable,
		item.IsSpecial,
		item.IsDealOfDay,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("menu item not found")
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, itemID int) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("menu item not found")
	}
	return nil
}

// --------------------------------------------------
// OWNERSHIP-SCOPED LOOKUP
// --------------------------------------------------
func (r *PostgresRepository) FindOwned(
	ctx context.Context,
	itemID int,
	ownerID string,
) (*Item, error) {

	row := r.db.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items mi
		JOIN restaurants r ON r.id = mi.restaurant_id
		WHERE mi.id = $1 AND r.owner_id = $2
	`, itemID, ownerID)

	it, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("menu item not found")
	}
	return it, err
}

func (r *PostgresRepository) SetImageURL(ctx context.Context, itemID int, url string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE menu_items SET image_url = $1 WHERE id = $2
	`, url, itemID)
	return err
}

// --------------------------------------------------
// CUSTOMER BROWSING
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, itemID int) (*Item, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE id = $1
	`, itemID)

	it, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("menu item not found")
	}
	return it, err
}

// ListForRestaurant ranks deal-of-day first, then specials, then by
// popularity, matching the storefront display order.
func (r *PostgresRepository) ListForRestaurant(
	ctx context.Context,
	restaurantID int,
	f BrowseFilter,
) ([]Item, error) {

	query := `
		SELECT ` + itemColumns + `
		FROM menu_items
		WHERE restaurant_id = $1 AND is_available = TRUE
	`
	args := []interface{}{restaurantID}

	if f.Category != "" {
		args = append(args, f.Category)
		query += ` AND category = $` + strconv.Itoa(len(args))
	}
	if f.Cuisine != "" {
		args = append(args, f.Cuisine)
		query += ` AND cuisine_type = $` + strconv.Itoa(len(args))
	}
	switch f.PriceBand {
	case "low":
		query += ` AND price < 500`
	case "medium":
		query += ` AND price >= 500 AND price <= 1000`
	case "high":
		query += ` AND price > 1000`
	}
	switch f.Dietary {
	case "vegetarian":
		query += ` AND is_vegetarian = TRUE`
	case "vegan":
		query += ` AND is_vegan = TRUE`
	case "gluten_free":
		query += ` AND is_gluten_free = TRUE`
	}

	query += ` ORDER BY is_deal_of_day DESC, is_special DESC, order_count DESC, name ASC`

	return r.queryItems(ctx, query, args...)
}

func (r *PostgresRepository) ListAllForRestaurant(
	ctx context.Context,
	restaurantID int,
) ([]Item, error) {
	return r.queryItems(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY category ASC, name ASC
	`, restaurantID)
}

func (r *PostgresRepository) ListAvailable(ctx context.Context) ([]Item, error) {
	return r.queryItems(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE is_available = TRUE
		ORDER BY order_count DESC, id ASC
	`)
}

func (r *PostgresRepository) queryItems(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]Item, error) {

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}
