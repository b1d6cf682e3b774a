package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const lineSelect = `
	SELECT
		c.id, c.customer_id, c.quantity, c.created_at,
		mi.id, mi.name, COALESCE(mi.description, ''), mi.price, mi.category,
		mi.cuisine_type, mi.is_vegetarian, mi.is_vegan, mi.is_gluten_free,
		mi.is_available, mi.is_special, mi.is_deal_of_day, mi.order_count,
		mi.image_url, mi.restaurant_id, mi.created_at
	FROM cart c
	JOIN menu_items mi ON mi.id = c.menu_item_id
`

func scanLine(row pgx.Row) (*Line, error) {
	var l Line
	err := row.Scan(
		&l.ID,
		&l.CustomerID,
		&l.Quantity,
		&l.CreatedAt,
		&l.Item.ID,
		&l.Item.Name,
		&l.Item.Description,
		&l.Item.Price,
		&l.Item.Category,
		&l.Item.CuisineType,
		&l.Item.IsVegetarian,
		&l.Item.IsVegan,
		&l.Item.IsGlutenFree,
		&l.Item.IsAvailable,
		&l.Item.IsSpecial,
		&l.Item.IsDealOfDay,
		&l.Item.OrderCount,
		&l.Item.ImageURL,
		&l.Item.RestaurantID,
		&l.Item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// --------------------------------------------------
// ADD (UPSERT ON customer+item)
// --------------------------------------------------
func (r *PostgresRepository) AddItem(
	ctx context.Context,
	customerID string,
	menuItemID, quantity int,
) error {

	_, err := r.db.Exec(ctx, `
		INSERT INTO cart (customer_id, menu_item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id, menu_item_id)
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity
	`, customerID, menuItemID, quantity)
	return err
}

func (r *PostgresRepository) FindLine(
	ctx context.Context,
	lineID int,
	customerID string,
) (*Line, error) {

	row := r.db.QueryRow(ctx, lineSelect+`
		WHERE c.id = $1 AND c.customer_id = $2
	`, lineID, customerID)

	l, err := scanLine(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("cart item not found")
	}
	return l, err
}

func (r *PostgresRepository) SetQuantity(
	ctx context.Context,
	lineID int,
	customerID string,
	quantity int,
) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE cart
		SET quantity = $1
		WHERE id = $2 AND customer_id = $3
	`, quantity, lineID, customerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

func (r *PostgresRepository) RemoveLine(
	ctx context.Context,
	lineID int,
	customerID string,
) error {

	cmd, err := r.db.Exec(ctx, `
		DELETE FROM cart
		WHERE id = $1 AND customer_id = $2
	`, lineID, customerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

func (r *PostgresRepository) ListLines(
	ctx context.Context,
	customerID string,
) ([]Line, error) {

	rows, err := r.db.Query(ctx, lineSelect+`
		WHERE c.customer_id = $1
		ORDER BY c.created_at ASC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *l)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) Count(ctx context.Context, customerID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity), 0)
		FROM cart
		WHERE customer_id = $1
	`, customerID).Scan(&count)
	return count, err
}

// --------------------------------------------------
// ACTIVE COUPON
// --------------------------------------------------
func (r *PostgresRepository) GetActiveCoupon(
	ctx context.Context,
	customerID string,
) (string, error) {

	var code string
	err := r.db.QueryRow(ctx, `
		SELECT code FROM active_coupons WHERE customer_id = $1
	`, customerID).Scan(&code)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return code, err
}

func (r *PostgresRepository) SetActiveCoupon(
	ctx context.Context,
	customerID, code string,
) error {

	_, err := r.db.Exec(ctx, `
		INSERT INTO active_coupons (customer_id, code)
		VALUES ($1, $2)
		ON CONFLICT (customer_id)
		DO UPDATE SET code = EXCLUDED.code
	`, customerID, code)
	return err
}

func (r *PostgresRepository) ClearActiveCoupon(
	ctx context.Context,
	customerID string,
) error {

	_, err := r.db.Exec(ctx, `
		DELETE FROM active_coupons WHERE customer_id = $1
	`, customerID)
	return err
}
