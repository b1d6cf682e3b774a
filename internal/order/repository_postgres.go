package order

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

// --------------------------------------------------
// CHECKOUT (SINGLE TRANSACTION)
// --------------------------------------------------
func (r *PostgresRepository) CreateOrders(
	ctx context.Context,
	customerID string,
	orders []*Order,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, o := range orders {
		err := tx.QueryRow(ctx, `
			INSERT INTO orders (
				order_number, status, total_amount, notes,
				customer_id, restaurant_id
			)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`,
			o.OrderNumber,
			o.Status,
			o.TotalAmount,
			o.Notes,
			o.CustomerID,
			o.RestaurantID,
		).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return err
		}

		for i := range o.Items {
			item := &o.Items[i]
			item.OrderID = o.ID

			err := tx.QueryRow(ctx, `
				INSERT INTO order_items (order_id, menu_item_id, quantity, price)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`, item.OrderID, item.MenuItemID, item.Quantity, item.Price).Scan(&item.ID)
			if err != nil {
				return err
			}

			_, err = tx.Exec(ctx, `
				UPDATE menu_items
				SET order_count = order_count + $1
				WHERE id = $2
			`, item.Quantity, item.MenuItemID)
			if err != nil {
				return err
			}
		}
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM cart WHERE customer_id = $1
	`, customerID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM active_coupons WHERE customer_id = $1
	`, customerID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// LISTINGS
// --------------------------------------------------

const orderColumns = `
	id, order_number, status, total_amount, COALESCE(notes, ''),
	customer_id, restaurant_id, created_at, updated_at
`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.Status,
		&o.TotalAmount,
		&o.Notes,
		&o.CustomerID,
		&o.RestaurantID,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRepository) ListByCustomer(
	ctx context.Context,
	customerID string,
	q HistoryQuery,
) ([]Order, error) {

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE customer_id = $1
	`
	args := []interface{}{customerID}
	if q.Status != "" {
		args = append(args, q.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		query += ` AND order_number ILIKE $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_at DESC`

	args = append(args, q.PageSize)
	query += ` LIMIT $` + strconv.Itoa(len(args))
	args = append(args, (q.Page-1)*q.PageSize)
	query += ` OFFSET $` + strconv.Itoa(len(args))

	return r.queryOrders(ctx, query, args...)
}

func (r *PostgresRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
	statusFilter string,
) ([]Order, error) {

	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.restaurant_id IN (
			SELECT id FROM restaurants WHERE owner_id = $1
		)
	`
	args := []interface{}{ownerID}
	if statusFilter != "" {
		args = append(args, statusFilter)
		query += ` AND o.status = $2`
	}
	query += ` ORDER BY o.created_at DESC`

	return r.queryOrders(ctx, query, args...)
}

func (r *PostgresRepository) queryOrders(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]Order, error) {

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) listItems(ctx context.Context, orderID int) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, menu_item_id, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// --------------------------------------------------
// OWNER STATUS UPDATE
// --------------------------------------------------
func (r *PostgresRepository) UpdateStatusOwned(
	ctx context.Context,
	orderID int,
	ownerID, status string,
) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $1,
		    updated_at = now()
		WHERE id = $2
		  AND restaurant_id IN (
			SELECT id FROM restaurants WHERE owner_id = $3
		  )
	`, status, orderID, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}

// --------------------------------------------------
// REVIEW ELIGIBILITY
// --------------------------------------------------
func (r *PostgresRepository) HasDeliveredOrder(
	ctx context.Context,
	customerID string,
	restaurantID int,
) (bool, error) {

	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM orders
			WHERE customer_id = $1
			  AND restaurant_id = $2
			  AND status = 'delivered'
		)
	`, customerID, restaurantID).Scan(&exists)
	return exists, err
}
