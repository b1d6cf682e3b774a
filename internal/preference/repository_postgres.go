package preference

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

// --------------------------------------------------
// ADD (IDEMPOTENT)
// --------------------------------------------------
func (r *PostgresRepository) Add(ctx context.Context, pref *Preference) (bool, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO user_preferences (user_id, preference_type, preference_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, preference_type, preference_value) DO NOTHING
		RETURNING id, created_at
	`, pref.UserID, pref.Type, pref.Value).Scan(&pref.ID, &pref.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		// Duplicate — acknowledged, nothing inserted
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// --------------------------------------------------
// REMOVE
// --------------------------------------------------
func (r *PostgresRepository) Remove(ctx context.Context, userID string, prefID int) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM user_preferences
		WHERE id = $1 AND user_id = $2
	`, prefID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("preference not found")
	}
	return nil
}

// --------------------------------------------------
// LIST
// --------------------------------------------------
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Preference, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, preference_type, preference_value, created_at
		FROM user_preferences
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prefs []Preference
	for rows.Next() {
		var p Preference
		if err := rows.Scan(&p.ID, &p.UserID, &p.Type, &p.Value, &p.CreatedAt); err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}
