package preference

import "context"

// Repository defines all database operations for user preferences
type Repository interface {

	// Insert unless (user, type, value) already exists; reports whether
	// a row was created
	Add(ctx context.Context, pref *Preference) (created bool, err error)

	Remove(ctx context.Context, userID string, prefID int) error

	ListByUser(ctx context.Context, userID string) ([]Preference, error)
}
