package favorites

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Store is the favorites key-value service keyed by drama id. Injected
// wherever favorite status is needed; there is no process-wide singleton.
type Store interface {
	IsFavorite(ctx context.Context, userID, dramaID string) (bool, error)
	Add(ctx context.Context, userID, dramaID string) error
	Remove(ctx context.Context, userID, dramaID string) (bool, error)
	List(ctx context.Context, userID string) ([]Favorite, error)
}

type Favorite struct {
	DramaID string    `json:"drama_id"`
	AddedAt time.Time `json:"added_at"`
}

// Repo is the sqlite-backed Store.
type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) IsFavorite(ctx context.Context, userID, dramaID string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx, `
		SELECT 1 FROM favorites
		WHERE user_id = ? AND drama_id = ?
	`, userID, dramaID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("is favorite: %w", err)
	}
	return true, nil
}

func (r *Repo) Add(ctx context.Context, userID, dramaID string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO favorites (user_id, drama_id)
		VALUES (?, ?)
		ON CONFLICT(user_id, drama_id) DO NOTHING
	`, userID, dramaID)
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (r *Repo) Remove(ctx context.Context, userID, dramaID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM favorites
		WHERE user_id = ? AND drama_id = ?
	`, userID, dramaID)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) List(ctx context.Context, userID string) ([]Favorite, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT drama_id, added_at
		FROM favorites
		WHERE user_id = ?
		ORDER BY added_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var out []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.DramaID, &f.AddedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
