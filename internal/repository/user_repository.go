// repository/user_repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/maheshrc27/brandlab-api/internal/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.StaffUser, error)
	GetByEmail(ctx context.Context, email string) (*models.StaffUser, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.StaffUser, error)
	Create(ctx context.Context, user *models.StaffUser) error
	Update(ctx context.Context, user *models.StaffUser) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userSelect = `
	SELECT id, email, COALESCE(name, ''), COALESCE(password_hash, ''), COALESCE(google_id, ''),
		COALESCE(avatar_url, ''), created_at, updated_at
	FROM staff_users`

func (r *userRepository) getOne(ctx context.Context, where string, arg any) (*models.StaffUser, error) {
	var u models.StaffUser
	err := r.db.QueryRowContext(ctx, userSelect+" WHERE "+where, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.GoogleID, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting staff user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.StaffUser, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByEmail matches case-insensitively.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	return r.getOne(ctx, "LOWER(email) = LOWER($1)", email)
}

func (r *userRepository) GetByGoogleID(ctx context.Context, googleID string) (*models.StaffUser, error) {
	return r.getOne(ctx, "google_id = $1", googleID)
}

func (r *userRepository) Create(ctx context.Context, user *models.StaffUser) error {
	query := `
		INSERT INTO staff_users (email, name, password_hash, google_id, avatar_url)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, user.Email, user.Name, user.PasswordHash, user.GoogleID, user.AvatarURL).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating staff user: %w", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.StaffUser) error {
	query := `
		UPDATE staff_users
		SET google_id = NULLIF($1, ''),
			name = $2,
			avatar_url = $3,
			updated_at = NOW()
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, user.GoogleID, user.Name, user.AvatarURL, user.ID)
	if err != nil {
		return fmt.Errorf("updating staff user %s: %w", user.ID, err)
	}
	return nil
}
