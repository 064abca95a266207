package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wintararaj-cmd/Attendance/internal/domain/user"
	"github.com/wintararaj-cmd/Attendance/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.AdminUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, role, created_at
		FROM admin_users
		WHERE username = $1
	`

	var u user.AdminUser
	err := q.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.AdminUser{}, user.ErrUserNotFound
		}
		return user.AdminUser{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.AdminUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, role, created_at
		FROM admin_users
		WHERE id = $1
	`

	var u user.AdminUser
	err := q.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.AdminUser{}, user.ErrUserNotFound
		}
		return user.AdminUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u user.AdminUser) (user.AdminUser, error) {
	q := GetQuerier(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.New().String()
	}

	query := `
		INSERT INTO admin_users (id, username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, username, password_hash, role, created_at
	`

	var created user.AdminUser
	err := q.QueryRow(ctx, query, u.ID, u.Username, u.PasswordHash, u.Role).
		Scan(&created.ID, &created.Username, &created.PasswordHash, &created.Role, &created.CreatedAt)
	if err != nil {
		return user.AdminUser{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}
