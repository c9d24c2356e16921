package repository

import (
	"context"
	"errors"
	"fmt"

	"bistro_boss/internal/model"

	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	user.ID = newID()
	sql := `INSERT INTO users (id, name, email, photo, role, password_hash, created_at, extra)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, sql, user.ID, user.Name, user.Email, user.Photo, user.Role, user.PasswordHash, user.CreatedAt, extraColumn(user.Extra))
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves the first user registered with the given email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, name, email, photo, role, password_hash, created_at, extra FROM users
            WHERE email = $1 ORDER BY created_at LIMIT 1`
	err := r.db.QueryRow(ctx, sql, email).Scan(&user.ID, &user.Name, &user.Email, &user.Photo, &user.Role, &user.PasswordHash, &user.CreatedAt, &user.Extra)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindAll returns every user
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	sql := `SELECT id, name, email, photo, role, password_hash, created_at, extra FROM users ORDER BY created_at`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Photo, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.Extra); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// SetRole overwrites the role of the user with the given id
func (r *userRepository) SetRole(ctx context.Context, id, role string) (*model.UpdateResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	// IS DISTINCT FROM keeps matched and modified counts apart
	var matched, modified int64
	sql := `WITH target AS (SELECT id, role FROM users WHERE id = $1),
                 changed AS (
                     UPDATE users SET role = $2
                     WHERE id IN (SELECT id FROM target WHERE role IS DISTINCT FROM $2)
                     RETURNING id)
            SELECT (SELECT COUNT(*) FROM target), (SELECT COUNT(*) FROM changed)`
	if err := r.db.QueryRow(ctx, sql, id, role).Scan(&matched, &modified); err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	return &model.UpdateResult{MatchedCount: matched, ModifiedCount: modified}, nil
}

func (r *userRepository) EstimatedCount(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, r.db, "users")
}
