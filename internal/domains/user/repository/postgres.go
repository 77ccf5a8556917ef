package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"boardgames-backend/internal/domains/user"
	infra "boardgames-backend/internal/infrastructure/database"
	"boardgames-backend/pkg/database"
)

type PostgresUserRepository struct {
	db *infra.PostgresDB
}

func NewPostgresUserRepository(db *infra.PostgresDB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
		INSERT INTO users (name, surname, email)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.Querier(ctx).QueryRow(ctx, query, u.Name, u.Surname, u.Email).Scan(&u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `SELECT id, name, surname, email FROM users WHERE id = $1`

	var u user.User
	err := r.db.Querier(ctx).QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Surname, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (r *PostgresUserRepository) GetAll(ctx context.Context, limit, offset int) ([]user.User, int64, error) {
	q := r.db.Querier(ctx)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	rows, err := q.Query(ctx, `SELECT id, name, surname, email FROM users ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0, limit)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Surname, &u.Email); err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read users: %w", err)
	}

	return users, total, nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.db.Querier(ctx), func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM users_games WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete user ownership: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return user.ErrUserNotFound
		}

		return nil
	})
}
