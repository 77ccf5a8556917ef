package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"boardgames-backend/internal/domains/boardgame"
	infra "boardgames-backend/internal/infrastructure/database"
	"boardgames-backend/pkg/database"
)

const gameColumns = `id, name, description, min_players, max_players,
	min_playtime, max_playtime, year_published, rating, created_at, updated_at`

// PostgresBoardGameRepository implements boardgame.BoardGameRepository on
// pgx. Statements run on the request session when one is bound to ctx.
type PostgresBoardGameRepository struct {
	db *infra.PostgresDB
}

func NewPostgresBoardGameRepository(db *infra.PostgresDB) *PostgresBoardGameRepository {
	return &PostgresBoardGameRepository{db: db}
}

func (r *PostgresBoardGameRepository) Create(ctx context.Context, game *boardgame.BoardGame) (*boardgame.BoardGame, error) {
	query := `
		INSERT INTO boardgames (name, description, min_players, max_players,
			min_playtime, max_playtime, year_published, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.db.Querier(ctx).QueryRow(ctx, query,
		game.Name,
		game.Description,
		game.MinPlayers,
		game.MaxPlayers,
		game.MinPlaytime,
		game.MaxPlaytime,
		game.YearPublished,
		game.Rating,
	).Scan(&game.ID, &game.CreatedAt, &game.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create board game: %w", err)
	}

	return game, nil
}

func (r *PostgresBoardGameRepository) GetByID(ctx context.Context, id int64) (*boardgame.BoardGame, error) {
	query := `SELECT ` + gameColumns + ` FROM boardgames WHERE id = $1`

	game, err := scanGame(r.db.Querier(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, boardgame.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get board game: %w", err)
	}

	return game, nil
}

func (r *PostgresBoardGameRepository) GetAll(ctx context.Context, limit, offset int) ([]boardgame.BoardGame, int64, error) {
	q := r.db.Querier(ctx)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM boardgames`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count board games: %w", err)
	}

	query := `SELECT ` + gameColumns + ` FROM boardgames ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list board games: %w", err)
	}
	defer rows.Close()

	games := make([]boardgame.BoardGame, 0, limit)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan board game: %w", err)
		}
		games = append(games, *game)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read board games: %w", err)
	}

	return games, total, nil
}

func (r *PostgresBoardGameRepository) Update(ctx context.Context, game *boardgame.BoardGame) (*boardgame.BoardGame, error) {
	query := `
		UPDATE boardgames
		SET name = $1, description = $2, min_players = $3, max_players = $4,
			min_playtime = $5, max_playtime = $6, year_published = $7,
			rating = $8, updated_at = now()
		WHERE id = $9
		RETURNING created_at, updated_at`

	err := r.db.Querier(ctx).QueryRow(ctx, query,
		game.Name,
		game.Description,
		game.MinPlayers,
		game.MaxPlayers,
		game.MinPlaytime,
		game.MaxPlaytime,
		game.YearPublished,
		game.Rating,
		game.ID,
	).Scan(&game.CreatedAt, &game.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, boardgame.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to update board game: %w", err)
	}

	return game, nil
}

// Delete removes the game and its users_games rows atomically, so ownership
// can never dangle.
func (r *PostgresBoardGameRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.db.Querier(ctx), func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM users_games WHERE boardgame_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete game ownership: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM boardgames WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete board game: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return boardgame.ErrGameNotFound
		}

		return nil
	})
}

func scanGame(row pgx.Row) (*boardgame.BoardGame, error) {
	var game boardgame.BoardGame
	err := row.Scan(
		&game.ID,
		&game.Name,
		&game.Description,
		&game.MinPlayers,
		&game.MaxPlayers,
		&game.MinPlaytime,
		&game.MaxPlaytime,
		&game.YearPublished,
		&game.Rating,
		&game.CreatedAt,
		&game.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &game, nil
}
