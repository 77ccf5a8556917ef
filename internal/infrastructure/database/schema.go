package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Statements are ordered so foreign keys resolve. All idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS boardgames (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		description TEXT,
		min_players INTEGER NOT NULL,
		max_players INTEGER NOT NULL,
		min_playtime INTEGER,
		max_playtime INTEGER,
		year_published INTEGER,
		rating NUMERIC(3,1),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		surname VARCHAR(200) NOT NULL,
		email VARCHAR(200) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users_games (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		boardgame_id BIGINT NOT NULL REFERENCES boardgames(id)
	)`,
}

// InitSchema creates the tables at boot if they do not exist yet.
func (db *PostgresDB) InitSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema init failed: %w", err)
		}
	}

	log.Info().Msg("database schema ready")
	return nil
}
