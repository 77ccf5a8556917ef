package boardgame

import "context"

// BoardGameRepository is the persistence surface for the catalog.
type BoardGameRepository interface {
	// Create inserts the game and reloads id and timestamps from the row.
	Create(ctx context.Context, game *BoardGame) (*BoardGame, error)

	// GetByID returns ErrGameNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*BoardGame, error)

	// GetAll returns one page ordered by id plus the total row count.
	GetAll(ctx context.Context, limit, offset int) ([]BoardGame, int64, error)

	// Update writes every column and reloads timestamps. Returns
	// ErrGameNotFound when the row is gone.
	Update(ctx context.Context, game *BoardGame) (*BoardGame, error)

	// Delete removes the game and its ownership rows in one transaction.
	Delete(ctx context.Context, id int64) error
}
