package boardgame

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardGameTimestamps(t *testing.T) {
	req := validCreate()
	game := NewBoardGame(&req)

	assert.Equal(t, "Catan", game.Name)
	assert.Equal(t, 3, game.MinPlayers)
	assert.Equal(t, 4, game.MaxPlayers)
	assert.Nil(t, game.Description)
	assert.Nil(t, game.Rating)
	assert.False(t, game.CreatedAt.IsZero())
	assert.Equal(t, game.CreatedAt, game.UpdatedAt)
}

func TestApplyMergesOnlyProvidedFields(t *testing.T) {
	req := validCreate()
	desc := "Original description"
	req.Description = &desc
	req.YearPublished = intPtr(1995)
	req.Rating = decPtr("7.5")

	game := NewBoardGame(&req)
	game.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	game.UpdatedAt = game.CreatedAt

	var update UpdateBoardGameRequest
	body := `{"name": "Catan: Seafarers", "description": null, "max_players": 6}`
	require.NoError(t, json.Unmarshal([]byte(body), &update))

	game.Apply(&update)

	assert.Equal(t, "Catan: Seafarers", game.Name)
	assert.Nil(t, game.Description)
	assert.Equal(t, 6, game.MaxPlayers)

	// Untouched fields survive the merge.
	assert.Equal(t, 3, game.MinPlayers)
	require.NotNil(t, game.YearPublished)
	assert.Equal(t, 1995, *game.YearPublished)
	require.NotNil(t, game.Rating)
	assert.Equal(t, "7.5", game.Rating.String())

	assert.True(t, game.UpdatedAt.After(game.CreatedAt))
}

func TestApplyClearsNullableFields(t *testing.T) {
	req := validCreate()
	req.MinPlaytime = intPtr(30)
	req.MaxPlaytime = intPtr(90)
	req.Rating = decPtr("8.0")
	game := NewBoardGame(&req)

	var update UpdateBoardGameRequest
	body := `{"min_playtime": null, "max_playtime": null, "rating": null, "year_published": null}`
	require.NoError(t, json.Unmarshal([]byte(body), &update))

	game.Apply(&update)

	assert.Nil(t, game.MinPlaytime)
	assert.Nil(t, game.MaxPlaytime)
	assert.Nil(t, game.Rating)
	assert.Nil(t, game.YearPublished)
}

func TestApplyEmptyUpdateStillTouchesUpdatedAt(t *testing.T) {
	req := validCreate()
	game := NewBoardGame(&req)
	game.UpdatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var update UpdateBoardGameRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &update))

	game.Apply(&update)
	assert.True(t, game.UpdatedAt.After(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}
