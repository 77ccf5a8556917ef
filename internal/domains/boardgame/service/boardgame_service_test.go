package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardgames-backend/internal/domains/boardgame"
)

// fakeGameRepository keeps games in a map, handing out ids the way the
// database would.
type fakeGameRepository struct {
	games  map[int64]boardgame.BoardGame
	nextID int64
}

func newFakeGameRepository() *fakeGameRepository {
	return &fakeGameRepository{games: make(map[int64]boardgame.BoardGame), nextID: 1}
}

func (r *fakeGameRepository) Create(_ context.Context, game *boardgame.BoardGame) (*boardgame.BoardGame, error) {
	stored := *game
	stored.ID = r.nextID
	r.nextID++
	r.games[stored.ID] = stored
	return &stored, nil
}

func (r *fakeGameRepository) GetByID(_ context.Context, id int64) (*boardgame.BoardGame, error) {
	game, ok := r.games[id]
	if !ok {
		return nil, boardgame.ErrGameNotFound
	}
	return &game, nil
}

func (r *fakeGameRepository) GetAll(_ context.Context, limit, offset int) ([]boardgame.BoardGame, int64, error) {
	total := int64(len(r.games))
	var page []boardgame.BoardGame
	for id := int64(1); id < r.nextID; id++ {
		game, ok := r.games[id]
		if !ok {
			continue
		}
		if offset > 0 {
			offset--
			continue
		}
		if len(page) == limit {
			break
		}
		page = append(page, game)
	}
	return page, total, nil
}

func (r *fakeGameRepository) Update(_ context.Context, game *boardgame.BoardGame) (*boardgame.BoardGame, error) {
	if _, ok := r.games[game.ID]; !ok {
		return nil, boardgame.ErrGameNotFound
	}
	stored := *game
	stored.UpdatedAt = stored.UpdatedAt.Add(time.Second)
	r.games[stored.ID] = stored
	return &stored, nil
}

func (r *fakeGameRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.games[id]; !ok {
		return boardgame.ErrGameNotFound
	}
	delete(r.games, id)
	return nil
}

func createRequest(name string) *boardgame.CreateBoardGameRequest {
	return &boardgame.CreateBoardGameRequest{Name: name, MinPlayers: 2, MaxPlayers: 4}
}

func TestCreateRejectsInvalidRequest(t *testing.T) {
	svc := NewBoardGameService(newFakeGameRepository())

	resp, err := svc.Create(context.Background(), &boardgame.CreateBoardGameRequest{})
	assert.Nil(t, resp)
	assert.True(t, boardgame.IsValidationError(err))
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc := NewBoardGameService(newFakeGameRepository())

	created, err := svc.Create(context.Background(), createRequest("Catan"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Catan", created.Name)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewBoardGameService(newFakeGameRepository())

	_, err := svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, boardgame.ErrGameNotFound)
}

func TestListClampsPagination(t *testing.T) {
	repo := newFakeGameRepository()
	svc := NewBoardGameService(repo)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), createRequest("Game"))
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		skip      int
		limit     int
		wantSkip  int
		wantLimit int
	}{
		{"negative skip", -5, 10, 0, 10},
		{"zero limit", 0, 0, 0, 100},
		{"limit above cap", 0, 500, 0, 100},
		{"passthrough", 1, 2, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.List(context.Background(), tt.skip, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkip, resp.Skip)
			assert.Equal(t, tt.wantLimit, resp.Limit)
			assert.Equal(t, int64(3), resp.Total)
		})
	}
}

func TestListPageContents(t *testing.T) {
	svc := NewBoardGameService(newFakeGameRepository())
	for _, name := range []string{"Catan", "Azul", "Root"} {
		_, err := svc.Create(context.Background(), createRequest(name))
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, resp.Games, 2)
	assert.Equal(t, "Azul", resp.Games[0].Name)
	assert.Equal(t, "Root", resp.Games[1].Name)
	assert.Equal(t, int64(3), resp.Total)
}

func TestUpdatePartial(t *testing.T) {
	svc := NewBoardGameService(newFakeGameRepository())

	created, err := svc.Create(context.Background(), createRequest("Catan"))
	require.NoError(t, err)

	var req boardgame.UpdateBoardGameRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Catan (3rd ed.)", "rating": 8.5}`), &req))

	updated, err := svc.Update(context.Background(), created.ID, &req)
	require.NoError(t, err)
	assert.Equal(t, "Catan (3rd ed.)", updated.Name)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, "8.5", updated.Rating.String())
	assert.Equal(t, created.MinPlayers, updated.MinPlayers)
}

func TestUpdateEmptyBodyIsNoOpWrite(t *testing.T) {
	svc := NewBoardGameService(newFakeGameRepository())

	created, err := svc.Create(context.Background(), createRequest("Catan"))
	require.NoError(t, err)

	var req boardgame.UpdateBoardGameRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

	updated, err := svc.Update(context.Background(), created.ID, &req)
	require.NoError(t, err)
	assert.Equal(t, created.Name, updated.Name)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateValidationAndNotFound(t *testing.T) {
	svc := NewBoardGameService(newFakeGameRepository())

	var bad boardgame.UpdateBoardGameRequest
	require.NoError(t, json.Unmarshal([]byte(`{"min_players": 0}`), &bad))
	_, err := svc.Update(context.Background(), 1, &bad)
	assert.True(t, boardgame.IsValidationError(err))

	var ok boardgame.UpdateBoardGameRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Azul"}`), &ok))
	_, err = svc.Update(context.Background(), 999, &ok)
	assert.ErrorIs(t, err, boardgame.ErrGameNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeGameRepository()
	svc := NewBoardGameService(repo)

	created, err := svc.Create(context.Background(), createRequest("Catan"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), boardgame.ErrGameNotFound)
}
