package service

import (
	"context"

	"boardgames-backend/internal/domains/boardgame"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

type boardGameService struct {
	repo boardgame.BoardGameRepository
}

func NewBoardGameService(repo boardgame.BoardGameRepository) boardgame.BoardGameService {
	return &boardGameService{repo: repo}
}

func (s *boardGameService) Create(ctx context.Context, req *boardgame.CreateBoardGameRequest) (*boardgame.BoardGameResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, boardgame.NewValidationError(err)
	}

	game, err := s.repo.Create(ctx, boardgame.NewBoardGame(req))
	if err != nil {
		return nil, err
	}

	return game.ToResponse(), nil
}

func (s *boardGameService) GetByID(ctx context.Context, id int64) (*boardgame.BoardGameResponse, error) {
	game, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return game.ToResponse(), nil
}

func (s *boardGameService) List(ctx context.Context, skip, limit int) (*boardgame.BoardGameListResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}

	games, total, err := s.repo.GetAll(ctx, limit, skip)
	if err != nil {
		return nil, err
	}

	items := make([]boardgame.BoardGameResponse, 0, len(games))
	for i := range games {
		items = append(items, *games[i].ToResponse())
	}

	return &boardgame.BoardGameListResponse{
		Games: items,
		Total: total,
		Skip:  skip,
		Limit: limit,
	}, nil
}

// Update merges the provided fields into the stored entity and writes it
// back. An empty request is a valid no-op write; updated_at still moves.
func (s *boardGameService) Update(ctx context.Context, id int64, req *boardgame.UpdateBoardGameRequest) (*boardgame.BoardGameResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, boardgame.NewValidationError(err)
	}

	game, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Apply(req)

	game, err = s.repo.Update(ctx, game)
	if err != nil {
		return nil, err
	}

	return game.ToResponse(), nil
}

func (s *boardGameService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
