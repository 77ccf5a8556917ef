package boardgame

import "context"

// BoardGameService is the business surface consumed by the HTTP layer.
type BoardGameService interface {
	Create(ctx context.Context, req *CreateBoardGameRequest) (*BoardGameResponse, error)
	GetByID(ctx context.Context, id int64) (*BoardGameResponse, error)
	List(ctx context.Context, skip, limit int) (*BoardGameListResponse, error)
	Update(ctx context.Context, id int64, req *UpdateBoardGameRequest) (*BoardGameResponse, error)
	Delete(ctx context.Context, id int64) error
}
